package levelup

import "testing"

func TestToggleAddsAndRemoves(t *testing.T) {
	in := testInput(2, nil)
	sel := in.Toggle(Selection{}, UpgradeHPIncrease)
	if !sel.Has(UpgradeHPIncrease) || sel.Spent() != 1 {
		t.Fatalf("expected hp_increase selected, got %+v", sel)
	}
	sel = in.Toggle(sel, UpgradeHPIncrease)
	if sel.Has(UpgradeHPIncrease) || sel.Spent() != 0 {
		t.Fatalf("expected hp_increase removed, got %+v", sel)
	}
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	in := testInput(4, nil)
	sel := in.Toggle(Selection{}, UpgradeEvasionIncrease)
	sel = in.Toggle(sel, UpgradeHPIncrease)
	if len(sel.Types) != 2 || sel.Types[0] != UpgradeEvasionIncrease || sel.Types[1] != UpgradeHPIncrease {
		t.Fatalf("Types = %v", sel.Types)
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	in := testInput(2, nil)
	original := Selection{Types: []UpgradeType{UpgradeHPIncrease, UpgradeStressIncrease}}
	_ = in.Toggle(original, UpgradeHPIncrease)
	if len(original.Types) != 2 || original.Types[0] != UpgradeHPIncrease {
		t.Fatalf("original selection changed: %v", original.Types)
	}
}

func TestToggleClearsSubOptions(t *testing.T) {
	in := testInput(2, nil)
	sel := in.Toggle(Selection{}, UpgradeStatIncrease)
	sel.Stats = []string{TraitAgility, TraitFinesse}
	sel = in.Toggle(sel, UpgradeExperienceBoost)
	sel.ExperienceIndices = []int{0, 1}

	sel = in.Toggle(sel, UpgradeStatIncrease)
	if sel.Stats != nil {
		t.Fatalf("expected stats cleared on toggle off, got %v", sel.Stats)
	}
	if len(sel.ExperienceIndices) != 2 {
		t.Fatalf("expected other sub-options kept, got %v", sel.ExperienceIndices)
	}

	sel = in.Toggle(sel, UpgradeExperienceBoost)
	sel = in.Toggle(sel, UpgradeDomainCard)
	sel.DomainCardID = "D5"
	sel = in.Toggle(sel, UpgradeDomainCard)
	if sel.DomainCardID != "" {
		t.Fatalf("expected domain card cleared, got %q", sel.DomainCardID)
	}
}

func TestBudgetBlocksOverspend(t *testing.T) {
	in := testInput(2, nil)
	sel := in.Toggle(Selection{}, UpgradeHPIncrease)
	sel = in.Toggle(sel, UpgradeStressIncrease)

	ok, reason := in.CanAdd(sel, UpgradeEvasionIncrease)
	if ok || reason != BlockBudgetExceeded {
		t.Fatalf("CanAdd evasion = %v, %q, want budget_exceeded", ok, reason)
	}
	next := in.Toggle(sel, UpgradeEvasionIncrease)
	if next.Has(UpgradeEvasionIncrease) || len(next.Types) != 2 {
		t.Fatalf("blocked toggle must be a no-op, got %v", next.Types)
	}

	single := in.Toggle(Selection{}, UpgradeHPIncrease)
	if ok, reason := in.CanAdd(single, UpgradeProficiencyIncrease); ok || reason != BlockBudgetExceeded {
		t.Fatalf("CanAdd proficiency after cost-1 pick = %v, %q", ok, reason)
	}
}

func TestTierCapFromHistory(t *testing.T) {
	history := History{
		2: record(up(UpgradeHPIncrease), up(UpgradeStressIncrease)),
		3: record(up(UpgradeHPIncrease), up(UpgradeEvasionIncrease)),
	}
	in := testInput(3, history)
	if ok, reason := in.CanAdd(Selection{}, UpgradeHPIncrease); ok || reason != BlockTierCapReached {
		t.Fatalf("CanAdd hp = %v, %q, want tier_cap_reached", ok, reason)
	}
	if ok, _ := in.CanAdd(Selection{}, UpgradeStressIncrease); !ok {
		t.Fatal("expected stress_increase to have one remaining")
	}

	// A new tier resets the caps.
	if ok, _ := testInput(4, history).CanAdd(Selection{}, UpgradeHPIncrease); !ok {
		t.Fatal("expected hp_increase available again in tier 3")
	}
}

func TestMulticlassTierGate(t *testing.T) {
	in := testInput(2, nil) // leveling to 3, tier 2
	if ok, reason := in.CanAdd(Selection{}, UpgradeMulticlass); ok || reason != BlockTierLocked {
		t.Fatalf("CanAdd multiclass at tier 2 = %v, %q, want tier_locked", ok, reason)
	}
	sel := in.Toggle(Selection{}, UpgradeMulticlass)
	if sel.Has(UpgradeMulticlass) {
		t.Fatal("expected tier-locked toggle to be a no-op")
	}

	if ok, _ := testInput(4, nil).CanAdd(Selection{}, UpgradeMulticlass); !ok {
		t.Fatal("expected multiclass available at tier 3")
	}
}

func TestMutualExclusionFromHistory(t *testing.T) {
	multiclassed := History{
		5: record(Upgrade{Type: UpgradeMulticlass, Multiclass: &MulticlassChoice{ClassID: "wizard", DomainID: "codex", SubclassID: "school-of-knowledge"}}),
	}
	if ok, reason := testInput(5, multiclassed).CanAdd(Selection{}, UpgradeSubclass); ok || reason != BlockMutuallyExclusive {
		t.Fatalf("subclass after multiclass = %v, %q, want mutually_exclusive", ok, reason)
	}

	subclassed := History{
		5: record(up(UpgradeSubclass), up(UpgradeHPIncrease)),
	}
	if ok, reason := testInput(5, subclassed).CanAdd(Selection{}, UpgradeMulticlass); ok || reason != BlockMutuallyExclusive {
		t.Fatalf("multiclass after subclass = %v, %q, want mutually_exclusive", ok, reason)
	}

	// The exclusion lasts only for the tier it was recorded in.
	if ok, _ := testInput(7, multiclassed).CanAdd(Selection{}, UpgradeSubclass); !ok {
		t.Fatal("expected subclass_upgrade available in tier 4")
	}
}

func TestMutualExclusionFromStagedSelection(t *testing.T) {
	in := testInput(5, nil)

	staged := in.Toggle(Selection{}, UpgradeMulticlass)
	if ok, reason := in.CanAdd(staged, UpgradeSubclass); ok || reason != BlockMutuallyExclusive {
		t.Fatalf("subclass with staged multiclass = %v, %q", ok, reason)
	}

	staged = in.Toggle(Selection{}, UpgradeSubclass)
	if ok, reason := in.CanAdd(staged, UpgradeMulticlass); ok || reason != BlockMutuallyExclusive {
		t.Fatalf("multiclass with staged subclass = %v, %q", ok, reason)
	}

	staged = in.Toggle(staged, UpgradeSubclass)
	if ok, _ := in.CanAdd(staged, UpgradeMulticlass); !ok {
		t.Fatal("expected multiclass available once subclass is toggled off")
	}
}

func TestSubclassExhausted(t *testing.T) {
	history := History{
		2: record(up(UpgradeSubclass), up(UpgradeHPIncrease)),
		5: record(up(UpgradeSubclass), up(UpgradeHPIncrease)),
	}
	in := testInput(7, history)
	if ok, reason := in.CanAdd(Selection{}, UpgradeSubclass); ok || reason != BlockSubclassExhausted {
		t.Fatalf("third subclass pick = %v, %q, want subclass_exhausted", ok, reason)
	}
}

func TestAvailabilityReportsRemainingCounts(t *testing.T) {
	history := History{
		2: record(
			Upgrade{Type: UpgradeStatIncrease, Stats: []string{TraitAgility, TraitStrength}},
			up(UpgradeHPIncrease),
		),
	}
	in := testInput(2, history)
	sel := in.Toggle(Selection{}, UpgradeStatIncrease)

	got := map[UpgradeType]Availability{}
	list := in.Availability(sel)
	if len(list) != len(UpgradeTypes()) {
		t.Fatalf("Availability returned %d entries, want %d", len(list), len(UpgradeTypes()))
	}
	for _, entry := range list {
		got[entry.Type] = entry
	}

	stat := got[UpgradeStatIncrease]
	if stat.Used != 1 || stat.Remaining != 2 || !stat.Selected || !stat.Selectable {
		t.Fatalf("stat_increase availability = %+v", stat)
	}
	hp := got[UpgradeHPIncrease]
	if hp.Used != 1 || hp.Remaining != 1 || !hp.Selectable {
		t.Fatalf("hp_increase availability = %+v", hp)
	}
	proficiency := got[UpgradeProficiencyIncrease]
	if proficiency.Selectable || proficiency.Reason != BlockBudgetExceeded {
		t.Fatalf("proficiency_increase availability = %+v", proficiency)
	}
	multiclass := got[UpgradeMulticlass]
	if multiclass.Selectable || multiclass.Reason != BlockTierLocked {
		t.Fatalf("multiclass availability = %+v", multiclass)
	}
}

func TestUnknownUpgradeCannotBeAdded(t *testing.T) {
	in := testInput(2, nil)
	if ok, reason := in.CanAdd(Selection{}, UpgradeType("fly")); ok || reason != BlockUnknownType {
		t.Fatalf("CanAdd unknown = %v, %q", ok, reason)
	}
}

func TestDomainsIncludeMulticlassGrant(t *testing.T) {
	history := History{
		5: record(Upgrade{Type: UpgradeMulticlass, Multiclass: &MulticlassChoice{ClassID: "wizard", DomainID: "codex", SubclassID: "school-of-knowledge"}}),
	}
	in := testInput(5, history)
	domains := in.Domains()
	if len(domains) != 3 || domains[2] != "codex" {
		t.Fatalf("Domains = %v", domains)
	}
	found := false
	for _, card := range in.EligibleDomainCards() {
		if card.ID == "D2" {
			t.Fatal("held card D2 must not be eligible")
		}
		if card.ID == "D5" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected codex card D5 eligible after multiclass")
	}
}
