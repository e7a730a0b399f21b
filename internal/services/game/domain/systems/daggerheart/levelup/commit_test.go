package levelup

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCommitTierStartLevelUp(t *testing.T) {
	in := testInput(4, nil)
	res, err := in.Commit(tierStartSelection(UpgradeHPIncrease, UpgradeEvasionIncrease))
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	got := res.Character
	if got.Level != 5 {
		t.Fatalf("Level = %d, want 5", got.Level)
	}
	if got.HPModifier != 1 || got.EvasionModifier != 1 || got.StressModifier != 0 {
		t.Fatalf("modifiers = hp %d, evasion %d, stress %d", got.HPModifier, got.EvasionModifier, got.StressModifier)
	}
	if len(got.Experiences) != 4 {
		t.Fatalf("experiences = %d, want 4", len(got.Experiences))
	}
	if last := got.Experiences[3]; last.Text != "Survived the Ambush" || last.Value != AutoExperienceValue {
		t.Fatalf("new experience = %+v", last)
	}
	if len(got.SelectedCards) != 2 || got.SelectedCards[1].CardID != "D1" {
		t.Fatalf("selected cards = %+v", got.SelectedCards)
	}
	if len(res.StatChanges) != 0 {
		t.Fatalf("StatChanges = %v, want empty", res.StatChanges)
	}

	data, err := json.Marshal(res.Record)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	want := `{"completed":true,"auto_experience":"Survived the Ambush","auto_domain_card_id":"D1","upgrades":[{"type":"hp_increase"},{"type":"evasion_increase"}]}`
	if string(data) != want {
		t.Fatalf("record = %s, want %s", data, want)
	}
	if res.Level != 5 || !res.History.Has(5) || len(res.History) != 1 {
		t.Fatalf("history = %+v", res.History)
	}
}

func TestCommitMidTierLevelUp(t *testing.T) {
	first, err := testInput(4, nil).Commit(tierStartSelection(UpgradeHPIncrease, UpgradeEvasionIncrease))
	if err != nil {
		t.Fatalf("first Commit: %v", err)
	}

	in := Input{Character: first.Character, History: first.History, Catalog: testCatalog()}
	res, err := in.Commit(Selection{
		Types:             []UpgradeType{UpgradeStatIncrease, UpgradeExperienceBoost},
		Stats:             []string{TraitFinesse, TraitInstinct},
		ExperienceIndices: []int{0, 2},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	got := res.Character
	if got.Level != 6 {
		t.Fatalf("Level = %d, want 6", got.Level)
	}
	if got.Experiences[0].Value != 3 || got.Experiences[1].Value != 2 || got.Experiences[2].Value != 3 {
		t.Fatalf("experiences = %+v", got.Experiences)
	}
	if len(got.Experiences) != 4 || len(got.SelectedCards) != 2 {
		t.Fatalf("level 6 must not add auto gains: %+v", got)
	}
	if res.StatChanges[TraitFinesse] != 1 || res.StatChanges[TraitInstinct] != 1 || len(res.StatChanges) != 2 {
		t.Fatalf("StatChanges = %v", res.StatChanges)
	}
	if res.Record.AutoExperience != "" || res.Record.AutoDomainCardID != "" {
		t.Fatalf("record auto fields = %+v", res.Record)
	}
	if len(res.History) != 2 || !res.History.Has(5) || !res.History.Has(6) {
		t.Fatalf("history levels = %v", res.History.Levels())
	}
}

func TestCommitAppendsAutoCardBeforeUpgradeCard(t *testing.T) {
	in := testInput(4, nil)
	in.Catalog.DomainCards = append(in.Catalog.DomainCards, DomainCard{ID: "D6", Level: 4, DomainID: "bone", Type: "spell"})
	sel := tierStartSelection(UpgradeDomainCard, UpgradeHPIncrease)
	sel.DomainCardID = "D6"

	res, err := in.Commit(sel)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	cards := res.Character.SelectedCards
	if len(cards) != 3 || cards[1].CardID != "D1" || cards[2].CardID != "D6" {
		t.Fatalf("selected cards = %+v", cards)
	}
	if res.Record.Upgrades[0].DomainCardID != "D6" {
		t.Fatalf("upgrade card = %q, want D6", res.Record.Upgrades[0].DomainCardID)
	}
}

func TestCommitMulticlassRecordsGrant(t *testing.T) {
	in := testInput(4, nil)
	sel := tierStartSelection(UpgradeMulticlass)
	sel.Multiclass = MulticlassChoice{ClassID: "wizard", DomainID: "codex", SubclassID: "school-of-knowledge"}

	res, err := in.Commit(sel)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	grants := res.History.MulticlassGrants()
	if len(grants) != 1 || grants[0].Level != 5 || grants[0].DomainID != "codex" {
		t.Fatalf("grants = %+v", grants)
	}
	next := Input{Character: res.Character, History: res.History, Catalog: testCatalog()}
	if ok, reason := next.CanAdd(Selection{}, UpgradeSubclass); ok || reason != BlockMutuallyExclusive {
		t.Fatalf("subclass after multiclass = %v, %q", ok, reason)
	}
}

func TestCommitProficiencyIncrease(t *testing.T) {
	res, err := testInput(5, nil).Commit(Selection{Types: []UpgradeType{UpgradeProficiencyIncrease}})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got := Proficiency(res.Character.Level, res.History); got != 4 {
		t.Fatalf("Proficiency = %d, want 4", got)
	}
}

func TestCommitLeavesInputsUntouched(t *testing.T) {
	history := History{5: record(up(UpgradeHPIncrease), up(UpgradeEvasionIncrease))}
	in := testInput(5, history)
	_, err := in.Commit(Selection{
		Types:             []UpgradeType{UpgradeExperienceBoost, UpgradeDomainCard},
		ExperienceIndices: []int{0, 1},
		DomainCardID:      "D3",
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if in.Character.Level != 5 || in.Character.Experiences[0].Value != 2 || len(in.Character.SelectedCards) != 1 {
		t.Fatalf("input character mutated: %+v", in.Character)
	}
	if len(in.History) != 1 {
		t.Fatalf("input history mutated: %v", in.History.Levels())
	}
}

func TestCommitRejectsInvalidSelection(t *testing.T) {
	history := History{5: record(up(UpgradeHPIncrease), up(UpgradeEvasionIncrease))}
	in := testInput(4, history)
	res, err := in.Commit(tierStartSelection(UpgradeHPIncrease, UpgradeStressIncrease))
	if !errors.Is(err, ErrLevelAlreadyRecorded) {
		t.Fatalf("Commit = %v, want ErrLevelAlreadyRecorded", err)
	}
	if res.History != nil {
		t.Fatalf("expected empty result, got %+v", res)
	}

	if _, err := testInput(4, nil).Commit(Selection{Types: []UpgradeType{UpgradeHPIncrease}}); err == nil {
		t.Fatal("expected error for incomplete selection")
	}
}
