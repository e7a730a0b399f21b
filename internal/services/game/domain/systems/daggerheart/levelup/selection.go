package levelup

// Input is the full snapshot a level-up is evaluated against. It is read
// only: every method returns new values.
type Input struct {
	Character Character
	History   History
	Catalog   Catalog
}

// TargetLevel is the level the character is advancing to.
func (in Input) TargetLevel() int {
	return in.Character.Level + 1
}

// Tier is the tier of the target level.
func (in Input) Tier() int {
	return TierForLevel(in.TargetLevel())
}

// Domains returns the character's domains plus any domain granted by a
// recorded multiclass, without duplicates.
func (in Input) Domains() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, id := range in.Character.DomainIDs {
		add(id)
	}
	for _, grant := range in.History.MulticlassGrants() {
		add(grant.DomainID)
	}
	return out
}

// EligibleDomainCards returns cards the character may pick at the target
// level: from its domains, at or below the target level, and not yet held.
func (in Input) EligibleDomainCards() []DomainCard {
	var out []DomainCard
	for _, card := range in.Catalog.EligibleDomainCards(in.Domains(), in.TargetLevel()) {
		if in.Character.HasCard(card.ID) {
			continue
		}
		out = append(out, card)
	}
	return out
}

func (in Input) isEligibleCard(cardID string) bool {
	for _, card := range in.EligibleDomainCards() {
		if card.ID == cardID {
			return true
		}
	}
	return false
}

// Selection is the in-progress choice set of one level-up.
//
// Types is an ordered set; the sub-option fields belong to stat_increase,
// experience_boost, domain_card and multiclass respectively.
type Selection struct {
	AutoExperience    string           `json:"auto_experience,omitempty"`
	AutoDomainCardID  string           `json:"auto_domain_card_id,omitempty"`
	Types             []UpgradeType    `json:"upgrades"`
	Stats             []string         `json:"stats,omitempty"`
	ExperienceIndices []int            `json:"experience_indices,omitempty"`
	DomainCardID      string           `json:"domain_card_id,omitempty"`
	Multiclass        MulticlassChoice `json:"multiclass_data"`
}

// Has reports whether t is selected.
func (s Selection) Has(t UpgradeType) bool {
	for _, selected := range s.Types {
		if selected == t {
			return true
		}
	}
	return false
}

// Spent sums the cost of every known selected type.
func (s Selection) Spent() int {
	return s.spentExcluding("")
}

func (s Selection) spentExcluding(skip UpgradeType) int {
	total := 0
	for _, t := range s.Types {
		if t == skip {
			continue
		}
		if policy, ok := Policy(t); ok {
			total += policy.Cost
		}
	}
	return total
}

func (s Selection) clone() Selection {
	out := s
	out.Types = append([]UpgradeType(nil), s.Types...)
	out.Stats = append([]string(nil), s.Stats...)
	out.ExperienceIndices = append([]int(nil), s.ExperienceIndices...)
	return out
}

// clearOptions drops the sub-option state owned by t.
func (s *Selection) clearOptions(t UpgradeType) {
	switch t {
	case UpgradeStatIncrease:
		s.Stats = nil
	case UpgradeExperienceBoost:
		s.ExperienceIndices = nil
	case UpgradeDomainCard:
		s.DomainCardID = ""
	case UpgradeMulticlass:
		s.Multiclass = MulticlassChoice{}
	}
}

// BlockReason explains why an upgrade type cannot be added.
type BlockReason string

const (
	BlockNone              BlockReason = ""
	BlockUnknownType       BlockReason = "unknown_type"
	BlockTierLocked        BlockReason = "tier_locked"
	BlockTierCapReached    BlockReason = "tier_cap_reached"
	BlockMutuallyExclusive BlockReason = "mutually_exclusive"
	BlockSubclassExhausted BlockReason = "subclass_exhausted"
	BlockBudgetExceeded    BlockReason = "budget_exceeded"
)

// blockReason evaluates whether t may be part of sel. The in-progress
// selection contributes to exclusion and budget but never to tier counts.
func (in Input) blockReason(sel Selection, t UpgradeType, checkBudget bool) BlockReason {
	policy, ok := Policy(t)
	if !ok {
		return BlockUnknownType
	}
	tier := in.Tier()
	if policy.MinTier > 0 && tier < policy.MinTier {
		return BlockTierLocked
	}
	counts := in.History.TierCounts(tier)
	if counts[t] >= policy.Max {
		return BlockTierCapReached
	}
	for other, n := range counts {
		if n > 0 && excludes(t, other) {
			return BlockMutuallyExclusive
		}
	}
	for _, other := range sel.Types {
		if other != t && excludes(t, other) {
			return BlockMutuallyExclusive
		}
	}
	if t == UpgradeSubclass {
		if _, ok := NextSubclassTier(in.History); !ok {
			return BlockSubclassExhausted
		}
	}
	if checkBudget && sel.spentExcluding(t)+policy.Cost > Budget {
		return BlockBudgetExceeded
	}
	return BlockNone
}

// CanAdd reports whether t can be toggled on given sel, and why not.
func (in Input) CanAdd(sel Selection, t UpgradeType) (bool, BlockReason) {
	if sel.Has(t) {
		return false, BlockNone
	}
	reason := in.blockReason(sel, t, true)
	return reason == BlockNone, reason
}

// Toggle adds t to sel when available, or removes it when already
// selected. Either way the sub-options owned by t are cleared. Toggling on
// an unavailable type returns sel unchanged.
func (in Input) Toggle(sel Selection, t UpgradeType) Selection {
	out := sel.clone()
	if out.Has(t) {
		kept := out.Types[:0]
		for _, selected := range out.Types {
			if selected != t {
				kept = append(kept, selected)
			}
		}
		out.Types = kept
		out.clearOptions(t)
		return out
	}
	if ok, _ := in.CanAdd(sel, t); !ok {
		return sel
	}
	out.Types = append(out.Types, t)
	out.clearOptions(t)
	return out
}

// Availability describes one upgrade type for the current selection.
type Availability struct {
	Type       UpgradeType   `json:"type"`
	Policy     UpgradePolicy `json:"policy"`
	Used       int           `json:"used"`
	Remaining  int           `json:"remaining"`
	Selected   bool          `json:"selected"`
	Selectable bool          `json:"selectable"`
	Reason     BlockReason   `json:"reason,omitempty"`
}

// Availability reports every upgrade type in display order. Selected types
// are always selectable since toggling off is always permitted.
func (in Input) Availability(sel Selection) []Availability {
	counts := in.History.TierCounts(in.Tier())
	out := make([]Availability, 0, len(upgradeOrder))
	for _, t := range upgradeOrder {
		policy := upgradePolicies[t]
		remaining := policy.Max - counts[t]
		if remaining < 0 {
			remaining = 0
		}
		entry := Availability{
			Type:      t,
			Policy:    policy,
			Used:      counts[t],
			Remaining: remaining,
			Selected:  sel.Has(t),
		}
		if entry.Selected {
			entry.Selectable = true
		} else {
			entry.Selectable, entry.Reason = in.CanAdd(sel, t)
		}
		out = append(out, entry)
	}
	return out
}
