package levelup

// UpgradeType names one of the discretionary level-up upgrades.
type UpgradeType string

const (
	UpgradeStatIncrease        UpgradeType = "stat_increase"
	UpgradeHPIncrease          UpgradeType = "hp_increase"
	UpgradeStressIncrease      UpgradeType = "stress_increase"
	UpgradeExperienceBoost     UpgradeType = "experience_boost"
	UpgradeDomainCard          UpgradeType = "domain_card"
	UpgradeEvasionIncrease     UpgradeType = "evasion_increase"
	UpgradeSubclass            UpgradeType = "subclass_upgrade"
	UpgradeProficiencyIncrease UpgradeType = "proficiency_increase"
	UpgradeMulticlass          UpgradeType = "multiclass"
)

// Budget is the number of points every level-up must spend exactly.
const Budget = 2

// UpgradePolicy is the static rule record for an upgrade type.
type UpgradePolicy struct {
	// Max is how many times the type may be taken within one tier.
	Max int
	// Cost is how many budget points the type consumes.
	Cost int
	// MinTier is the lowest tier the type can be taken in; 0 means any.
	MinTier     int
	Label       string
	Description string
}

// upgradeOrder is the display order of upgrade types.
var upgradeOrder = []UpgradeType{
	UpgradeStatIncrease,
	UpgradeHPIncrease,
	UpgradeStressIncrease,
	UpgradeExperienceBoost,
	UpgradeDomainCard,
	UpgradeEvasionIncrease,
	UpgradeSubclass,
	UpgradeProficiencyIncrease,
	UpgradeMulticlass,
}

var upgradePolicies = map[UpgradeType]UpgradePolicy{
	UpgradeStatIncrease: {
		Max: 3, Cost: 1,
		Label:       "Increase traits",
		Description: "Gain +1 to two unmarked character traits and mark them.",
	},
	UpgradeHPIncrease: {
		Max: 2, Cost: 1,
		Label:       "Add Hit Point slot",
		Description: "Permanently gain one Hit Point slot.",
	},
	UpgradeStressIncrease: {
		Max: 2, Cost: 1,
		Label:       "Add Stress slot",
		Description: "Permanently gain one Stress slot.",
	},
	UpgradeExperienceBoost: {
		Max: 1, Cost: 1,
		Label:       "Boost experiences",
		Description: "Permanently gain +1 to two experiences.",
	},
	UpgradeDomainCard: {
		Max: 1, Cost: 1,
		Label:       "Domain card",
		Description: "Choose an additional domain card of your level or lower.",
	},
	UpgradeEvasionIncrease: {
		Max: 1, Cost: 1,
		Label:       "Increase Evasion",
		Description: "Permanently gain +1 to your Evasion.",
	},
	UpgradeSubclass: {
		Max: 1, Cost: 1,
		Label:       "Upgrade subclass",
		Description: "Take the next subclass card: specialization, then mastery.",
	},
	UpgradeProficiencyIncrease: {
		Max: 1, Cost: 2,
		Label:       "Increase Proficiency",
		Description: "Increase your Proficiency by +1.",
	},
	UpgradeMulticlass: {
		Max: 1, Cost: 2, MinTier: 3,
		Label:       "Multiclass",
		Description: "Choose an additional class's foundation, domain, and subclass.",
	},
}

// UpgradeTypes returns every upgrade type in display order.
func UpgradeTypes() []UpgradeType {
	return append([]UpgradeType(nil), upgradeOrder...)
}

// Policy returns the rule record for t.
func Policy(t UpgradeType) (UpgradePolicy, bool) {
	policy, ok := upgradePolicies[t]
	return policy, ok
}

// Valid reports whether t is a known upgrade type.
func (t UpgradeType) Valid() bool {
	_, ok := upgradePolicies[t]
	return ok
}

// excludes reports whether picking t is blocked by the presence of other
// within the same tier. The rule is symmetric.
func excludes(t, other UpgradeType) bool {
	return (t == UpgradeSubclass && other == UpgradeMulticlass) ||
		(t == UpgradeMulticlass && other == UpgradeSubclass)
}
