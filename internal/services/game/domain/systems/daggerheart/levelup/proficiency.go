package levelup

// BaseProficiency is the proficiency of a level 1 character.
const BaseProficiency = 1

// Proficiency derives proficiency from level and history: +1 at levels 2, 5
// and 8, plus +1 for every recorded proficiency_increase.
func Proficiency(level int, history History) int {
	proficiency := BaseProficiency
	for _, step := range []int{2, 5, 8} {
		if level >= step {
			proficiency++
		}
	}
	return proficiency + history.Count(UpgradeProficiencyIncrease)
}

// SubclassTier is the subclass card a subclass_upgrade unlocks.
type SubclassTier string

const (
	SubclassTierNone           SubclassTier = ""
	SubclassTierSpecialization SubclassTier = "Specialization"
	SubclassTierMastery        SubclassTier = "Mastery"
)

// NextSubclassTier returns what the next subclass_upgrade would unlock, or
// false once both specialization and mastery are taken.
func NextSubclassTier(history History) (SubclassTier, bool) {
	switch history.Count(UpgradeSubclass) {
	case 0:
		return SubclassTierSpecialization, true
	case 1:
		return SubclassTierMastery, true
	default:
		return SubclassTierNone, false
	}
}
