package levelup

import "strings"

// Result is the new progression state produced by a confirmed level-up.
type Result struct {
	// Character is the updated snapshot. Inputs are left untouched.
	Character Character `json:"character"`
	// StatChanges is the trait delta for the external stat store.
	StatChanges map[string]int `json:"stat_changes"`
	// Level is the level the record was written at.
	Level int `json:"level"`
	// Record is the history entry written for Level.
	Record LevelRecord `json:"record"`
	// History is the previous history plus Record.
	History History `json:"level_up_choices"`
}

// Commit validates sel and folds it into a new progression snapshot. Nothing
// is applied unless every check passes.
func (in Input) Commit(sel Selection) (Result, error) {
	if err := in.Validate(sel); err != nil {
		return Result{}, err
	}

	target := in.TargetLevel()
	tierStart := IsTierStart(target)
	next := in.Character.Clone()
	next.Level = target
	statChanges := map[string]int{}

	record := LevelRecord{
		Completed: true,
		Upgrades:  make([]Upgrade, 0, len(sel.Types)),
	}
	if tierStart {
		record.AutoExperience = strings.TrimSpace(sel.AutoExperience)
		record.AutoDomainCardID = strings.TrimSpace(sel.AutoDomainCardID)
	}

	upgradeCard := ""
	for _, t := range sel.Types {
		upgrade := Upgrade{Type: t}
		switch t {
		case UpgradeStatIncrease:
			upgrade.Stats = append([]string(nil), sel.Stats...)
			for _, stat := range sel.Stats {
				statChanges[stat]++
			}
		case UpgradeHPIncrease:
			next.HPModifier++
		case UpgradeStressIncrease:
			next.StressModifier++
		case UpgradeEvasionIncrease:
			next.EvasionModifier++
		case UpgradeExperienceBoost:
			upgrade.ExperienceIndices = append([]int(nil), sel.ExperienceIndices...)
			for _, index := range sel.ExperienceIndices {
				next.Experiences[index].Value++
			}
		case UpgradeDomainCard:
			upgradeCard = strings.TrimSpace(sel.DomainCardID)
			upgrade.DomainCardID = upgradeCard
		case UpgradeMulticlass:
			choice := sel.Multiclass
			upgrade.Multiclass = &choice
		}
		record.Upgrades = append(record.Upgrades, upgrade)
	}

	if tierStart {
		next.Experiences = append(next.Experiences, Experience{Text: record.AutoExperience, Value: AutoExperienceValue})
		next.SelectedCards = append(next.SelectedCards, SelectedCard{CardID: record.AutoDomainCardID})
	}
	if upgradeCard != "" {
		next.SelectedCards = append(next.SelectedCards, SelectedCard{CardID: upgradeCard})
	}

	history, err := in.History.With(target, record)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Character:   next,
		StatChanges: statChanges,
		Level:       target,
		Record:      record,
		History:     history,
	}, nil
}
