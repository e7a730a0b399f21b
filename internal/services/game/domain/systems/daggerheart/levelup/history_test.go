package levelup

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestHistoryJSONRoundTrip(t *testing.T) {
	history := History{
		5: {
			Completed:        true,
			AutoExperience:   "Survived the Ambush",
			AutoDomainCardID: "D1",
			Upgrades:         []Upgrade{up(UpgradeHPIncrease), up(UpgradeEvasionIncrease)},
		},
		6: record(
			Upgrade{Type: UpgradeStatIncrease, Stats: []string{TraitFinesse, TraitInstinct}},
			Upgrade{Type: UpgradeExperienceBoost, ExperienceIndices: []int{0, 2}},
		),
	}
	data, err := json.Marshal(history)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"5":{`) || !strings.Contains(string(data), `"6":{`) {
		t.Fatalf("expected string level keys, got %s", data)
	}

	var decoded History
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 2 || decoded[5].AutoDomainCardID != "D1" {
		t.Fatalf("decoded = %+v", decoded)
	}
	if got := decoded[6].Upgrades[1].ExperienceIndices; len(got) != 2 || got[1] != 2 {
		t.Fatalf("experience indices = %v", got)
	}
}

func TestHistoryMarshalWritesEmptyUpgrades(t *testing.T) {
	data, err := json.Marshal(History{3: {Completed: true}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"3":{"completed":true,"upgrades":[]}}`; string(data) != want {
		t.Fatalf("marshal = %s, want %s", data, want)
	}
}

func TestHistoryUnmarshalRejectsInvalidEntries(t *testing.T) {
	cases := map[string]string{
		"not an object":   `[]`,
		"non-numeric key": `{"five":{"completed":true,"upgrades":[{"type":"proficiency_increase"}]}}`,
		"zero padded key": `{"05":{"completed":true,"upgrades":[{"type":"proficiency_increase"}]}}`,
		"signed key":      `{"+5":{"completed":true,"upgrades":[{"type":"proficiency_increase"}]}}`,
		"aliased keys":    `{"5":{"completed":true,"upgrades":[{"type":"proficiency_increase"}]},"05":{"completed":true,"upgrades":[{"type":"hp_increase"},{"type":"stress_increase"}]}}`,
		"level too high":  `{"11":{"completed":true,"upgrades":[{"type":"proficiency_increase"}]}}`,
		"level one":       `{"1":{"completed":true,"upgrades":[{"type":"proficiency_increase"}]}}`,
		"not completed":   `{"3":{"completed":false,"upgrades":[{"type":"proficiency_increase"}]}}`,
		"unknown type":    `{"3":{"completed":true,"upgrades":[{"type":"fly"},{"type":"hp_increase"}]}}`,
		"wrong cost":      `{"3":{"completed":true,"upgrades":[{"type":"hp_increase"}]}}`,
		"duplicated type": `{"3":{"completed":true,"upgrades":[{"type":"hp_increase"},{"type":"hp_increase"}]}}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			var history History
			err := json.Unmarshal([]byte(payload), &history)
			if !errors.Is(err, ErrInvalidHistory) {
				t.Fatalf("Unmarshal = %v, want ErrInvalidHistory", err)
			}
		})
	}
}

func TestHistoryWithRefusesOverwrite(t *testing.T) {
	history := History{5: record(up(UpgradeProficiencyIncrease))}
	if _, err := history.With(5, record(up(UpgradeHPIncrease), up(UpgradeStressIncrease))); !errors.Is(err, ErrLevelAlreadyRecorded) {
		t.Fatalf("With existing level = %v, want ErrLevelAlreadyRecorded", err)
	}
	if _, err := history.With(11, record()); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("With level 11 = %v, want ErrInvalidLevel", err)
	}
	next, err := history.With(6, record(up(UpgradeProficiencyIncrease)))
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if len(history) != 1 || len(next) != 2 {
		t.Fatalf("With must copy: original %d, next %d", len(history), len(next))
	}
}

func TestHistoryTierQueries(t *testing.T) {
	history := History{
		2: record(Upgrade{Type: UpgradeStatIncrease, Stats: []string{TraitAgility, TraitStrength}}, up(UpgradeHPIncrease)),
		3: record(up(UpgradeHPIncrease), up(UpgradeStressIncrease)),
		5: record(up(UpgradeProficiencyIncrease)),
	}
	counts := history.TierCounts(2)
	if counts[UpgradeHPIncrease] != 2 || counts[UpgradeStatIncrease] != 1 || counts[UpgradeProficiencyIncrease] != 0 {
		t.Fatalf("TierCounts(2) = %v", counts)
	}
	boosted := history.BoostedStats(2)
	if _, ok := boosted[TraitAgility]; !ok || len(boosted) != 2 {
		t.Fatalf("BoostedStats(2) = %v", boosted)
	}
	if len(history.BoostedStats(3)) != 0 {
		t.Fatal("expected no boosted stats in tier 3")
	}
	if got := history.Count(UpgradeHPIncrease); got != 2 {
		t.Fatalf("Count(hp) = %d, want 2", got)
	}
	if levels := history.Levels(); len(levels) != 3 || levels[0] != 2 || levels[2] != 5 {
		t.Fatalf("Levels = %v", levels)
	}
}
