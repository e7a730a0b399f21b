package levelup

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	apperrors "github.com/louisbranch/levelup/internal/platform/errors"
)

// ErrLevelAlreadyRecorded indicates the history already holds the target level.
var ErrLevelAlreadyRecorded = apperrors.New(apperrors.CodeLevelUpLevelAlreadyRecorded, "level already recorded")

// ErrInvalidHistory indicates persisted history failed boundary validation.
var ErrInvalidHistory = apperrors.New(apperrors.CodeLevelUpHistoryInvalid, "level-up history is invalid")

// MulticlassChoice is the payload of a multiclass upgrade.
type MulticlassChoice struct {
	ClassID    string `json:"class"`
	DomainID   string `json:"domain"`
	SubclassID string `json:"subclass"`
}

// Upgrade is one accepted discretionary choice with its payload.
type Upgrade struct {
	Type              UpgradeType       `json:"type"`
	Stats             []string          `json:"stats,omitempty"`
	ExperienceIndices []int             `json:"experience_indices,omitempty"`
	DomainCardID      string            `json:"domain_card_id,omitempty"`
	Multiclass        *MulticlassChoice `json:"multiclass_data,omitempty"`
}

// LevelRecord is the permanent record written for one confirmed level.
type LevelRecord struct {
	Completed        bool      `json:"completed"`
	AutoExperience   string    `json:"auto_experience,omitempty"`
	AutoDomainCardID string    `json:"auto_domain_card_id,omitempty"`
	Upgrades         []Upgrade `json:"upgrades"`
}

// History maps a confirmed level to its record. Entries are append-only:
// one per level, never rewritten.
type History map[int]LevelRecord

// Levels returns the recorded levels in ascending order.
func (h History) Levels() []int {
	levels := make([]int, 0, len(h))
	for level := range h {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// Has reports whether level is recorded.
func (h History) Has(level int) bool {
	_, ok := h[level]
	return ok
}

// With returns a copy of h with record stored at level. It refuses to
// overwrite an existing level.
func (h History) With(level int, record LevelRecord) (History, error) {
	if err := ValidateTargetLevel(level); err != nil {
		return nil, err
	}
	if h.Has(level) {
		return nil, apperrors.WithMetadata(
			apperrors.CodeLevelUpLevelAlreadyRecorded,
			fmt.Sprintf("level %d already recorded", level),
			map[string]string{"Level": strconv.Itoa(level)},
		)
	}
	out := make(History, len(h)+1)
	for k, v := range h {
		out[k] = v
	}
	out[level] = record
	return out, nil
}

// TierCounts counts recorded upgrades per type across every level of tier.
func (h History) TierCounts(tier int) map[UpgradeType]int {
	counts := map[UpgradeType]int{}
	for _, level := range LevelsInTier(tier) {
		for _, upgrade := range h[level].Upgrades {
			counts[upgrade.Type]++
		}
	}
	return counts
}

// BoostedStats returns the traits raised by stat_increase within tier.
func (h History) BoostedStats(tier int) map[string]struct{} {
	boosted := map[string]struct{}{}
	for _, level := range LevelsInTier(tier) {
		for _, upgrade := range h[level].Upgrades {
			if upgrade.Type != UpgradeStatIncrease {
				continue
			}
			for _, stat := range upgrade.Stats {
				boosted[stat] = struct{}{}
			}
		}
	}
	return boosted
}

// Count returns how many upgrades of t exist across the whole history.
func (h History) Count(t UpgradeType) int {
	total := 0
	for _, record := range h {
		for _, upgrade := range record.Upgrades {
			if upgrade.Type == t {
				total++
			}
		}
	}
	return total
}

// MulticlassGrant is a multiclass choice together with the level it was taken.
type MulticlassGrant struct {
	Level int `json:"level"`
	MulticlassChoice
}

// MulticlassGrants lists recorded multiclass choices in level order.
func (h History) MulticlassGrants() []MulticlassGrant {
	var grants []MulticlassGrant
	for _, level := range h.Levels() {
		for _, upgrade := range h[level].Upgrades {
			if upgrade.Type == UpgradeMulticlass && upgrade.Multiclass != nil {
				grants = append(grants, MulticlassGrant{Level: level, MulticlassChoice: *upgrade.Multiclass})
			}
		}
	}
	return grants
}

// MarshalJSON writes level keys as strings ("5").
func (h History) MarshalJSON() ([]byte, error) {
	raw := make(map[string]LevelRecord, len(h))
	for level, record := range h {
		if record.Upgrades == nil {
			record.Upgrades = []Upgrade{}
		}
		raw[strconv.Itoa(level)] = record
	}
	return json.Marshal(raw)
}

// UnmarshalJSON parses string level keys and validates every entry.
func (h *History) UnmarshalJSON(data []byte) error {
	var raw map[string]LevelRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperrors.Wrap(apperrors.CodeLevelUpHistoryInvalid, "decode level-up history", err)
	}
	out := make(History, len(raw))
	for key, record := range raw {
		level, err := strconv.Atoi(key)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeLevelUpHistoryInvalid, fmt.Sprintf("level key %q is not a number", key), err)
		}
		if strconv.Itoa(level) != key {
			return historyError(level, fmt.Sprintf("level key %q is not canonical", key))
		}
		if err := validateRecord(level, record); err != nil {
			return err
		}
		out[level] = record
	}
	*h = out
	return nil
}

func validateRecord(level int, record LevelRecord) error {
	if ValidateTargetLevel(level) != nil {
		return historyError(level, "level out of range")
	}
	if !record.Completed {
		return historyError(level, "record is not completed")
	}
	spent := 0
	seen := map[UpgradeType]struct{}{}
	for _, upgrade := range record.Upgrades {
		policy, ok := Policy(upgrade.Type)
		if !ok {
			return historyError(level, fmt.Sprintf("unknown upgrade %q", upgrade.Type))
		}
		if _, dup := seen[upgrade.Type]; dup {
			return historyError(level, fmt.Sprintf("upgrade %q recorded twice", upgrade.Type))
		}
		seen[upgrade.Type] = struct{}{}
		spent += policy.Cost
	}
	if spent != Budget {
		return historyError(level, fmt.Sprintf("upgrades cost %d, want %d", spent, Budget))
	}
	return nil
}

func historyError(level int, reason string) error {
	return apperrors.WithMetadata(
		apperrors.CodeLevelUpHistoryInvalid,
		fmt.Sprintf("level %d: %s", level, reason),
		map[string]string{"Level": strconv.Itoa(level), "Reason": reason},
	)
}
