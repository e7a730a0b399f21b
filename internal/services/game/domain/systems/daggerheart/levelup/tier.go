package levelup

import (
	"strconv"

	apperrors "github.com/louisbranch/levelup/internal/platform/errors"
)

const (
	// MinLevel is the level every character starts at.
	MinLevel = 1
	// MaxLevel is the highest reachable level.
	MaxLevel = 10
)

// ErrInvalidLevel indicates a level-up target outside 2..10.
var ErrInvalidLevel = apperrors.New(apperrors.CodeLevelUpInvalidLevel, "level-up target must be in range 2..10")

// TierForLevel returns the tier (1..4) a level belongs to.
//
// Levels below 1 classify as tier 1 and levels above 10 as tier 4; callers
// reject those before asking.
func TierForLevel(level int) int {
	switch {
	case level <= 1:
		return 1
	case level <= 4:
		return 2
	case level <= 7:
		return 3
	default:
		return 4
	}
}

// IsTierStart reports whether level is the first level of tiers 2..4.
func IsTierStart(level int) bool {
	switch level {
	case 2, 5, 8:
		return true
	default:
		return false
	}
}

// LevelsInTier returns the levels reachable by level-up within tier.
// Tier 1 has none.
func LevelsInTier(tier int) []int {
	switch tier {
	case 2:
		return []int{2, 3, 4}
	case 3:
		return []int{5, 6, 7}
	case 4:
		return []int{8, 9, 10}
	default:
		return nil
	}
}

// ValidateTargetLevel checks that level can be reached by leveling up.
func ValidateTargetLevel(level int) error {
	if level <= MinLevel || level > MaxLevel {
		return invalidLevel(level)
	}
	return nil
}

func invalidLevel(level int) error {
	return apperrors.WithMetadata(
		apperrors.CodeLevelUpInvalidLevel,
		"level-up target "+strconv.Itoa(level)+" must be in range 2..10",
		map[string]string{"Level": strconv.Itoa(level)},
	)
}
