package levelup

import (
	"strings"

	apperrors "github.com/louisbranch/levelup/internal/platform/errors"
)

// Trait names accepted by stat_increase.
const (
	TraitAgility   = "agility"
	TraitStrength  = "strength"
	TraitFinesse   = "finesse"
	TraitInstinct  = "instinct"
	TraitPresence  = "presence"
	TraitKnowledge = "knowledge"
)

var traitNames = map[string]struct{}{
	TraitAgility:   {},
	TraitStrength:  {},
	TraitFinesse:   {},
	TraitInstinct:  {},
	TraitPresence:  {},
	TraitKnowledge: {},
}

// AutoExperienceValue is the modifier of the experience gained at a tier start.
const AutoExperienceValue = 2

// ErrInvalidCharacter indicates the character snapshot cannot be leveled.
var ErrInvalidCharacter = apperrors.New(apperrors.CodeLevelUpCharacterInvalid, "character snapshot is invalid")

// IsTrait reports whether name is one of the six character traits.
func IsTrait(name string) bool {
	_, ok := traitNames[name]
	return ok
}

// Experience is a named experience modifier on the character sheet.
type Experience struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// SelectedCard is a domain card the character has acquired.
type SelectedCard struct {
	CardID string `json:"card_id"`
}

// Character is the progression-relevant slice of a character sheet.
//
// Trait values are not part of it: stat_increase is reported as a delta for
// the external stat store.
type Character struct {
	Level           int            `json:"level"`
	ClassID         string         `json:"class_id,omitempty"`
	SubclassID      string         `json:"subclass_id,omitempty"`
	DomainIDs       []string       `json:"domain_ids,omitempty"`
	Experiences     []Experience   `json:"experiences"`
	SelectedCards   []SelectedCard `json:"selected_card_ids"`
	HPModifier      int            `json:"hp_modifier"`
	StressModifier  int            `json:"stress_modifier"`
	EvasionModifier int            `json:"evasion_modifier"`
}

// Clone returns a deep copy of c.
func (c Character) Clone() Character {
	out := c
	out.DomainIDs = append([]string(nil), c.DomainIDs...)
	out.Experiences = append([]Experience(nil), c.Experiences...)
	out.SelectedCards = append([]SelectedCard(nil), c.SelectedCards...)
	return out
}

// HasCard reports whether the character already holds cardID.
func (c Character) HasCard(cardID string) bool {
	for _, card := range c.SelectedCards {
		if card.CardID == cardID {
			return true
		}
	}
	return false
}

// Validate checks the snapshot is usable as level-up input.
func (c Character) Validate() error {
	if c.Level < MinLevel || c.Level > MaxLevel {
		return apperrors.New(apperrors.CodeLevelUpCharacterInvalid, "character level must be in range 1..10")
	}
	for _, experience := range c.Experiences {
		if strings.TrimSpace(experience.Text) == "" {
			return apperrors.New(apperrors.CodeLevelUpCharacterInvalid, "experience text must be set")
		}
	}
	return nil
}
