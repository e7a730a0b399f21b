package levelup

import apperrors "github.com/louisbranch/levelup/internal/platform/errors"

// Derived holds values recomputed from a character and its history for
// display. None of them are stored.
type Derived struct {
	Level            int               `json:"level"`
	Tier             int               `json:"tier"`
	Proficiency      int               `json:"proficiency"`
	NextSubclassTier SubclassTier      `json:"next_subclass_tier,omitempty"`
	DomainIDs        []string          `json:"domain_ids"`
	MulticlassGrants []MulticlassGrant `json:"multiclass_grants,omitempty"`
}

// Derive recomputes display values for character.
func Derive(character Character, history History) Derived {
	next, _ := NextSubclassTier(history)
	in := Input{Character: character, History: history}
	return Derived{
		Level:            character.Level,
		Tier:             TierForLevel(character.Level),
		Proficiency:      Proficiency(character.Level, history),
		NextSubclassTier: next,
		DomainIDs:        in.Domains(),
		MulticlassGrants: history.MulticlassGrants(),
	}
}

// Problem is one unmet confirmation requirement.
type Problem struct {
	Code     apperrors.Code    `json:"code"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Preview is everything a level-up dialog shows for a selection.
type Preview struct {
	CurrentLevel        int            `json:"current_level"`
	TargetLevel         int            `json:"target_level"`
	Tier                int            `json:"tier"`
	TierStart           bool           `json:"tier_start"`
	Proficiency         int            `json:"proficiency"`
	NextProficiency     int            `json:"next_proficiency"`
	NextSubclassTier    SubclassTier   `json:"next_subclass_tier,omitempty"`
	EligibleDomainCards []DomainCard   `json:"eligible_domain_cards"`
	Availability        []Availability `json:"availability"`
	Spent               int            `json:"spent"`
	Budget              int            `json:"budget"`
	Ready               bool           `json:"ready"`
	Problems            []Problem      `json:"problems,omitempty"`
}

// Preview evaluates sel without committing it.
func (in Input) Preview(sel Selection) Preview {
	target := in.TargetLevel()
	nextProficiency := Proficiency(target, in.History)
	if sel.Has(UpgradeProficiencyIncrease) {
		nextProficiency++
	}
	subclassTier, _ := NextSubclassTier(in.History)
	err := in.Validate(sel)
	return Preview{
		CurrentLevel:        in.Character.Level,
		TargetLevel:         target,
		Tier:                in.Tier(),
		TierStart:           IsTierStart(target),
		Proficiency:         Proficiency(in.Character.Level, in.History),
		NextProficiency:     nextProficiency,
		NextSubclassTier:    subclassTier,
		EligibleDomainCards: in.EligibleDomainCards(),
		Availability:        in.Availability(sel),
		Spent:               sel.Spent(),
		Budget:              Budget,
		Ready:               err == nil,
		Problems:            problems(err),
	}
}

func problems(err error) []Problem {
	if err == nil {
		return nil
	}
	var out []Problem
	var walk func(error)
	walk = func(e error) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		problem := Problem{Code: apperrors.GetCode(e), Message: e.Error()}
		if domainErr, ok := e.(*apperrors.Error); ok {
			problem.Metadata = domainErr.Metadata
		}
		out = append(out, problem)
	}
	walk(err)
	return out
}
