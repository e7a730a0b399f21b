package levelup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/levelup/internal/platform/errors"
)

var (
	// ErrAutoExperienceRequired indicates a tier-start level-up lacks the new experience name.
	ErrAutoExperienceRequired = apperrors.New(apperrors.CodeLevelUpAutoExperienceRequired, "tier-start experience name is required")
	// ErrAutoDomainCardRequired indicates a tier-start level-up lacks the domain card pick.
	ErrAutoDomainCardRequired = apperrors.New(apperrors.CodeLevelUpAutoDomainCardRequired, "tier-start domain card is required")
	// ErrAutoDomainCardIneligible indicates the tier-start card is not eligible.
	ErrAutoDomainCardIneligible = apperrors.New(apperrors.CodeLevelUpAutoDomainCardIneligible, "tier-start domain card is not eligible")
	// ErrUnknownUpgrade indicates an upgrade type outside the closed set.
	ErrUnknownUpgrade = apperrors.New(apperrors.CodeLevelUpUnknownUpgrade, "unknown upgrade type")
	// ErrUpgradeUnavailable indicates a selected type is blocked by tier rules.
	ErrUpgradeUnavailable = apperrors.New(apperrors.CodeLevelUpUpgradeUnavailable, "upgrade is unavailable")
	// ErrBudgetUnmet indicates the selection does not spend exactly the budget.
	ErrBudgetUnmet = apperrors.New(apperrors.CodeLevelUpBudgetUnmet, "upgrades must spend the full budget")
	// ErrStatSelection indicates stat_increase lacks two distinct traits.
	ErrStatSelection = apperrors.New(apperrors.CodeLevelUpStatSelectionInvalid, "stat increase needs two distinct traits")
	// ErrStatAlreadyBoosted indicates a trait was already raised this tier.
	ErrStatAlreadyBoosted = apperrors.New(apperrors.CodeLevelUpStatAlreadyBoosted, "trait already increased this tier")
	// ErrExperienceSelection indicates experience_boost lacks two distinct existing experiences.
	ErrExperienceSelection = apperrors.New(apperrors.CodeLevelUpExperienceInvalid, "experience boost needs two distinct experiences")
	// ErrDomainCardSelection indicates domain_card lacks an eligible card.
	ErrDomainCardSelection = apperrors.New(apperrors.CodeLevelUpDomainCardInvalid, "domain card upgrade needs an eligible card")
	// ErrMulticlassSelection indicates multiclass lacks a consistent class, domain and subclass.
	ErrMulticlassSelection = apperrors.New(apperrors.CodeLevelUpMulticlassInvalid, "multiclass needs class, domain and subclass")
)

// Validate reports every reason sel cannot be confirmed, joined into one
// error. A nil result means Commit will succeed.
func (in Input) Validate(sel Selection) error {
	if err := in.Character.Validate(); err != nil {
		return err
	}
	target := in.TargetLevel()
	if err := ValidateTargetLevel(target); err != nil {
		return err
	}
	if in.History.Has(target) {
		return apperrors.WithMetadata(
			apperrors.CodeLevelUpLevelAlreadyRecorded,
			fmt.Sprintf("level %d already recorded", target),
			map[string]string{"Level": strconv.Itoa(target)},
		)
	}

	var errs []error
	errs = append(errs, in.validateAutoGains(sel)...)
	errs = append(errs, in.validateUpgradeSet(sel)...)
	for _, t := range sel.Types {
		if err := in.validateOptions(sel, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ready reports whether sel can be confirmed.
func (in Input) Ready(sel Selection) bool {
	return in.Validate(sel) == nil
}

func (in Input) validateAutoGains(sel Selection) []error {
	target := in.TargetLevel()
	if !IsTierStart(target) {
		return nil
	}
	level := strconv.Itoa(target)
	var errs []error
	if strings.TrimSpace(sel.AutoExperience) == "" {
		errs = append(errs, apperrors.WithMetadata(
			apperrors.CodeLevelUpAutoExperienceRequired,
			"level "+level+" requires a new experience name",
			map[string]string{"Level": level},
		))
	}
	cardID := strings.TrimSpace(sel.AutoDomainCardID)
	switch {
	case cardID == "":
		errs = append(errs, apperrors.WithMetadata(
			apperrors.CodeLevelUpAutoDomainCardRequired,
			"level "+level+" requires a domain card pick",
			map[string]string{"Level": level},
		))
	case !in.isEligibleCard(cardID):
		errs = append(errs, apperrors.WithMetadata(
			apperrors.CodeLevelUpAutoDomainCardIneligible,
			fmt.Sprintf("domain card %q is not eligible at level %d", cardID, target),
			map[string]string{"Level": level, "CardID": cardID},
		))
	}
	return errs
}

func (in Input) validateUpgradeSet(sel Selection) []error {
	var errs []error
	seen := map[UpgradeType]struct{}{}
	for _, t := range sel.Types {
		if _, dup := seen[t]; dup {
			errs = append(errs, unavailable(t, "duplicate"))
			continue
		}
		seen[t] = struct{}{}
		if !t.Valid() {
			errs = append(errs, apperrors.WithMetadata(
				apperrors.CodeLevelUpUnknownUpgrade,
				fmt.Sprintf("unknown upgrade %q", t),
				map[string]string{"Upgrade": string(t)},
			))
			continue
		}
		if reason := in.blockReason(sel, t, false); reason != BlockNone {
			errs = append(errs, unavailable(t, string(reason)))
		}
	}
	if spent := sel.Spent(); spent != Budget {
		errs = append(errs, apperrors.WithMetadata(
			apperrors.CodeLevelUpBudgetUnmet,
			fmt.Sprintf("upgrades cost %d, want %d", spent, Budget),
			map[string]string{"Spent": strconv.Itoa(spent), "Budget": strconv.Itoa(Budget)},
		))
	}
	return errs
}

func unavailable(t UpgradeType, reason string) error {
	return apperrors.WithMetadata(
		apperrors.CodeLevelUpUpgradeUnavailable,
		fmt.Sprintf("upgrade %q unavailable: %s", t, reason),
		map[string]string{"Upgrade": string(t), "Reason": reason},
	)
}

func (in Input) validateOptions(sel Selection, t UpgradeType) error {
	switch t {
	case UpgradeStatIncrease:
		return in.validateStats(sel.Stats)
	case UpgradeExperienceBoost:
		return in.validateExperienceIndices(sel.ExperienceIndices)
	case UpgradeDomainCard:
		return in.validateDomainCard(sel)
	case UpgradeMulticlass:
		return in.validateMulticlass(sel.Multiclass)
	default:
		return nil
	}
}

func (in Input) validateStats(stats []string) error {
	if len(stats) != 2 || stats[0] == stats[1] || !IsTrait(stats[0]) || !IsTrait(stats[1]) {
		return apperrors.WithMetadata(
			apperrors.CodeLevelUpStatSelectionInvalid,
			fmt.Sprintf("stat increase needs two distinct traits, got %v", stats),
			map[string]string{"Stats": strings.Join(stats, ",")},
		)
	}
	boosted := in.History.BoostedStats(in.Tier())
	var errs []error
	for _, stat := range stats {
		if _, ok := boosted[stat]; ok {
			errs = append(errs, apperrors.WithMetadata(
				apperrors.CodeLevelUpStatAlreadyBoosted,
				fmt.Sprintf("trait %q already increased in tier %d", stat, in.Tier()),
				map[string]string{"Stat": stat, "Tier": strconv.Itoa(in.Tier())},
			))
		}
	}
	return errors.Join(errs...)
}

func (in Input) validateExperienceIndices(indices []int) error {
	count := len(in.Character.Experiences)
	valid := len(indices) == 2 && indices[0] != indices[1]
	for _, index := range indices {
		if index < 0 || index >= count {
			valid = false
		}
	}
	if !valid {
		return apperrors.WithMetadata(
			apperrors.CodeLevelUpExperienceInvalid,
			fmt.Sprintf("experience boost needs two distinct indices below %d, got %v", count, indices),
			map[string]string{"Count": strconv.Itoa(count)},
		)
	}
	return nil
}

func (in Input) validateDomainCard(sel Selection) error {
	cardID := strings.TrimSpace(sel.DomainCardID)
	level := strconv.Itoa(in.TargetLevel())
	sameAsAuto := IsTierStart(in.TargetLevel()) && cardID == strings.TrimSpace(sel.AutoDomainCardID)
	if cardID == "" || sameAsAuto || !in.isEligibleCard(cardID) {
		return apperrors.WithMetadata(
			apperrors.CodeLevelUpDomainCardInvalid,
			fmt.Sprintf("domain card %q is not an eligible upgrade pick at level %s", cardID, level),
			map[string]string{"Level": level, "CardID": cardID},
		)
	}
	return nil
}

func (in Input) validateMulticlass(choice MulticlassChoice) error {
	invalid := func(reason string) error {
		return apperrors.WithMetadata(
			apperrors.CodeLevelUpMulticlassInvalid,
			"multiclass: "+reason,
			map[string]string{"Class": choice.ClassID, "Reason": reason},
		)
	}
	class, ok := in.Catalog.Class(choice.ClassID)
	if !ok {
		return invalid("class is required")
	}
	if class.ID == in.Character.ClassID {
		return invalid("class must differ from the current class")
	}
	domainOK := false
	for _, id := range class.DomainIDs {
		if id != "" && id == choice.DomainID {
			domainOK = true
		}
	}
	if !domainOK {
		return invalid("domain must belong to the class")
	}
	subclass, ok := in.Catalog.Subclass(choice.SubclassID)
	if !ok || subclass.ClassID != class.ID {
		return invalid("subclass must belong to the class")
	}
	return nil
}
