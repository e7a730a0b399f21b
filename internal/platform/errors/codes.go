// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Level-up target errors
	CodeLevelUpInvalidLevel         Code = "LEVELUP_INVALID_LEVEL"
	CodeLevelUpLevelAlreadyRecorded Code = "LEVELUP_LEVEL_ALREADY_RECORDED"

	// Automatic gain errors
	CodeLevelUpAutoExperienceRequired   Code = "LEVELUP_AUTO_EXPERIENCE_REQUIRED"
	CodeLevelUpAutoDomainCardRequired   Code = "LEVELUP_AUTO_DOMAIN_CARD_REQUIRED"
	CodeLevelUpAutoDomainCardIneligible Code = "LEVELUP_AUTO_DOMAIN_CARD_INELIGIBLE"

	// Upgrade selection errors
	CodeLevelUpUnknownUpgrade       Code = "LEVELUP_UNKNOWN_UPGRADE"
	CodeLevelUpUpgradeUnavailable   Code = "LEVELUP_UPGRADE_UNAVAILABLE"
	CodeLevelUpBudgetUnmet          Code = "LEVELUP_BUDGET_UNMET"
	CodeLevelUpStatSelectionInvalid Code = "LEVELUP_STAT_SELECTION_INVALID"
	CodeLevelUpStatAlreadyBoosted   Code = "LEVELUP_STAT_ALREADY_BOOSTED"
	CodeLevelUpExperienceInvalid    Code = "LEVELUP_EXPERIENCE_SELECTION_INVALID"
	CodeLevelUpDomainCardInvalid    Code = "LEVELUP_DOMAIN_CARD_SELECTION_INVALID"
	CodeLevelUpMulticlassInvalid    Code = "LEVELUP_MULTICLASS_SELECTION_INVALID"
	CodeLevelUpHistoryInvalid       Code = "LEVELUP_HISTORY_INVALID"
	CodeLevelUpCharacterInvalid     Code = "LEVELUP_CHARACTER_INVALID"
	CodeLevelUpCharacterIDRequired  Code = "LEVELUP_CHARACTER_ID_REQUIRED"
	CodeLevelUpProgressionExists    Code = "LEVELUP_PROGRESSION_EXISTS"
	CodeLevelUpProgressionConflict  Code = "LEVELUP_PROGRESSION_CONFLICT"
	CodeLevelUpProgressionCorrupt   Code = "LEVELUP_PROGRESSION_CORRUPT"
	CodeContentInvalid              Code = "CONTENT_INVALID"
	CodeNotFound                    Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeLevelUpInvalidLevel,
		CodeLevelUpAutoExperienceRequired,
		CodeLevelUpAutoDomainCardRequired,
		CodeLevelUpAutoDomainCardIneligible,
		CodeLevelUpUnknownUpgrade,
		CodeLevelUpBudgetUnmet,
		CodeLevelUpStatSelectionInvalid,
		CodeLevelUpStatAlreadyBoosted,
		CodeLevelUpExperienceInvalid,
		CodeLevelUpDomainCardInvalid,
		CodeLevelUpMulticlassInvalid,
		CodeLevelUpHistoryInvalid,
		CodeLevelUpCharacterInvalid,
		CodeLevelUpCharacterIDRequired,
		CodeContentInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeLevelUpLevelAlreadyRecorded,
		CodeLevelUpUpgradeUnavailable:
		return codes.FailedPrecondition

	// Aborted - optimistic concurrency lost
	case CodeLevelUpProgressionConflict:
		return codes.Aborted

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeLevelUpProgressionExists:
		return codes.AlreadyExists

	// DataLoss - stored record failed integrity checks
	case CodeLevelUpProgressionCorrupt:
		return codes.DataLoss

	default:
		return codes.Internal
	}
}
