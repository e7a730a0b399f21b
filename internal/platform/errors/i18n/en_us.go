package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown                         = "UNKNOWN"
	CodeLevelUpInvalidLevel             = "LEVELUP_INVALID_LEVEL"
	CodeLevelUpLevelAlreadyRecorded     = "LEVELUP_LEVEL_ALREADY_RECORDED"
	CodeLevelUpAutoExperienceRequired   = "LEVELUP_AUTO_EXPERIENCE_REQUIRED"
	CodeLevelUpAutoDomainCardRequired   = "LEVELUP_AUTO_DOMAIN_CARD_REQUIRED"
	CodeLevelUpAutoDomainCardIneligible = "LEVELUP_AUTO_DOMAIN_CARD_INELIGIBLE"
	CodeLevelUpUnknownUpgrade           = "LEVELUP_UNKNOWN_UPGRADE"
	CodeLevelUpUpgradeUnavailable       = "LEVELUP_UPGRADE_UNAVAILABLE"
	CodeLevelUpBudgetUnmet              = "LEVELUP_BUDGET_UNMET"
	CodeLevelUpStatSelectionInvalid     = "LEVELUP_STAT_SELECTION_INVALID"
	CodeLevelUpStatAlreadyBoosted       = "LEVELUP_STAT_ALREADY_BOOSTED"
	CodeLevelUpExperienceInvalid        = "LEVELUP_EXPERIENCE_SELECTION_INVALID"
	CodeLevelUpDomainCardInvalid        = "LEVELUP_DOMAIN_CARD_SELECTION_INVALID"
	CodeLevelUpMulticlassInvalid        = "LEVELUP_MULTICLASS_SELECTION_INVALID"
	CodeLevelUpHistoryInvalid           = "LEVELUP_HISTORY_INVALID"
	CodeLevelUpCharacterInvalid         = "LEVELUP_CHARACTER_INVALID"
	CodeLevelUpCharacterIDRequired      = "LEVELUP_CHARACTER_ID_REQUIRED"
	CodeLevelUpProgressionExists        = "LEVELUP_PROGRESSION_EXISTS"
	CodeLevelUpProgressionConflict      = "LEVELUP_PROGRESSION_CONFLICT"
	CodeLevelUpProgressionCorrupt       = "LEVELUP_PROGRESSION_CORRUPT"
	CodeContentInvalid                  = "CONTENT_INVALID"
	CodeNotFound                        = "NOT_FOUND"
)

var enUSMessages = map[Code]string{
	CodeUnknown: "An unexpected error occurred",

	// Level-up target errors
	CodeLevelUpInvalidLevel:         "Level {{.Level}} cannot be reached by leveling up; targets range 2..10",
	CodeLevelUpLevelAlreadyRecorded: "Level {{.Level}} has already been recorded for this character",

	// Automatic gain errors
	CodeLevelUpAutoExperienceRequired:   "Name the new experience gained at level {{.Level}}",
	CodeLevelUpAutoDomainCardRequired:   "Pick a domain card for reaching level {{.Level}}",
	CodeLevelUpAutoDomainCardIneligible: "Domain card {{.CardID}} is not available at level {{.Level}}",

	// Upgrade selection errors
	CodeLevelUpUnknownUpgrade:       "Unknown upgrade: {{.Upgrade}}",
	CodeLevelUpUpgradeUnavailable:   "Upgrade {{.Upgrade}} is unavailable ({{.Reason}})",
	CodeLevelUpBudgetUnmet:          "Selected upgrades cost {{.Spent}} of {{.Budget}} points",
	CodeLevelUpStatSelectionInvalid: "Choose two different traits to increase",
	CodeLevelUpStatAlreadyBoosted:   "Trait {{.Stat}} was already increased in this tier",
	CodeLevelUpExperienceInvalid:    "Choose two different existing experiences to boost",
	CodeLevelUpDomainCardInvalid:    "Choose one domain card available at level {{.Level}}",
	CodeLevelUpMulticlassInvalid:    "Choose a class, one of its domains, and one of its subclasses",
	CodeLevelUpHistoryInvalid:       "Level-up history is invalid",
	CodeLevelUpCharacterInvalid:     "Character progression is invalid",
	CodeLevelUpCharacterIDRequired:  "Character ID is required",
	CodeLevelUpProgressionExists:    "Character progression already exists",
	CodeLevelUpProgressionConflict:  "Character changed while leveling up; reload and try again",
	CodeLevelUpProgressionCorrupt:   "Stored character progression failed its integrity check",

	// Content errors
	CodeContentInvalid: "Content catalog entry is invalid",

	// Storage errors
	CodeNotFound: "The requested resource was not found",
}
