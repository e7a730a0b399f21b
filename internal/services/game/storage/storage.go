package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/levelup/internal/platform/errors"
)

// ErrNotFound indicates a requested persistence record is missing.
// Callers use this to differentiate between legitimate "no such entity" states
// and transport or data corruption failures.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// ErrProgressionExists indicates a progression was created twice for one character.
var ErrProgressionExists = apperrors.New(apperrors.CodeLevelUpProgressionExists, "progression already exists for character")

// ErrVersionConflict indicates an update was based on a stale progression version.
var ErrVersionConflict = apperrors.New(apperrors.CodeLevelUpProgressionConflict, "progression was updated concurrently")

// ErrIntegrity indicates a stored progression no longer matches its content hash or signature.
var ErrIntegrity = apperrors.New(apperrors.CodeLevelUpProgressionCorrupt, "progression failed integrity check")

// DaggerheartDomain is a domain catalog entry (Blade, Bone, Codex...).
type DaggerheartDomain struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DaggerheartDomainCard is a domain card catalog entry.
type DaggerheartDomainCard struct {
	ID          string
	Name        string
	DomainID    string
	Level       int
	Type        string
	RecallCost  int
	FeatureText string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DaggerheartClass is a class catalog entry with its two domains.
type DaggerheartClass struct {
	ID        string
	Name      string
	DomainIDs []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DaggerheartSubclass is a subclass catalog entry.
type DaggerheartSubclass struct {
	ID        string
	Name      string
	ClassID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DaggerheartProgression is the persisted level-up state of one character.
//
// ProfileJSON holds the character snapshot and LevelUpChoicesJSON the
// level-keyed history. Version increases by one on every successful update.
type DaggerheartProgression struct {
	CharacterID        string
	Level              int
	ProfileJSON        []byte
	LevelUpChoicesJSON []byte
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DaggerheartContentReadStore exposes the catalog reads level-up needs.
type DaggerheartContentReadStore interface {
	GetDaggerheartDomain(ctx context.Context, id string) (DaggerheartDomain, error)
	ListDaggerheartDomains(ctx context.Context) ([]DaggerheartDomain, error)
	GetDaggerheartDomainCard(ctx context.Context, id string) (DaggerheartDomainCard, error)
	ListDaggerheartDomainCards(ctx context.Context) ([]DaggerheartDomainCard, error)
	ListDaggerheartDomainCardsByDomain(ctx context.Context, domainID string) ([]DaggerheartDomainCard, error)
	GetDaggerheartClass(ctx context.Context, id string) (DaggerheartClass, error)
	ListDaggerheartClasses(ctx context.Context) ([]DaggerheartClass, error)
	GetDaggerheartSubclass(ctx context.Context, id string) (DaggerheartSubclass, error)
	ListDaggerheartSubclasses(ctx context.Context) ([]DaggerheartSubclass, error)
}

// DaggerheartContentStore manages the Daggerheart content catalog.
type DaggerheartContentStore interface {
	DaggerheartContentReadStore

	PutDaggerheartDomain(ctx context.Context, domain DaggerheartDomain) error
	DeleteDaggerheartDomain(ctx context.Context, id string) error
	PutDaggerheartDomainCard(ctx context.Context, card DaggerheartDomainCard) error
	DeleteDaggerheartDomainCard(ctx context.Context, id string) error
	PutDaggerheartClass(ctx context.Context, class DaggerheartClass) error
	DeleteDaggerheartClass(ctx context.Context, id string) error
	PutDaggerheartSubclass(ctx context.Context, subclass DaggerheartSubclass) error
	DeleteDaggerheartSubclass(ctx context.Context, id string) error
}

// ProgressionStore persists character progression with optimistic concurrency.
type ProgressionStore interface {
	// GetProgression returns ErrNotFound when the character has no progression.
	GetProgression(ctx context.Context, characterID string) (DaggerheartProgression, error)
	// CreateProgression stores record at version 1. It returns
	// ErrProgressionExists when the character already has one.
	CreateProgression(ctx context.Context, record DaggerheartProgression) (DaggerheartProgression, error)
	// UpdateProgression replaces the stored record only when its version
	// equals expectedVersion, returning the record at its new version.
	// A mismatch returns ErrVersionConflict.
	UpdateProgression(ctx context.Context, record DaggerheartProgression, expectedVersion int64) (DaggerheartProgression, error)
}
