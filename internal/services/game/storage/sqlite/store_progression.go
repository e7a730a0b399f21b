package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/levelup/internal/platform/errors"
	"github.com/louisbranch/levelup/internal/services/game/storage"
	"github.com/louisbranch/levelup/internal/services/game/storage/integrity"
	"github.com/louisbranch/levelup/internal/services/game/storage/sqlite/db"
)

const emptyChoicesJSON = "{}"

type progressionSeal struct {
	contentHash    string
	signature      string
	signatureKeyID string
}

// GetProgression loads the progression of one character.
func (s *Store) GetProgression(ctx context.Context, characterID string) (storage.DaggerheartProgression, error) {
	if err := s.validate(ctx); err != nil {
		return storage.DaggerheartProgression{}, err
	}
	if strings.TrimSpace(characterID) == "" {
		return storage.DaggerheartProgression{}, fmt.Errorf("character id is required")
	}

	row, err := s.q.GetDaggerheartProgression(ctx, characterID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DaggerheartProgression{}, storage.ErrNotFound
		}
		return storage.DaggerheartProgression{}, fmt.Errorf("get daggerheart progression: %w", err)
	}
	if err := s.verify(row); err != nil {
		return storage.DaggerheartProgression{}, err
	}
	return dbDaggerheartProgressionToStorage(row), nil
}

// CreateProgression stores the first progression record of a character.
func (s *Store) CreateProgression(ctx context.Context, record storage.DaggerheartProgression) (storage.DaggerheartProgression, error) {
	if err := s.validate(ctx); err != nil {
		return storage.DaggerheartProgression{}, err
	}
	if err := validateProgression(record); err != nil {
		return storage.DaggerheartProgression{}, err
	}

	now := s.now().UTC()
	record.Version = 1
	record.CreatedAt = now
	record.UpdatedAt = now
	if len(record.LevelUpChoicesJSON) == 0 {
		record.LevelUpChoicesJSON = []byte(emptyChoicesJSON)
	}
	seal, err := s.seal(record)
	if err != nil {
		return storage.DaggerheartProgression{}, err
	}

	inserted, err := s.q.InsertDaggerheartProgression(ctx, db.InsertDaggerheartProgressionParams{
		CharacterID:        record.CharacterID,
		Level:              int64(record.Level),
		ProfileJson:        string(record.ProfileJSON),
		LevelUpChoicesJson: string(record.LevelUpChoicesJSON),
		Version:            record.Version,
		ContentHash:        seal.contentHash,
		Signature:          seal.signature,
		SignatureKeyID:     seal.signatureKeyID,
		CreatedAt:          toMillis(record.CreatedAt),
		UpdatedAt:          toMillis(record.UpdatedAt),
	})
	if err != nil {
		return storage.DaggerheartProgression{}, fmt.Errorf("insert daggerheart progression: %w", err)
	}
	if inserted == 0 {
		return storage.DaggerheartProgression{}, apperrors.WithMetadata(
			apperrors.CodeLevelUpProgressionExists,
			fmt.Sprintf("progression for character %s already exists", record.CharacterID),
			map[string]string{"CharacterID": record.CharacterID},
		)
	}
	return record, nil
}

// UpdateProgression writes record when the stored version still equals
// expectedVersion. The check and the write are one statement.
func (s *Store) UpdateProgression(ctx context.Context, record storage.DaggerheartProgression, expectedVersion int64) (storage.DaggerheartProgression, error) {
	if err := s.validate(ctx); err != nil {
		return storage.DaggerheartProgression{}, err
	}
	if err := validateProgression(record); err != nil {
		return storage.DaggerheartProgression{}, err
	}
	if len(record.LevelUpChoicesJSON) == 0 {
		return storage.DaggerheartProgression{}, fmt.Errorf("level-up choices are required")
	}

	record.Version = expectedVersion + 1
	record.UpdatedAt = s.now().UTC()
	seal, err := s.seal(record)
	if err != nil {
		return storage.DaggerheartProgression{}, err
	}

	updated, err := s.q.UpdateDaggerheartProgression(ctx, db.UpdateDaggerheartProgressionParams{
		Level:              int64(record.Level),
		ProfileJson:        string(record.ProfileJSON),
		LevelUpChoicesJson: string(record.LevelUpChoicesJSON),
		Version:            record.Version,
		ContentHash:        seal.contentHash,
		Signature:          seal.signature,
		SignatureKeyID:     seal.signatureKeyID,
		UpdatedAt:          toMillis(record.UpdatedAt),
		CharacterID:        record.CharacterID,
		ExpectedVersion:    expectedVersion,
	})
	if err != nil {
		return storage.DaggerheartProgression{}, fmt.Errorf("update daggerheart progression: %w", err)
	}
	if updated == 1 {
		current, err := s.q.GetDaggerheartProgression(ctx, record.CharacterID)
		if err != nil {
			return storage.DaggerheartProgression{}, fmt.Errorf("reload daggerheart progression: %w", err)
		}
		return dbDaggerheartProgressionToStorage(current), nil
	}

	current, err := s.q.GetDaggerheartProgression(ctx, record.CharacterID)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.DaggerheartProgression{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.DaggerheartProgression{}, fmt.Errorf("get daggerheart progression: %w", err)
	}
	return storage.DaggerheartProgression{}, apperrors.WithMetadata(
		apperrors.CodeLevelUpProgressionConflict,
		fmt.Sprintf("progression for character %s is at version %d, expected %d", record.CharacterID, current.Version, expectedVersion),
		map[string]string{"CharacterID": record.CharacterID},
	)
}

func validateProgression(record storage.DaggerheartProgression) error {
	if strings.TrimSpace(record.CharacterID) == "" {
		return fmt.Errorf("character id is required")
	}
	if record.Level < 1 || record.Level > 10 {
		return fmt.Errorf("progression level %d is out of range 1..10", record.Level)
	}
	if len(record.ProfileJSON) == 0 {
		return fmt.Errorf("profile is required")
	}
	return nil
}

func (s *Store) seal(record storage.DaggerheartProgression) (progressionSeal, error) {
	hash, err := integrity.ProgressionHash(record.CharacterID, record.Level, record.Version, record.ProfileJSON, record.LevelUpChoicesJSON)
	if err != nil {
		return progressionSeal{}, fmt.Errorf("hash progression: %w", err)
	}
	seal := progressionSeal{contentHash: hash}
	if s.keyring == nil {
		return seal, nil
	}
	seal.signature, seal.signatureKeyID, err = s.keyring.Sign(record.CharacterID, hash)
	if err != nil {
		return progressionSeal{}, fmt.Errorf("sign progression: %w", err)
	}
	return seal, nil
}

// verify recomputes the content hash of row and, when a keyring is
// configured, checks its signature. Unsigned rows are rejected once signing
// is enabled.
func (s *Store) verify(row db.DaggerheartProgression) error {
	corrupt := func(reason string) error {
		return apperrors.WithMetadata(
			apperrors.CodeLevelUpProgressionCorrupt,
			fmt.Sprintf("progression for character %s: %s", row.CharacterID, reason),
			map[string]string{"CharacterID": row.CharacterID, "Reason": reason},
		)
	}
	hash, err := integrity.ProgressionHash(row.CharacterID, int(row.Level), row.Version, []byte(row.ProfileJson), []byte(row.LevelUpChoicesJson))
	if err != nil {
		return corrupt(err.Error())
	}
	if hash != row.ContentHash {
		return corrupt("content hash mismatch")
	}
	if s.keyring == nil {
		return nil
	}
	if row.Signature == "" {
		return corrupt("record is unsigned")
	}
	if err := s.keyring.Verify(row.CharacterID, row.ContentHash, row.Signature, row.SignatureKeyID); err != nil {
		return corrupt(err.Error())
	}
	return nil
}
