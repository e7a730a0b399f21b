package db

import (
	"context"
)

const getDaggerheartProgression = `
SELECT character_id, level, profile_json, level_up_choices_json, version,
       content_hash, signature, signature_key_id, created_at, updated_at
FROM daggerheart_progressions WHERE character_id = ?
`

func (q *Queries) GetDaggerheartProgression(ctx context.Context, characterID string) (DaggerheartProgression, error) {
	row := q.db.QueryRowContext(ctx, getDaggerheartProgression, characterID)
	var i DaggerheartProgression
	err := row.Scan(
		&i.CharacterID,
		&i.Level,
		&i.ProfileJson,
		&i.LevelUpChoicesJson,
		&i.Version,
		&i.ContentHash,
		&i.Signature,
		&i.SignatureKeyID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const insertDaggerheartProgression = `
INSERT INTO daggerheart_progressions (
    character_id, level, profile_json, level_up_choices_json, version,
    content_hash, signature, signature_key_id, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(character_id) DO NOTHING
`

type InsertDaggerheartProgressionParams struct {
	CharacterID        string
	Level              int64
	ProfileJson        string
	LevelUpChoicesJson string
	Version            int64
	ContentHash        string
	Signature          string
	SignatureKeyID     string
	CreatedAt          int64
	UpdatedAt          int64
}

func (q *Queries) InsertDaggerheartProgression(ctx context.Context, arg InsertDaggerheartProgressionParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, insertDaggerheartProgression,
		arg.CharacterID,
		arg.Level,
		arg.ProfileJson,
		arg.LevelUpChoicesJson,
		arg.Version,
		arg.ContentHash,
		arg.Signature,
		arg.SignatureKeyID,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const updateDaggerheartProgression = `
UPDATE daggerheart_progressions SET
    level = ?,
    profile_json = ?,
    level_up_choices_json = ?,
    version = ?,
    content_hash = ?,
    signature = ?,
    signature_key_id = ?,
    updated_at = ?
WHERE character_id = ? AND version = ?
`

type UpdateDaggerheartProgressionParams struct {
	Level              int64
	ProfileJson        string
	LevelUpChoicesJson string
	Version            int64
	ContentHash        string
	Signature          string
	SignatureKeyID     string
	UpdatedAt          int64
	CharacterID        string
	ExpectedVersion    int64
}

func (q *Queries) UpdateDaggerheartProgression(ctx context.Context, arg UpdateDaggerheartProgressionParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateDaggerheartProgression,
		arg.Level,
		arg.ProfileJson,
		arg.LevelUpChoicesJson,
		arg.Version,
		arg.ContentHash,
		arg.Signature,
		arg.SignatureKeyID,
		arg.UpdatedAt,
		arg.CharacterID,
		arg.ExpectedVersion,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
