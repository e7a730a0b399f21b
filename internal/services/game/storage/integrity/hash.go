package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

type progressionEnvelope struct {
	CharacterID    string          `json:"character_id"`
	Level          int             `json:"level"`
	Version        int64           `json:"version"`
	Profile        json.RawMessage `json:"profile"`
	LevelUpChoices json.RawMessage `json:"level_up_choices"`
}

// ProgressionHash computes the content hash of a progression record.
//
// Payloads must be valid JSON; they are embedded verbatim so the hash covers
// the exact bytes that are stored.
func ProgressionHash(characterID string, level int, version int64, profile, choices []byte) (string, error) {
	if strings.TrimSpace(characterID) == "" {
		return "", fmt.Errorf("character id is required")
	}
	if !json.Valid(profile) {
		return "", fmt.Errorf("profile is not valid json")
	}
	if !json.Valid(choices) {
		return "", fmt.Errorf("level-up choices are not valid json")
	}
	data, err := json.Marshal(progressionEnvelope{
		CharacterID:    characterID,
		Level:          level,
		Version:        version,
		Profile:        profile,
		LevelUpChoices: choices,
	})
	if err != nil {
		return "", fmt.Errorf("marshal progression envelope: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
