package integrity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/levelup/internal/platform/config"
)

const (
	envHMACKeys  = "FRACTURING_SPACE_GAME_PROGRESSION_HMAC_KEYS"
	envHMACKey   = "FRACTURING_SPACE_GAME_PROGRESSION_HMAC_KEY"
	defaultKeyID = "v1"
)

// ErrKeyNotConfigured indicates no HMAC key material is present in the environment.
var ErrKeyNotConfigured = errors.New(envHMACKey + " is not set")

type keyringEnv struct {
	Keys  string `env:"FRACTURING_SPACE_GAME_PROGRESSION_HMAC_KEYS"`
	Key   string `env:"FRACTURING_SPACE_GAME_PROGRESSION_HMAC_KEY"`
	KeyID string `env:"FRACTURING_SPACE_GAME_PROGRESSION_HMAC_KEY_ID"`
}

// KeyringFromEnv loads the HMAC keyring configuration from environment variables.
//
// KEYS takes a comma separated id=secret list and wins over the single KEY.
// It returns ErrKeyNotConfigured when neither is set.
func KeyringFromEnv() (*Keyring, error) {
	var cfg keyringEnv
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, err
	}
	keyID := strings.TrimSpace(cfg.KeyID)
	if keyID == "" {
		keyID = defaultKeyID
	}

	keySpec := strings.TrimSpace(cfg.Keys)
	if keySpec == "" {
		raw := strings.TrimSpace(cfg.Key)
		if raw == "" {
			return nil, ErrKeyNotConfigured
		}
		return NewKeyring(map[string][]byte{keyID: []byte(raw)}, keyID)
	}

	keys := make(map[string][]byte)
	for _, entry := range strings.Split(keySpec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, value, ok := strings.Cut(entry, "=")
		id = strings.TrimSpace(id)
		value = strings.TrimSpace(value)
		if !ok || id == "" || value == "" {
			return nil, fmt.Errorf("invalid %s entry", envHMACKeys)
		}
		keys[id] = []byte(value)
	}
	return NewKeyring(keys, keyID)
}
