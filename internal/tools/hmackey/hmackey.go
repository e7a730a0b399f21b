// Package hmackey generates keys for signing stored progressions.
package hmackey

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Config holds configuration for HMAC key generation.
type Config struct {
	Bytes int
	// KeyID, when set, prints a keyring entry for rotation instead of a
	// single key.
	KeyID string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Bytes: 32}
	fs.IntVar(&cfg.Bytes, "bytes", cfg.Bytes, "number of random bytes (default: 32)")
	fs.StringVar(&cfg.KeyID, "key-id", "", "emit a keyring entry with this key id")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates the key and writes it to out as an env assignment.
func Run(cfg Config, out io.Writer, reader io.Reader) error {
	if cfg.Bytes < 16 {
		return errors.New("bytes must be at least 16")
	}
	if out == nil {
		return errors.New("output is required")
	}
	keyID := strings.TrimSpace(cfg.KeyID)
	if strings.ContainsAny(keyID, "=,") {
		return fmt.Errorf("key id %q must not contain '=' or ','", keyID)
	}
	if reader == nil {
		reader = rand.Reader
	}

	buf := make([]byte, cfg.Bytes)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return fmt.Errorf("generate random bytes: %w", err)
	}
	secret := hex.EncodeToString(buf)
	if keyID != "" {
		_, err := fmt.Fprintf(out, "FRACTURING_SPACE_GAME_PROGRESSION_HMAC_KEYS=%s=%s\nFRACTURING_SPACE_GAME_PROGRESSION_HMAC_KEY_ID=%s\n", keyID, secret, keyID)
		return err
	}
	_, err := fmt.Fprintf(out, "FRACTURING_SPACE_GAME_PROGRESSION_HMAC_KEY=%s\n", secret)
	return err
}
