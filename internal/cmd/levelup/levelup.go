// Package levelup parses level-up command flags and runs its subcommands
// against the content and progression stores.
package levelup

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	entrypoint "github.com/louisbranch/levelup/internal/platform/cmd"
	"github.com/louisbranch/levelup/internal/platform/id"
	rules "github.com/louisbranch/levelup/internal/services/game/domain/systems/daggerheart/levelup"
	"github.com/louisbranch/levelup/internal/services/game/progression"
	"github.com/louisbranch/levelup/internal/services/game/storage/integrity"
	storagesqlite "github.com/louisbranch/levelup/internal/services/game/storage/sqlite"
)

// Config holds level-up command configuration.
type Config struct {
	ContentDBPath     string `env:"FRACTURING_SPACE_GAME_CONTENT_DB_PATH" envDefault:"data/game-content.db"`
	ProgressionDBPath string `env:"FRACTURING_SPACE_GAME_PROGRESSION_DB_PATH" envDefault:"data/game-progression.db"`
	Locale            string `env:"FRACTURING_SPACE_LOCALE" envDefault:"en-US"`
	// Args is the subcommand and its flags.
	Args []string
}

// ParseConfig parses environment and global flags into a Config. Arguments
// after the global flags are kept for the subcommand.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.ContentDBPath, "content-db", cfg.ContentDBPath, "content database path")
	fs.StringVar(&cfg.ProgressionDBPath, "progression-db", cfg.ProgressionDBPath, "progression database path")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for error messages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()
	return cfg, nil
}

// Run opens the stores and executes the subcommand in cfg.Args. JSON
// results go to out; "-file -" reads the request body from in.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceLevelUp, func(ctx context.Context) error {
		svc, closeStores, err := openService(cfg)
		if err != nil {
			return err
		}
		defer closeStores()
		return entrypoint.Dispatch(ctx, cfg.Args, subcommands(svc, in, out))
	})
}

func openService(cfg Config) (*progression.Service, func(), error) {
	var opts []storagesqlite.Option
	keyring, err := integrity.KeyringFromEnv()
	switch {
	case errors.Is(err, integrity.ErrKeyNotConfigured):
		log.Printf("%s: progression signing disabled: %v", entrypoint.ServiceLevelUp, err)
	case err != nil:
		return nil, nil, fmt.Errorf("load progression keyring: %w", err)
	default:
		opts = append(opts, storagesqlite.WithKeyring(keyring))
	}

	content, err := storagesqlite.OpenContent(cfg.ContentDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open content store: %w", err)
	}
	progressions, err := storagesqlite.OpenProgression(cfg.ProgressionDBPath, opts...)
	if err != nil {
		_ = content.Close()
		return nil, nil, fmt.Errorf("open progression store: %w", err)
	}
	closeStores := func() {
		if err := progressions.Close(); err != nil {
			log.Printf("%s: close progression store: %v", entrypoint.ServiceLevelUp, err)
		}
		if err := content.Close(); err != nil {
			log.Printf("%s: close content store: %v", entrypoint.ServiceLevelUp, err)
		}
	}
	svc, err := progression.NewService(content, progressions)
	if err != nil {
		closeStores()
		return nil, nil, err
	}
	return svc, closeStores, nil
}

type requestFlags struct {
	characterID string
	file        string
	upgrade     string
}

func parseRequest(name string, args []string, withUpgrade bool) (requestFlags, error) {
	req, err := parseRequestFlags(name, args, withUpgrade)
	if err != nil {
		return requestFlags{}, err
	}
	if strings.TrimSpace(req.characterID) == "" {
		return requestFlags{}, fmt.Errorf("%s: -character is required", name)
	}
	return req, nil
}

func parseRequestFlags(name string, args []string, withUpgrade bool) (requestFlags, error) {
	var req requestFlags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&req.characterID, "character", "", "character id")
	fs.StringVar(&req.file, "file", "", "JSON request file, - for stdin")
	if withUpgrade {
		fs.StringVar(&req.upgrade, "upgrade", "", "upgrade type to toggle")
	}
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return requestFlags{}, fmt.Errorf("%s: %w", name, err)
	}
	if withUpgrade && strings.TrimSpace(req.upgrade) == "" {
		return requestFlags{}, fmt.Errorf("%s: -upgrade is required", name)
	}
	return req, nil
}

// readBody decodes the request file into target. An empty path leaves
// target untouched.
func readBody(path string, in io.Reader, target any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	var data []byte
	var err error
	if path == "-" {
		if in == nil {
			return errors.New("stdin is not available")
		}
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeJSON(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func subcommands(svc *progression.Service, in io.Reader, out io.Writer) []entrypoint.Subcommand {
	return []entrypoint.Subcommand{
		{
			Name:  "create",
			Usage: "create [-character ID] -file character.json",
			Run: func(ctx context.Context, args []string) error {
				req, err := parseRequestFlags("create", args, false)
				if err != nil {
					return err
				}
				if strings.TrimSpace(req.characterID) == "" {
					if req.characterID, err = id.NewID(); err != nil {
						return err
					}
				}
				if strings.TrimSpace(req.file) == "" {
					return errors.New("create: -file is required")
				}
				var character rules.Character
				if err := readBody(req.file, in, &character); err != nil {
					return err
				}
				created, err := svc.Create(ctx, req.characterID, character)
				if err != nil {
					return err
				}
				return writeJSON(out, created)
			},
		},
		{
			Name:  "show",
			Usage: "show -character ID",
			Run: func(ctx context.Context, args []string) error {
				req, err := parseRequest("show", args, false)
				if err != nil {
					return err
				}
				current, err := svc.Get(ctx, req.characterID)
				if err != nil {
					return err
				}
				return writeJSON(out, current)
			},
		},
		{
			Name:  "options",
			Usage: "options -character ID [-file selection.json]",
			Run: func(ctx context.Context, args []string) error {
				req, err := parseRequest("options", args, false)
				if err != nil {
					return err
				}
				var sel rules.Selection
				if err := readBody(req.file, in, &sel); err != nil {
					return err
				}
				options, err := svc.Options(ctx, req.characterID, sel)
				if err != nil {
					return err
				}
				return writeJSON(out, options)
			},
		},
		{
			Name:  "toggle",
			Usage: "toggle -character ID -upgrade TYPE [-file selection.json]",
			Run: func(ctx context.Context, args []string) error {
				req, err := parseRequest("toggle", args, true)
				if err != nil {
					return err
				}
				var sel rules.Selection
				if err := readBody(req.file, in, &sel); err != nil {
					return err
				}
				next, options, err := svc.Toggle(ctx, req.characterID, sel, rules.UpgradeType(req.upgrade))
				if err != nil {
					return err
				}
				return writeJSON(out, struct {
					Selection rules.Selection     `json:"selection"`
					Options   progression.Options `json:"options"`
				}{next, options})
			},
		},
		{
			Name:  "apply",
			Usage: "apply -character ID -file selection.json",
			Run: func(ctx context.Context, args []string) error {
				req, err := parseRequest("apply", args, false)
				if err != nil {
					return err
				}
				if strings.TrimSpace(req.file) == "" {
					return errors.New("apply: -file is required")
				}
				var sel rules.Selection
				if err := readBody(req.file, in, &sel); err != nil {
					return err
				}
				result, err := svc.LevelUp(ctx, req.characterID, sel)
				if err != nil {
					return err
				}
				return writeJSON(out, result)
			},
		},
	}
}
