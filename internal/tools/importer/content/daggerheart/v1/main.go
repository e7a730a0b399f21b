package catalogimporter

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/louisbranch/levelup/internal/platform/config"
	"github.com/louisbranch/levelup/internal/services/game/storage"
	storagesqlite "github.com/louisbranch/levelup/internal/services/game/storage/sqlite"
)

const (
	defaultBaseLocale = "en-US"
	defaultSystemID   = "daggerheart"
	defaultSystemVer  = "v1"
)

// Config holds configuration for the catalog importer.
type Config struct {
	Dir        string
	DBPath     string `env:"FRACTURING_SPACE_GAME_CONTENT_DB_PATH" envDefault:"data/game-content.db"`
	BaseLocale string
	DryRun     bool
}

// ParseConfig loads env defaults and then parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{BaseLocale: defaultBaseLocale}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Dir, "dir", "", "directory containing locale subfolders")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "content database path")
	fs.StringVar(&cfg.BaseLocale, "base-locale", cfg.BaseLocale, "locale whose records are imported")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.Dir) == "" {
		return Config{}, errors.New("dir is required")
	}
	if strings.TrimSpace(cfg.BaseLocale) == "" {
		return Config{}, errors.New("base-locale is required")
	}

	return cfg, nil
}

// Run executes the importer using the provided Config.
//
// Every locale folder is validated. Records are imported from the base
// locale only; other locales must reference ids the base locale defines.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return errors.New("dir is required")
	}
	baseLocale := strings.TrimSpace(cfg.BaseLocale)
	if baseLocale == "" {
		return errors.New("base-locale is required")
	}

	locales, err := listLocaleDirs(dir)
	if err != nil {
		return err
	}
	if len(locales) == 0 {
		return errors.New("no locale directories found")
	}
	if !contains(locales, baseLocale) {
		return fmt.Errorf("base-locale %s not found in %s", baseLocale, dir)
	}

	base, err := readLocalePayloads(filepath.Join(dir, baseLocale))
	if err != nil {
		return fmt.Errorf("read %s: %w", baseLocale, err)
	}
	if err := validateLocalePayloads(baseLocale, base); err != nil {
		return fmt.Errorf("validate %s: %w", baseLocale, err)
	}
	if err := validateCatalog(base); err != nil {
		return fmt.Errorf("validate %s: %w", baseLocale, err)
	}
	for _, locale := range locales {
		if locale == baseLocale {
			continue
		}
		payloads, err := readLocalePayloads(filepath.Join(dir, locale))
		if err != nil {
			return fmt.Errorf("read %s: %w", locale, err)
		}
		if err := validateLocalePayloads(locale, payloads); err != nil {
			return fmt.Errorf("validate %s: %w", locale, err)
		}
		if err := validateTranslation(base, payloads); err != nil {
			return fmt.Errorf("validate %s: %w", locale, err)
		}
	}

	counts := base.counts()
	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d locale(s): %s\n", len(locales), counts)
		return err
	}

	store, err := storagesqlite.OpenContent(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer store.Close()

	now := time.Now().UTC()
	err = store.RunInTx(ctx, func(tx *storagesqlite.Store) error {
		return upsertCatalog(ctx, tx, base, now)
	})
	if err != nil {
		return fmt.Errorf("import %s: %w", baseLocale, err)
	}
	_, err = fmt.Fprintf(out, "imported %s from %s into %s\n", counts, baseLocale, cfg.DBPath)
	return err
}

func listLocaleDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var locales []string
	for _, entry := range entries {
		if entry.IsDir() {
			locales = append(locales, entry.Name())
		}
	}
	sort.Strings(locales)
	return locales, nil
}

func contains(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

type localePayloads struct {
	Domains     *domainPayload
	DomainCards *domainCardPayload
	Classes     *classPayload
	Subclasses  *subclassPayload
}

func (p localePayloads) counts() string {
	var domains, cards, classes, subclasses int
	if p.Domains != nil {
		domains = len(p.Domains.Items)
	}
	if p.DomainCards != nil {
		cards = len(p.DomainCards.Items)
	}
	if p.Classes != nil {
		classes = len(p.Classes.Items)
	}
	if p.Subclasses != nil {
		subclasses = len(p.Subclasses.Items)
	}
	return fmt.Sprintf("%d domains, %d domain cards, %d classes, %d subclasses", domains, cards, classes, subclasses)
}

func (p localePayloads) headers() map[string]payloadHeader {
	headers := map[string]payloadHeader{}
	if p.Domains != nil {
		headers["domains.json"] = p.Domains.payloadHeader
	}
	if p.DomainCards != nil {
		headers["domain_cards.json"] = p.DomainCards.payloadHeader
	}
	if p.Classes != nil {
		headers["classes.json"] = p.Classes.payloadHeader
	}
	if p.Subclasses != nil {
		headers["subclasses.json"] = p.Subclasses.payloadHeader
	}
	return headers
}

func readLocalePayloads(dir string) (localePayloads, error) {
	var payloads localePayloads
	var err error
	payloads.Domains, err = readJSON[domainPayload](dir, "domains.json")
	if err != nil {
		return payloads, err
	}
	payloads.DomainCards, err = readJSON[domainCardPayload](dir, "domain_cards.json")
	if err != nil {
		return payloads, err
	}
	payloads.Classes, err = readJSON[classPayload](dir, "classes.json")
	if err != nil {
		return payloads, err
	}
	payloads.Subclasses, err = readJSON[subclassPayload](dir, "subclasses.json")
	if err != nil {
		return payloads, err
	}
	return payloads, nil
}

func readJSON[T any](dir string, name string) (*T, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &value, nil
}

func validateLocalePayloads(locale string, payloads localePayloads) error {
	headers := payloads.headers()
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		header := headers[name]
		if header.SystemID != defaultSystemID {
			return fmt.Errorf("%s: unsupported system id %s", name, header.SystemID)
		}
		if header.SystemVersion != defaultSystemVer {
			return fmt.Errorf("%s: unsupported system version %s", name, header.SystemVersion)
		}
		if strings.TrimSpace(header.Source) == "" {
			return fmt.Errorf("%s: source is required", name)
		}
		if header.Locale != locale {
			return fmt.Errorf("%s: locale mismatch: %s", name, header.Locale)
		}
	}
	return nil
}

// upsertStore is the write side the importer needs.
type upsertStore interface {
	PutDaggerheartDomain(ctx context.Context, d storage.DaggerheartDomain) error
	PutDaggerheartDomainCard(ctx context.Context, c storage.DaggerheartDomainCard) error
	PutDaggerheartClass(ctx context.Context, c storage.DaggerheartClass) error
	PutDaggerheartSubclass(ctx context.Context, s storage.DaggerheartSubclass) error
}
