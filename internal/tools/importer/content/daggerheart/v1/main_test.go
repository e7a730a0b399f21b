package catalogimporter

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListLocaleDirs(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "pt-BR"), 0o755); err != nil {
		t.Fatalf("mkdir pt-BR: %v", err)
	}
	if err := os.Mkdir(filepath.Join(root, "en-US"), 0o755); err != nil {
		t.Fatalf("mkdir en-US: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("ignore"), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}

	locales, err := listLocaleDirs(root)
	if err != nil {
		t.Fatalf("listLocaleDirs returned error: %v", err)
	}
	expected := []string{"en-US", "pt-BR"}
	if strings.Join(locales, ",") != strings.Join(expected, ",") {
		t.Fatalf("expected %v, got %v", expected, locales)
	}
}

func TestReadJSONMissingFile(t *testing.T) {
	got, err := readJSON[classPayload](t.TempDir(), "classes.json")
	if err != nil {
		t.Fatalf("readJSON returned error: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil payload for missing file")
	}
}

func TestReadJSONInvalid(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "classes.json"), []byte("{"), 0o644); err != nil {
		t.Fatalf("write classes.json: %v", err)
	}
	_, err := readJSON[classPayload](root, "classes.json")
	if err == nil {
		t.Fatal("expected error for invalid json")
	}
	if !strings.Contains(err.Error(), "decode classes.json") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateLocalePayloads(t *testing.T) {
	locale := "en-US"
	payloads := localePayloads{
		Classes: &classPayload{payloadHeader: header(locale)},
		Domains: &domainPayload{payloadHeader: header(locale)},
	}
	if err := validateLocalePayloads(locale, payloads); err != nil {
		t.Fatalf("expected payloads to be valid: %v", err)
	}

	payloads.Classes.SystemID = "other"
	if err := validateLocalePayloads(locale, payloads); err == nil || !strings.Contains(err.Error(), "classes.json") {
		t.Fatalf("expected classes.json system id error, got %v", err)
	}
	payloads.Classes.SystemID = defaultSystemID
	payloads.Domains.Locale = "pt-BR"
	if err := validateLocalePayloads(locale, payloads); err == nil || !strings.Contains(err.Error(), "locale mismatch") {
		t.Fatalf("expected locale mismatch, got %v", err)
	}
	payloads.Domains.Locale = locale
	payloads.Domains.Source = " "
	if err := validateLocalePayloads(locale, payloads); err == nil {
		t.Fatal("expected error for blank source")
	}
}

func TestContains(t *testing.T) {
	items := []string{"a", "b"}
	if !contains(items, "b") {
		t.Fatal("expected contains to return true")
	}
	if contains(items, "c") {
		t.Fatal("expected contains to return false")
	}
}

func TestParseConfig(t *testing.T) {
	t.Setenv("FRACTURING_SPACE_GAME_CONTENT_DB_PATH", "env-content.db")

	cfg, err := ParseConfig(flag.NewFlagSet("importer", flag.ContinueOnError), []string{"-dir", "catalog", "-dry-run"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Dir != "catalog" || cfg.DBPath != "env-content.db" || cfg.BaseLocale != defaultBaseLocale || !cfg.DryRun {
		t.Fatalf("unexpected config %+v", cfg)
	}

	cfg, err = ParseConfig(flag.NewFlagSet("importer", flag.ContinueOnError), []string{"-dir", "catalog", "-db-path", "flag.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != "flag.db" {
		t.Fatalf("expected flag to override env, got %q", cfg.DBPath)
	}

	if _, err := ParseConfig(flag.NewFlagSet("importer", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected error for missing dir")
	}
}

func TestRunImportsBaseLocale(t *testing.T) {
	root := writeCatalog(t)
	dbPath := filepath.Join(t.TempDir(), "content.db")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Dir: root, DBPath: dbPath, BaseLocale: "en-US"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "2 domains, 3 domain cards, 1 classes, 1 subclasses") {
		t.Fatalf("unexpected output %q", out.String())
	}

	store := openContent(t, dbPath)
	cards, err := store.ListDaggerheartDomainCardsByDomain(context.Background(), "blade")
	if err != nil {
		t.Fatalf("list cards: %v", err)
	}
	if len(cards) != 2 || cards[0].ID != "whirlwind" || cards[1].Level != 2 {
		t.Fatalf("blade cards = %+v", cards)
	}
	class, err := store.GetDaggerheartClass(context.Background(), "warrior")
	if err != nil {
		t.Fatalf("get class: %v", err)
	}
	if strings.Join(class.DomainIDs, ",") != "blade,bone" {
		t.Fatalf("class domains = %v", class.DomainIDs)
	}
	if _, err := store.GetDaggerheartSubclass(context.Background(), "call-of-the-brave"); err != nil {
		t.Fatalf("get subclass: %v", err)
	}
}

func TestRunDryRunDoesNotWrite(t *testing.T) {
	root := writeCatalog(t)
	dbPath := filepath.Join(t.TempDir(), "content.db")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Dir: root, DBPath: dbPath, BaseLocale: "en-US", DryRun: true}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "validated 2 locale(s)") {
		t.Fatalf("unexpected output %q", out.String())
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create the database, stat err = %v", err)
	}
}

func TestRunRejectsBadCatalog(t *testing.T) {
	root := writeCatalog(t)
	writeFile(t, filepath.Join(root, "en-US", "domain_cards.json"), `{
		"system_id": "daggerheart", "system_version": "v1", "source": "srd", "locale": "en-US",
		"items": [{"id": "ghost", "name": "Ghost", "domain_id": "sage", "level": 1}]
	}`)
	dbPath := filepath.Join(t.TempDir(), "content.db")

	err := Run(context.Background(), Config{Dir: root, DBPath: dbPath, BaseLocale: "en-US"}, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown domain") {
		t.Fatalf("expected unknown domain error, got %v", err)
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("invalid catalog must not open the database, stat err = %v", err)
	}
}

func TestRunRejectsUntranslatableLocale(t *testing.T) {
	root := writeCatalog(t)
	writeFile(t, filepath.Join(root, "pt-BR", "classes.json"), `{
		"system_id": "daggerheart", "system_version": "v1", "source": "srd", "locale": "pt-BR",
		"items": [{"id": "bardo", "name": "Bardo", "domain_ids": ["blade"]}]
	}`)

	err := Run(context.Background(), Config{Dir: root, BaseLocale: "en-US", DryRun: true}, nil)
	if err == nil || !strings.Contains(err.Error(), "validate pt-BR") {
		t.Fatalf("expected pt-BR validation error, got %v", err)
	}
}

func TestRunRejectsIncompleteLocale(t *testing.T) {
	root := writeCatalog(t)
	if err := os.Remove(filepath.Join(root, "pt-BR", "subclasses.json")); err != nil {
		t.Fatalf("remove subclasses: %v", err)
	}

	err := Run(context.Background(), Config{Dir: root, BaseLocale: "en-US", DryRun: true}, nil)
	if err == nil || !strings.Contains(err.Error(), "missing a translation") {
		t.Fatalf("expected missing translation error, got %v", err)
	}
}

func TestRunRequiresBaseLocale(t *testing.T) {
	root := writeCatalog(t)
	if err := Run(context.Background(), Config{Dir: root, BaseLocale: "fr-FR", DryRun: true}, nil); err == nil {
		t.Fatal("expected missing base locale error")
	}
	if err := Run(context.Background(), Config{Dir: t.TempDir(), BaseLocale: "en-US", DryRun: true}, nil); err == nil {
		t.Fatal("expected no locale directories error")
	}
}
