// Package main reports translation coverage of the error message catalogs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/louisbranch/levelup/internal/platform/config"
	"github.com/louisbranch/levelup/internal/platform/errors/i18n"
)

type report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []localeStatus `json:"locales"`
}

type localeStatus struct {
	Locale      string            `json:"locale"`
	BaseKeys    int               `json:"base_keys"`
	Translated  int               `json:"translated"`
	Missing     int               `json:"missing"`
	Extra       int               `json:"extra"`
	Completion  float64           `json:"completion"`
	Namespaces  []namespaceStatus `json:"namespaces"`
	MissingKeys []string          `json:"missing_keys"`
	ExtraKeys   []string          `json:"extra_keys"`
}

type namespaceStatus struct {
	Namespace  string  `json:"namespace"`
	BaseKeys   int     `json:"base_keys"`
	Translated int     `json:"translated"`
	Missing    int     `json:"missing"`
	Completion float64 `json:"completion"`
}

func main() {
	var baseLocale, markdownOut, jsonOut string
	var check bool

	flag.StringVar(&baseLocale, "base-locale", i18n.BaseLocale, "base locale used as translation source of truth")
	flag.StringVar(&markdownOut, "out", "", "markdown output path")
	flag.StringVar(&jsonOut, "json-out", "", "json output path")
	flag.BoolVar(&check, "check", false, "exit non-zero when any locale is incomplete")
	flag.Parse()

	codes := registeredCodes()
	if _, ok := codes[baseLocale]; !ok {
		config.Exitf("base locale %q is not registered", baseLocale)
	}

	rep := buildReport(codes, baseLocale)
	if jsonOut != "" {
		config.ExitOnError("write json report", writeJSON(jsonOut, rep))
	}
	if markdownOut != "" {
		config.ExitOnError("write markdown report", writeMarkdown(markdownOut, rep))
	}
	for _, locale := range rep.Locales {
		fmt.Printf("%s: %d/%d (%.1f%%)\n", locale.Locale, locale.Translated, locale.BaseKeys, locale.Completion)
	}
	if check {
		if incomplete := incompleteLocales(rep); len(incomplete) > 0 {
			config.Exitf("incomplete locales: %s", strings.Join(incomplete, ", "))
		}
	}
}

func registeredCodes() map[string][]string {
	out := map[string][]string{}
	for _, locale := range i18n.Locales() {
		out[locale] = i18n.GetCatalog(locale).Codes()
	}
	return out
}

func buildReport(codes map[string][]string, baseLocale string) report {
	base := toSet(codes[baseLocale])
	locales := make([]string, 0, len(codes))
	for locale := range codes {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	statuses := make([]localeStatus, 0, len(locales))
	for _, locale := range locales {
		target := toSet(codes[locale])
		missing := missingKeys(base, target)
		extra := missingKeys(target, base)
		translated := len(base) - len(missing)

		byNamespace := map[string][2]int{}
		for key := range base {
			counts := byNamespace[namespace(key)]
			counts[0]++
			if _, ok := target[key]; ok {
				counts[1]++
			}
			byNamespace[namespace(key)] = counts
		}
		names := make([]string, 0, len(byNamespace))
		for name := range byNamespace {
			names = append(names, name)
		}
		sort.Strings(names)
		namespaces := make([]namespaceStatus, 0, len(names))
		for _, name := range names {
			counts := byNamespace[name]
			namespaces = append(namespaces, namespaceStatus{
				Namespace:  name,
				BaseKeys:   counts[0],
				Translated: counts[1],
				Missing:    counts[0] - counts[1],
				Completion: percent(counts[1], counts[0]),
			})
		}

		statuses = append(statuses, localeStatus{
			Locale:      locale,
			BaseKeys:    len(base),
			Translated:  translated,
			Missing:     len(missing),
			Extra:       len(extra),
			Completion:  percent(translated, len(base)),
			Namespaces:  namespaces,
			MissingKeys: missing,
			ExtraKeys:   extra,
		})
	}
	return report{BaseLocale: baseLocale, Locales: statuses}
}

func incompleteLocales(rep report) []string {
	var out []string
	for _, locale := range rep.Locales {
		if locale.Missing > 0 || locale.Extra > 0 {
			out = append(out, locale.Locale)
		}
	}
	return out
}

// namespace groups codes by their first segment: LEVELUP_BUDGET_UNMET is
// "levelup", NOT_FOUND is "common".
func namespace(code string) string {
	prefix, _, ok := strings.Cut(code, "_")
	if !ok {
		return "common"
	}
	switch prefix {
	case "LEVELUP", "CONTENT":
		return strings.ToLower(prefix)
	default:
		return "common"
	}
}

func writeJSON(path string, rep report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func renderMarkdown(rep report) string {
	var b strings.Builder
	b.WriteString("# Error message i18n status\n\n")
	b.WriteString("Base locale: `")
	b.WriteString(rep.BaseLocale)
	b.WriteString("`.\n\n")

	b.WriteString("| Locale | Base Keys | Translated | Missing | Extra | Completion |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n", locale.Locale, locale.BaseKeys, locale.Translated, locale.Missing, locale.Extra, locale.Completion)
	}

	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "\n## `%s`\n\n", locale.Locale)
		b.WriteString("| Namespace | Base Keys | Translated | Missing | Completion |\n")
		b.WriteString("| --- | ---: | ---: | ---: | ---: |\n")
		for _, ns := range locale.Namespaces {
			fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %.1f%% |\n", ns.Namespace, ns.BaseKeys, ns.Translated, ns.Missing, ns.Completion)
		}
		writeKeyList(&b, "Missing", locale.MissingKeys)
		writeKeyList(&b, "Extra", locale.ExtraKeys)
	}
	return b.String()
}

func writeKeyList(b *strings.Builder, title string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(b, "\n### %s\n\n", title)
	for _, key := range keys {
		fmt.Fprintf(b, "- `%s`\n", key)
	}
}

func writeMarkdown(path string, rep report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(renderMarkdown(rep)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func toSet(keys []string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		out[key] = struct{}{}
	}
	return out
}

func missingKeys(base, target map[string]struct{}) []string {
	out := make([]string, 0)
	for key := range base {
		if _, ok := target[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func percent(numerator int, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
