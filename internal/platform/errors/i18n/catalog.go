// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"sort"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// BaseLocale is the locale every lookup falls back to.
const BaseLocale = "en-US"

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	// catalogs holds registered catalogs by locale.
	catalogs = map[string]*Catalog{
		BaseLocale: NewCatalog(BaseLocale, enUSMessages),
		"pt-BR":    NewCatalog("pt-BR", ptBRMessages),
	}
)

// GetCatalog returns the catalog that best matches the given locale.
// Falls back to en-US if no registered locale matches.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}

	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	tag, err := language.Parse(requested)
	if err != nil {
		c, _ := lookupCatalog(BaseLocale)
		return c
	}

	locales, tags := registeredTags()
	_, index, confidence := language.NewMatcher(tags).Match(tag)
	if confidence == language.No {
		c, _ := lookupCatalog(BaseLocale)
		return c
	}
	c, _ := lookupCatalog(locales[index])
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata to ensure
// consistent output (template variables without metadata render as empty).
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// Codes returns the codes this catalog has messages for, sorted.
func (c *Catalog) Codes() []Code {
	codes := make([]Code, 0, len(c.messages))
	for code := range c.messages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Locales returns the registered locales, sorted.
func Locales() []string {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	locales := make([]string, 0, len(catalogs))
	for locale := range catalogs {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// RegisterCatalog registers a new catalog for the given locale.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

// registeredTags returns registered locales with the base locale first so
// the matcher uses it as the default.
func registeredTags() ([]string, []language.Tag) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()

	locales := []string{BaseLocale}
	tags := []language.Tag{language.MustParse(BaseLocale)}
	for locale := range catalogs {
		if locale == BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		locales = append(locales, locale)
		tags = append(tags, tag)
	}
	return locales, tags
}
