package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	for _, locale := range []string{"", "fr-FR", "not a locale"} {
		if got := GetCatalog(locale); got != base {
			t.Fatalf("GetCatalog(%q) = %s, want en-US fallback", locale, got.Locale())
		}
	}
}

func TestGetCatalogMatchesRegion(t *testing.T) {
	if got := GetCatalog("pt").Locale(); got != "pt-BR" {
		t.Fatalf("GetCatalog(pt) locale = %q, want pt-BR", got)
	}
	if got := GetCatalog("en-GB").Locale(); got != BaseLocale {
		t.Fatalf("GetCatalog(en-GB) locale = %q, want %s", got, BaseLocale)
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestFormatLevelUpMessages(t *testing.T) {
	got := GetCatalog("en-US").Format(CodeLevelUpBudgetUnmet, map[string]string{"Spent": "1", "Budget": "2"})
	if got != "Selected upgrades cost 1 of 2 points" {
		t.Fatalf("budget message = %q", got)
	}
	got = GetCatalog("pt-BR").Format(CodeLevelUpStatAlreadyBoosted, map[string]string{"Stat": "agility"})
	if got != "O atributo agility já foi aumentado neste patamar" {
		t.Fatalf("pt-BR stat message = %q", got)
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	for code := range enUSMessages {
		if _, ok := ptBRMessages[code]; !ok {
			t.Fatalf("pt-BR catalog missing %s", code)
		}
	}
	for code := range ptBRMessages {
		if _, ok := enUSMessages[code]; !ok {
			t.Fatalf("pt-BR catalog has extra code %s", code)
		}
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}

func TestCatalogCodesSorted(t *testing.T) {
	codes := NewCatalog("x", map[Code]string{"B": "b", "A": "a"}).Codes()
	if len(codes) != 2 || codes[0] != "A" || codes[1] != "B" {
		t.Fatalf("Codes = %v", codes)
	}
}

func TestLocalesIncludesBuiltins(t *testing.T) {
	locales := Locales()
	seen := map[string]bool{}
	for i, locale := range locales {
		seen[locale] = true
		if i > 0 && locales[i-1] > locale {
			t.Fatalf("Locales not sorted: %v", locales)
		}
	}
	if !seen[BaseLocale] || !seen["pt-BR"] {
		t.Fatalf("Locales = %v", locales)
	}
}
