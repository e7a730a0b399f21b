package integrity

import "testing"

func TestProgressionHashDeterministic(t *testing.T) {
	profile := []byte(`{"level":5}`)
	choices := []byte(`{"5":{"completed":true,"upgrades":[]}}`)

	first, err := ProgressionHash("char-1", 5, 2, profile, choices)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := ProgressionHash("char-1", 5, 2, profile, choices)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first != second {
		t.Fatalf("expected stable hash, got %s and %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected hex sha256, got %q", first)
	}
}

func TestProgressionHashCoversEveryField(t *testing.T) {
	profile := []byte(`{"level":5}`)
	choices := []byte(`{}`)
	base, err := ProgressionHash("char-1", 5, 2, profile, choices)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	variants := map[string]func() (string, error){
		"character": func() (string, error) { return ProgressionHash("char-2", 5, 2, profile, choices) },
		"level":     func() (string, error) { return ProgressionHash("char-1", 6, 2, profile, choices) },
		"version":   func() (string, error) { return ProgressionHash("char-1", 5, 3, profile, choices) },
		"profile":   func() (string, error) { return ProgressionHash("char-1", 5, 2, []byte(`{"level":6}`), choices) },
		"choices":   func() (string, error) { return ProgressionHash("char-1", 5, 2, profile, []byte(`{"2":{}}`)) },
	}
	for name, hash := range variants {
		got, err := hash()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got == base {
			t.Fatalf("expected %s change to alter the hash", name)
		}
	}
}

func TestProgressionHashValidation(t *testing.T) {
	if _, err := ProgressionHash("", 1, 1, []byte(`{}`), []byte(`{}`)); err == nil {
		t.Fatal("expected error for missing character id")
	}
	if _, err := ProgressionHash("char-1", 1, 1, []byte(`{`), []byte(`{}`)); err == nil {
		t.Fatal("expected error for invalid profile")
	}
	if _, err := ProgressionHash("char-1", 1, 1, []byte(`{}`), nil); err == nil {
		t.Fatal("expected error for missing choices")
	}
}
