package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/levelup/internal/services/game/storage/integrity"
)

func testKeyring(t *testing.T) *integrity.Keyring {
	t.Helper()
	keyring, err := integrity.NewKeyring(
		map[string][]byte{"test-key-1": []byte("0123456789abcdef0123456789abcdef")},
		"test-key-1",
	)
	if err != nil {
		t.Fatalf("create test keyring: %v", err)
	}
	return keyring
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func openTestContentStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.sqlite")
	store, err := OpenContent(path)
	if err != nil {
		t.Fatalf("open content store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close content store: %v", err)
		}
	})
	return store
}

func openTestProgressionStore(t *testing.T, opts ...Option) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "progression.sqlite")
	store, err := OpenProgression(path, opts...)
	if err != nil {
		t.Fatalf("open progression store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close progression store: %v", err)
		}
	})
	return store, path
}
