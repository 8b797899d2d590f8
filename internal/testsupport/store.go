package testsupport

import (
	"context"
	"testing"

	"subtext/internal/config"
	"subtext/internal/library"
)

// MustOpenLibrary opens a library.Store for tests and registers cleanup.
func MustOpenLibrary(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SaveItem stores a transcript for tests using the provided store.
func SaveItem(t testing.TB, store *library.Store, item *library.Item) *library.Item {
	t.Helper()

	saved, err := store.Save(context.Background(), item)
	if err != nil {
		t.Fatalf("store.Save: %v", err)
	}
	return saved
}
