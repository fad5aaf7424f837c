package keymap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	km, err := NewHarmonic("c-major", "C major",
		WithScalePitches(0, 2, 4, 5, 7, 9, 11))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(km); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load("c-major")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, ok := loaded.(*Harmonic)
	if !ok {
		t.Fatalf("loaded type %T", loaded)
	}
	if got.Name() != "C major" || got.Scale().Len() != 7 {
		t.Errorf("loaded keymap = %q with %d tones", got.Name(), got.Scale().Len())
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreListSortedAndSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	for _, id := range []string{"zeta", "alpha"} {
		km, err := NewHarmonic(id, id, WithScalePitches(0))
		if err != nil {
			t.Fatal(err)
		}
		if err := store.Save(km); err != nil {
			t.Fatal(err)
		}
	}

	// A corrupt file should be skipped, not break the listing.
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	keymaps, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keymaps) != 2 {
		t.Fatalf("List returned %d keymaps, want 2", len(keymaps))
	}
	if keymaps[0].ID() != "alpha" || keymaps[1].ID() != "zeta" {
		t.Errorf("List order: %s, %s", keymaps[0].ID(), keymaps[1].ID())
	}
}

func TestStoreListEmptyDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))
	keymaps, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if keymaps != nil {
		t.Fatalf("List = %v, want nil", keymaps)
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(t.TempDir())
	km, _ := NewHarmonic("gone", "Gone", WithScalePitches(0))
	if err := store.Save(km); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete("gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete("gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete err = %v, want ErrNotFound", err)
	}
}
