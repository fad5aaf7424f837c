package keymap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when loading a keymap id with no stored file.
var ErrNotFound = errors.New("keymap not found")

// Store persists keymaps as one JSON file per id under a directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on the
// first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the standard keymap directory,
// ~/.config/tonewheel/keymaps.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tonewheel", "keymaps"), nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes the keymap to <dir>/<id>.json.
func (s *Store) Save(k Keymap) error {
	data, err := Encode(k)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path(k.ID()), data, 0644)
}

// Load reads one keymap by id.
func (s *Store) Load(id string) (Keymap, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return Decode(data)
}

// Delete removes a stored keymap.
func (s *Store) Delete(id string) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return err
}

// List loads every stored keymap, sorted by id. Files that fail to decode
// are skipped so one bad file doesn't hide the rest.
func (s *Store) List() ([]Keymap, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []Keymap
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".json")
		k, err := s.Load(id)
		if err != nil {
			continue
		}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}
