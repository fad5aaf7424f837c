package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tonewheel/config"
	"tonewheel/keymap"
	"tonewheel/theme"
)

func testModel(t *testing.T) Model {
	t.Helper()
	store := keymap.NewStore(t.TempDir())

	for _, id := range []string{"a-minor", "c-major"} {
		km, err := keymap.NewHarmonic(id, id, keymap.WithScalePitches(0, 2, 4, 5, 7, 9, 11))
		if err != nil {
			t.Fatal(err)
		}
		if err := store.Save(km); err != nil {
			t.Fatal(err)
		}
	}
	return NewModel(store, config.DefaultConfig(), theme.New())
}

func TestViewListsKeymaps(t *testing.T) {
	m := testModel(t)
	view := m.View()
	if !strings.Contains(view, "a-minor") || !strings.Contains(view, "c-major") {
		t.Fatalf("view missing keymaps:\n%s", view)
	}
	if !strings.Contains(view, "tonewheel") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "12-EDO") {
		t.Error("view missing wheel summary for selected keymap")
	}
}

func TestSelectionMoves(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = next.(Model)
	if m.selected != 1 {
		t.Fatalf("selected = %d after down, want 1", m.selected)
	}

	// Moving past the end stays put.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = next.(Model)
	if m.selected != 1 {
		t.Fatalf("selected = %d at end, want 1", m.selected)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m = next.(Model)
	if m.selected != 0 {
		t.Fatalf("selected = %d after up, want 0", m.selected)
	}
}

func TestQuit(t *testing.T) {
	m := testModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should produce a command")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("quitting view = %q, want empty", view)
	}
}
