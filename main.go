package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tonewheel/config"
	"tonewheel/debug"
	"tonewheel/keymap"
	"tonewheel/theme"
	"tonewheel/tui"
)

func main() {
	if os.Getenv("TONEWHEEL_DEBUG") != "" {
		if err := debug.Enable(); err != nil {
			fmt.Printf("debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("load config: %v\n", err)
		os.Exit(1)
	}

	dir, err := keymap.DefaultDir()
	if err != nil {
		fmt.Printf("keymap dir: %v\n", err)
		os.Exit(1)
	}
	store := keymap.NewStore(dir)

	if err := seedStore(store); err != nil {
		fmt.Printf("seed keymaps: %v\n", err)
		os.Exit(1)
	}

	m := tui.NewModel(store, cfg, theme.New())
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// seedStore writes a starter keymap on first run so the browser has
// something to show.
func seedStore(store *keymap.Store) error {
	existing, err := store.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	km, err := keymap.NewHarmonic("c-major", "C major (12-EDO)",
		keymap.WithScalePitches(0, 2, 4, 5, 7, 9, 11))
	if err != nil {
		return err
	}
	return store.Save(km)
}
