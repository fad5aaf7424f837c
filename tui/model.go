package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tonewheel/config"
	"tonewheel/debug"
	"tonewheel/harmony"
	"tonewheel/keymap"
	"tonewheel/theme"
	"tonewheel/wheel"
)

// Model is the keymap browser: a list of stored keymaps on the left and a
// flattened view of the selected keymap's color wheel below it.
type Model struct {
	Store  *keymap.Store
	Config *config.Config
	Theme  *theme.Theme

	keymaps  []keymap.Keymap
	selected int
	status   string
	width    int
	quitting bool
}

// NewModel loads the stored keymaps and builds the browser model.
func NewModel(store *keymap.Store, cfg *config.Config, th *theme.Theme) Model {
	m := Model{Store: store, Config: cfg, Theme: th}
	m.refresh()
	return m
}

func (m *Model) refresh() {
	keymaps, err := m.Store.List()
	if err != nil {
		m.status = fmt.Sprintf("list keymaps: %v", err)
		return
	}
	m.keymaps = keymaps
	if m.selected >= len(m.keymaps) {
		m.selected = max(0, len(m.keymaps)-1)
	}
}

func (m Model) current() keymap.Keymap {
	if m.selected < 0 || m.selected >= len(m.keymaps) {
		return nil
	}
	return m.keymaps[m.selected]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.status = ""
			}

		case "down", "j":
			if m.selected < len(m.keymaps)-1 {
				m.selected++
				m.status = ""
			}

		case "r":
			m.refresh()
			m.status = "reloaded"

		case "s":
			m.status = m.exportSVG()

		case "l":
			m.status = m.exportLTN()
		}
	}

	return m, nil
}

// exportSVG writes the selected keymap's wheel as <id>.svg in the working
// directory.
func (m *Model) exportSVG() string {
	km, ok := m.current().(*keymap.Harmonic)
	if !ok {
		return "select a harmonic keymap to export its wheel"
	}

	pal, err := theme.NewWheelPalette(km.Tuning().Divisions())
	if err != nil {
		return err.Error()
	}
	wh, err := wheel.New(m.Config.Wheel.Radius, km.Tuning().Divisions(), pal,
		wheel.WithHoleRatio(m.Config.Wheel.HoleRatio))
	if err != nil {
		return err.Error()
	}

	name := km.ID() + ".svg"
	f, err := os.Create(name)
	if err != nil {
		return err.Error()
	}
	defer f.Close()

	scale := km.Scale()
	if err := wh.WriteSVG(f, &scale); err != nil {
		return err.Error()
	}
	debug.Log("export", "wrote %s", name)
	return "wrote " + name
}

// exportLTN writes the selected keymap as a Lumatone editor preset.
func (m *Model) exportLTN() string {
	km, ok := m.current().(*keymap.Harmonic)
	if !ok {
		return "select a harmonic keymap to export a preset"
	}

	pal, err := theme.NewWheelPalette(km.Tuning().Divisions())
	if err != nil {
		return err.Error()
	}
	preset, err := keymap.PresetFromHarmonic(km, pal)
	if err != nil {
		return err.Error()
	}

	name := km.ID() + ".ltn"
	f, err := os.Create(name)
	if err != nil {
		return err.Error()
	}
	defer f.Close()

	if err := preset.WriteINI(f); err != nil {
		return err.Error()
	}
	debug.Log("export", "wrote %s", name)
	return "wrote " + name
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.Theme.Title.Render("tonewheel") + "\n\n")

	if len(m.keymaps) == 0 {
		b.WriteString(m.Theme.Muted.Render("no keymaps stored") + "\n")
	}
	for i, km := range m.keymaps {
		line := fmt.Sprintf("%s (%s)", km.Name(), km.ID())
		if i == m.selected {
			b.WriteString(m.Theme.Selected.Render("> "+line) + "\n")
		} else {
			b.WriteString(m.Theme.Normal.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n")

	// Exhaustive over the keymap variants.
	switch km := m.current().(type) {
	case *keymap.Harmonic:
		b.WriteString(m.viewHarmonic(km))
	case *keymap.Freeform:
		b.WriteString(m.Theme.Muted.Render("freeform keymap - per-key structure defined externally") + "\n")
	case nil:
	}

	if m.status != "" {
		b.WriteString("\n" + m.Theme.Normal.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.Theme.Help.Render("up/down select · s export svg · l export ltn · r reload · q quit") + "\n")
	return b.String()
}

// viewHarmonic flattens the wheel into a strip of colored cells, one per
// wedge, with scale tones at full color and non-scale tones dimmed.
func (m Model) viewHarmonic(km *keymap.Harmonic) string {
	divisions := km.Tuning().Divisions()
	pal, err := theme.NewWheelPalette(divisions)
	if err != nil {
		return m.Theme.Muted.Render(err.Error()) + "\n"
	}
	wh, err := wheel.New(m.Config.Wheel.Radius, divisions, pal,
		wheel.WithHoleRatio(m.Config.Wheel.HoleRatio))
	if err != nil {
		return m.Theme.Muted.Render(err.Error()) + "\n"
	}

	var cells, marks []string
	for _, wd := range wh.Wedges() {
		fill := wd.FillColor
		mark := "●"
		if !km.InScale(harmony.PitchClass(wd.Index)) {
			fill = pal.Dimmed(wd.Index)
			mark = "·"
		}
		label := wd.Label
		if len(label) < 2 {
			label = " " + label
		}
		cells = append(cells, theme.LabelOn(label, wd.TextColor, fill))
		marks = append(marks, m.Theme.Muted.Render(" "+mark))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d-EDO, %d scale tones\n",
		m.Theme.Title.Render("wheel"), divisions, km.Scale().Len()))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, marks...) + "\n")
	b.WriteString(m.Theme.Muted.Render(fmt.Sprintf("non-scale tones: %v", km.Behaviors())) + "\n")
	return b.String()
}
