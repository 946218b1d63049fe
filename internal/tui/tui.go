// Package tui provides a Bubble Tea terminal browser for stored festivals.
package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/woodstock/internal/codec"
	"github.com/handiism/woodstock/internal/model"
	"github.com/handiism/woodstock/internal/store"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 2)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	performerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))
)

// DemoName is the input that opens the built-in Woodstock 1969 festival.
const DemoName = "demo"

// Loader resolves what the user typed into a festival.
type Loader func(name string) (*model.Festival, error)

// StoreLoader loads festivals from st. Inputs that look like paths are read
// as files and DemoName returns the built-in festival.
func StoreLoader(st *store.JSONStore) Loader {
	return func(name string) (*model.Festival, error) {
		switch {
		case name == DemoName:
			return model.Woodstock1969(), nil
		case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
			data, err := os.ReadFile(name)
			if err != nil {
				return nil, err
			}
			return codec.DecodeFestival(data)
		default:
			return st.LoadFestival(name)
		}
	}
}

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateBrowsing
	StateError
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	load      Loader

	festival *model.Festival
	lineups  []*model.Lineup
	cursor   int
	err      error

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(load Loader) Model {
	ti := textinput.New()
	ti.Placeholder = "woodstock-1969, ./data/woodstock-1969.json or " + DemoName
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		load:      load,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// LoadedMsg is sent when loading a festival finishes.
type LoadedMsg struct {
	Festival *model.Festival
	Err      error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}

		case "enter":
			if m.state == StateInput {
				name := strings.TrimSpace(m.textInput.Value())
				if name == "" {
					name = DemoName
				}
				m.state = StateLoading
				return m, tea.Batch(m.loadFestival(name), m.spinner.Tick)
			}

		case "up", "k":
			if m.state == StateBrowsing && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == StateBrowsing && m.cursor < len(m.lineups)-1 {
				m.cursor++
			}

		case "q":
			if m.state == StateBrowsing || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateBrowsing || m.state == StateError {
				m.state = StateInput
				m.festival = nil
				m.lineups = nil
				m.cursor = 0
				m.err = nil
				m.textInput.SetValue("")
				m.textInput.Focus()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case LoadedMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateBrowsing
			m.festival = msg.Festival
			m.lineups = msg.Festival.Lineups()
			m.cursor = 0
		}
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// Selected returns the lineup under the cursor, or nil.
func (m Model) Selected() *model.Lineup {
	if m.cursor < 0 || m.cursor >= len(m.lineups) {
		return nil
	}
	return m.lineups[m.cursor]
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Woodstock"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Browse festivals, lineups and performers"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Loading festival..."))
		b.WriteString("\n")
	case StateBrowsing:
		b.WriteString(m.viewBrowsing())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Festival to open:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Leave empty or type %q for Woodstock 1969.", DemoName)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewBrowsing() string {
	var b strings.Builder
	f := m.festival

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s (%s - %s), %s",
		f.Name, model.FormatDate(f.Start), model.FormatDate(f.End), f.Location)))
	b.WriteString("\n\n")

	if len(m.lineups) == 0 {
		b.WriteString(infoStyle.Render("No lineups announced."))
		b.WriteString("\n")
		return b.String()
	}

	for i, l := range m.lineups {
		line := fmt.Sprintf("%s  (%d performers)", model.FormatDate(l.Date), l.Len())
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.progress.ViewAs(float64(m.cursor+1) / float64(len(m.lineups))))
	b.WriteString("\n\n")

	var performers strings.Builder
	sel := m.Selected()
	if sel.Len() == 0 {
		performers.WriteString("not specified")
	}
	for p := range sel.All() {
		performers.WriteString(performerStyle.Render("♪ " + p.String()))
		performers.WriteString("\n")
	}
	b.WriteString(boxStyle.Render(strings.TrimRight(performers.String(), "\n")))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		var rangeErr *model.LineupDateOutOfRangeError
		if errors.As(m.err, &rangeErr) {
			b.WriteString("\n  ")
			b.WriteString(dimStyle.Render("the file holds a lineup outside the festival dates"))
		}
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: open • esc: quit"
	case StateLoading:
		return "ctrl+c: quit"
	case StateBrowsing:
		return "↑/k ↓/j: select lineup • r: open another • q: quit"
	case StateError:
		return "r: try again • q: quit"
	}
	return ""
}

func (m Model) loadFestival(name string) tea.Cmd {
	load := m.load
	return func() tea.Msg {
		f, err := load(name)
		return LoadedMsg{Festival: f, Err: err}
	}
}

// Run starts the TUI application.
func Run(load Loader) error {
	p := tea.NewProgram(NewModel(load), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
