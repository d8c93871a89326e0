// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/physiz/internal/advice"
	"github.com/abhisek/physiz/internal/analytics"
	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/identity"
	"github.com/abhisek/physiz/internal/resources"
	"github.com/abhisek/physiz/internal/router"
	"github.com/abhisek/physiz/internal/screen"
	"github.com/abhisek/physiz/internal/screens/home"
	"github.com/abhisek/physiz/internal/screens/welcome"
	"github.com/abhisek/physiz/internal/spec"
	"github.com/abhisek/physiz/internal/ui/layout"
)

// Options carries everything the TUI needs. OpenLedger resolves an
// identity to its loaded confidence ledger; Identity, when non-nil,
// skips the welcome prompt.
type Options struct {
	Store         *spec.Store
	Index         *resources.Index
	OpenLedger    func(id identity.Identity) *confidence.Ledger
	Identity      *identity.Identity
	Adviser       *advice.Service // nil when no LLM provider is configured
	LatestVersion string          // non-empty when a newer release exists
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	ledger *confidence.Ledger
	width  int
	height int
}

// newAppModel creates the root model, starting at the welcome prompt
// unless an identity was preselected.
func newAppModel(opts Options) *AppModel {
	m := &AppModel{opts: opts}

	if opts.Identity != nil {
		m.router = router.New(m.homeFor(*opts.Identity))
	} else {
		m.router = router.New(welcome.New(m.homeFor))
	}
	return m
}

// homeFor opens the identity's ledger and builds the home screen on it.
func (m *AppModel) homeFor(id identity.Identity) screen.Screen {
	m.ledger = m.opts.OpenLedger(id)
	return home.New(m.opts.Store, m.ledger, m.opts.Index, m.opts.Adviser, m.opts.LatestVersion)
}

func (m *AppModel) Init() tea.Cmd {
	return nil
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome screen renders bare, without the header chrome.
	if title == "" {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	var progress, streak int
	if m.ledger != nil {
		progress = analytics.ProgressPercent(m.opts.Store.AllTopics(), m.ledger.Levels())
		streak = analytics.StudyStreak(m.ledger.History(), time.Now())
	}
	header := layout.RenderHeader(title, progress, streak, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for its hints, falling back to the
// navigation defaults.
func (m *AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints := provider.KeyHints()
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
