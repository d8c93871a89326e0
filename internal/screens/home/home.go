// Package home is the main menu of the application.
package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/physiz/internal/advice"
	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/resources"
	"github.com/abhisek/physiz/internal/router"
	"github.com/abhisek/physiz/internal/screen"
	"github.com/abhisek/physiz/internal/screens/audit"
	"github.com/abhisek/physiz/internal/screens/history"
	"github.com/abhisek/physiz/internal/screens/insights"
	"github.com/abhisek/physiz/internal/spec"
	"github.com/abhisek/physiz/internal/ui/components"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	store  *spec.Store
	ledger *confidence.Ledger

	menu          components.Menu
	menuLabels    []string
	latestVersion string
	hasAdviser    bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the audit, insights and history
// screens. adviser may be nil; latestVersion is non-empty when a newer
// release is available.
func New(store *spec.Store, ledger *confidence.Ledger, index *resources.Index, adviser *advice.Service, latestVersion string) *HomeScreen {
	menuLabels := []string{"START AUDIT", "INSIGHTS", "HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: audit.New(store, ledger, index)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: insights.New(store, ledger, adviser)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(store, ledger)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		store:         store,
		ledger:        ledger,
		menu:          components.NewMenu(items),
		menuLabels:    menuLabels,
		latestVersion: latestVersion,
		hasAdviser:    adviser != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}
