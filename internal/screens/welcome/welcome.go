package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/physiz/internal/identity"
	"github.com/abhisek/physiz/internal/router"
	"github.com/abhisek/physiz/internal/screen"
	"github.com/abhisek/physiz/internal/ui/components"
	"github.com/abhisek/physiz/internal/ui/theme"
)

// WelcomeScreen asks who is revising before entering the app. The name
// decides which saved audit is loaded; leaving it blank continues as a
// guest with a throwaway profile.
type WelcomeScreen struct {
	homeFactory  func(id identity.Identity) screen.Screen
	input        components.TextInput
	guest        bool
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// homeFactory once an identity is chosen.
func New(homeFactory func(id identity.Identity) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		input:       components.NewTextInput("your name", 32),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return w, w.transition(w.chosenIdentity())
		case "tab":
			w.guest = !w.guest
			return w, nil
		}
	}

	if !w.guest {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}
	return w, nil
}

// chosenIdentity resolves the current input into an identity. A blank
// name falls back to guest mode rather than the legacy shared profile.
func (w *WelcomeScreen) chosenIdentity() identity.Identity {
	if w.guest {
		return identity.NewGuest()
	}
	name := strings.TrimSpace(w.input.Value())
	if name == "" {
		return identity.NewGuest()
	}
	return identity.ForUser(name)
}

func (w *WelcomeScreen) transition(id identity.Identity) tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory(id)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Know what you know before the exam does.")
	sections = append(sections, tagline, "")

	if w.guest {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("Continue as guest"))
	} else {
		prompt := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Who's revising?")
		sections = append(sections, prompt, w.input.View())
	}

	sections = append(sections, "")
	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("enter to continue · tab for guest mode")
	sections = append(sections, hint)

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
