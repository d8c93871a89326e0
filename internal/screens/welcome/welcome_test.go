package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/physiz/internal/identity"
	"github.com/abhisek/physiz/internal/router"
	"github.com/abhisek/physiz/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *identity.Identity, *int) {
	callCount := 0
	var got identity.Identity
	factory := func(id identity.Identity) screen.Screen {
		callCount++
		got = id
		return &stubScreen{}
	}
	w := New(factory)
	return w, &got, &callCount
}

func typeName(w *WelcomeScreen, name string) {
	for _, r := range name {
		w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEnterWithNameTransitions(t *testing.T) {
	w, got, callCount := newTestWelcome()

	typeName(w, "alice")
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should trigger transition")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
	if got.User != "alice" || got.Method != identity.MethodSchool {
		t.Errorf("identity = %+v", *got)
	}
}

func TestEnterWithBlankNameFallsBackToGuest(t *testing.T) {
	w, got, _ := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should trigger transition")
	}
	cmd()
	if !got.IsGuest() {
		t.Errorf("expected guest identity, got %+v", *got)
	}
}

func TestTabTogglesGuestMode(t *testing.T) {
	w, got, _ := newTestWelcome()

	w.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	view := w.View(80, 24)
	if !strings.Contains(view, "guest") {
		t.Error("guest mode should be visible after tab")
	}

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should trigger transition")
	}
	cmd()
	if got.Method != identity.MethodGuest {
		t.Errorf("expected guest method, got %q", got.Method)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, _, callCount := newTestWelcome()

	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("second enter should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
