// Package history lists past study sessions derived from the confidence
// change log, expandable to the individual rating changes.
package history

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/screen"
	"github.com/abhisek/physiz/internal/spec"
	"github.com/abhisek/physiz/internal/ui/components"
	"github.com/abhisek/physiz/internal/ui/layout"
	"github.com/abhisek/physiz/internal/ui/theme"
)

// sessionEntry is one 30-minute study session reconstructed from the
// change history, newest first.
type sessionEntry struct {
	id           string
	start        time.Time
	changes      []confidence.Change
	improvements int
	declines     int
}

// HistoryScreen displays past sessions and their rating changes.
type HistoryScreen struct {
	store    *spec.Store
	sessions []sessionEntry
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen from the ledger's current history.
func New(store *spec.Store, ledger *confidence.Ledger) *HistoryScreen {
	return &HistoryScreen{
		store:    store,
		sessions: groupSessions(ledger.History()),
		expanded: make(map[int]bool),
	}
}

// groupSessions buckets history entries by session id, preserving the
// newest-first order of the history itself.
func groupSessions(history []confidence.Change) []sessionEntry {
	var sessions []sessionEntry
	index := make(map[string]int)

	for _, c := range history {
		i, ok := index[c.SessionID]
		if !ok {
			i = len(sessions)
			index[c.SessionID] = i
			sessions = append(sessions, sessionEntry{id: c.SessionID, start: c.Timestamp})
		}
		s := &sessions[i]
		s.changes = append(s.changes, c)
		if c.Timestamp.Before(s.start) {
			s.start = c.Timestamp
		}
		switch {
		case c.NewLevel > c.OldLevel && c.OldLevel != 0:
			s.improvements++
		case c.NewLevel != 0 && c.NewLevel < c.OldLevel:
			s.declines++
		}
	}
	return sessions
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.sessions)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rating changes yet. Start auditing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.start.Local().Format("Jan 02, 2006 15:04")

		net := ""
		switch {
		case sess.improvements > sess.declines:
			net = lipgloss.NewStyle().Foreground(theme.Success).Render(
				fmt.Sprintf("  ↑%d", sess.improvements-sess.declines))
		case sess.declines > sess.improvements:
			net = lipgloss.NewStyle().Foreground(theme.Error).Render(
				fmt.Sprintf("  ↓%d", sess.declines-sess.improvements))
		}

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %d change%s%s",
			prefix, dateStr, len(sess.changes), plural(len(sess.changes)), net)

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, c := range sess.changes {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderChange(c)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// renderChange formats one rating change, resolving the topic title.
func (s *HistoryScreen) renderChange(c confidence.Change) string {
	title := c.TopicID
	if sec := s.store.SectionOf(c.TopicID); sec != nil {
		for _, t := range sec.Topics {
			if t.ID == c.TopicID {
				title = t.Title
				break
			}
		}
	}

	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+title+"  ") +
		components.RatingBadge(c.OldLevel) + " → " + components.RatingBadge(c.NewLevel)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
