// Package audit holds the screens for browsing the specification and
// rating topic confidence.
package audit

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/resources"
	"github.com/abhisek/physiz/internal/router"
	"github.com/abhisek/physiz/internal/screen"
	"github.com/abhisek/physiz/internal/spec"
	"github.com/abhisek/physiz/internal/ui/components"
	"github.com/abhisek/physiz/internal/ui/layout"
	"github.com/abhisek/physiz/internal/ui/theme"
)

// row is one line of the section browser: either a group heading or a
// selectable section.
type row struct {
	heading string
	section *spec.Section
}

// AuditScreen lists the specification's sections grouped for the current
// view mode, with per-section progress. Selecting a section opens the
// topic rating screen.
type AuditScreen struct {
	store  *spec.Store
	ledger *confidence.Ledger
	index  *resources.Index

	mode     spec.ViewMode
	rows     []row
	selected int
	offset   int
}

var _ screen.Screen = (*AuditScreen)(nil)
var _ screen.KeyHintProvider = (*AuditScreen)(nil)

// New creates the section browser in paper view mode.
func New(store *spec.Store, ledger *confidence.Ledger, index *resources.Index) *AuditScreen {
	s := &AuditScreen{
		store:  store,
		ledger: ledger,
		index:  index,
		mode:   spec.ModePaper,
	}
	s.rebuildRows()
	return s
}

// rebuildRows flattens the current mode's groups into heading and
// section rows, keeping the cursor on a section.
func (s *AuditScreen) rebuildRows() {
	s.rows = s.rows[:0]

	appendGroups := func(groups []spec.Group) {
		for _, g := range groups {
			if g.Kind == spec.GroupMulti {
				s.rows = append(s.rows, row{heading: g.Title})
			}
			for _, id := range spec.GroupSections(g) {
				if sec := s.store.Section(id); sec != nil {
					s.rows = append(s.rows, row{section: sec})
				}
			}
		}
	}

	if s.mode == spec.ModePaper {
		s.rows = append(s.rows, row{heading: "PAPER 1"})
		appendGroups(s.store.GroupsForPaper(spec.Paper1))
		s.rows = append(s.rows, row{heading: "PAPER 2"})
		appendGroups(s.store.GroupsForPaper(spec.Paper2))
	} else {
		appendGroups(s.store.GroupsForMode(spec.ModeSpec))
	}

	s.selected = s.nextSection(-1, +1)
}

// nextSection returns the index of the first section row from start+step
// walking in step direction, or the current selection when none exists.
func (s *AuditScreen) nextSection(start, step int) int {
	for i := start + step; i >= 0 && i < len(s.rows); i += step {
		if s.rows[i].section != nil {
			return i
		}
	}
	if start < 0 || start >= len(s.rows) {
		return 0
	}
	return start
}

func (s *AuditScreen) Init() tea.Cmd {
	return nil
}

func (s *AuditScreen) Title() string {
	if s.mode == spec.ModePaper {
		return "Audit · by paper"
	}
	return "Audit · full specification"
}

func (s *AuditScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Rate topics"},
		{Key: "Tab", Description: "Switch view"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AuditScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.selected = s.nextSection(s.selected, -1)
	case "down", "j":
		s.selected = s.nextSection(s.selected, +1)
	case "tab":
		if s.mode == spec.ModePaper {
			s.mode = spec.ModeSpec
		} else {
			s.mode = spec.ModePaper
		}
		s.rebuildRows()
	case "enter":
		if s.selected < len(s.rows) && s.rows[s.selected].section != nil {
			sec := s.rows[s.selected].section
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: NewTopics(sec, s.ledger, s.index)}
			}
		}
	}
	return s, nil
}

// sectionProgress returns rated and total topic counts for a section.
func sectionProgress(sec *spec.Section, ledger *confidence.Ledger) (rated, total int) {
	for _, t := range sec.Topics {
		total++
		if _, ok := ledger.Confidence(t.ID); ok {
			rated++
		}
	}
	return rated, total
}

func (s *AuditScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	// Keep the selection visible in a scrolling window.
	visible := height - 2
	if visible < 4 {
		visible = 4
	}
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}

	var b strings.Builder
	b.WriteString("\n")

	end := s.offset + visible
	if end > len(s.rows) {
		end = len(s.rows)
	}

	for i := s.offset; i < end; i++ {
		r := s.rows[i]
		var line string

		if r.section == nil {
			line = lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render(r.heading)
		} else {
			rated, total := sectionProgress(r.section, s.ledger)
			bar := components.NewProgressBar("", float64(rated)/float64(max(total, 1)), false, 14)

			prefix := "  "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == s.selected {
				prefix = "▸ "
				style = style.Foreground(theme.Primary).Bold(true)
			}

			title := fmt.Sprintf("%-34s", truncate(r.section.Title, 34))
			count := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("%2d/%-2d", rated, total))

			line = prefix + style.Render(title) + "  " + bar.View() + "  " + count
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(cw).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
