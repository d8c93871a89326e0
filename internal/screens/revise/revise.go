// Package revise shows the curated revision content and external
// resources for one specification section.
package revise

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/physiz/internal/resources"
	"github.com/abhisek/physiz/internal/screen"
	"github.com/abhisek/physiz/internal/spec"
	"github.com/abhisek/physiz/internal/ui/components"
	"github.com/abhisek/physiz/internal/ui/layout"
	"github.com/abhisek/physiz/internal/ui/theme"
)

// tab indices follow resources.AllKinds() order, with the revision notes
// panel prepended as tab 0.
const notesTab = 0

// ReviseScreen browses revision notes and resources for a section.
type ReviseScreen struct {
	section *spec.Section
	bundle  resources.SectionResources

	tab      int
	selected int
	offset   int
}

var _ screen.Screen = (*ReviseScreen)(nil)
var _ screen.KeyHintProvider = (*ReviseScreen)(nil)

// New creates a ReviseScreen for the section, showing the resources
// filed under key. The key is usually the section id; callers may pass
// a finer revision key when one covers the topic at hand.
func New(section *spec.Section, key string, index *resources.Index) *ReviseScreen {
	return &ReviseScreen{
		section: section,
		bundle:  index.Lookup(key),
	}
}

func (r *ReviseScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviseScreen) Title() string {
	return "Revise · " + r.section.Title
}

func (r *ReviseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Tabs"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

// kindFor maps a tab index (1-based after the notes tab) to its kind.
func kindFor(tab int) resources.Kind {
	return resources.AllKinds()[tab-1]
}

func (r *ReviseScreen) resourcesFor(tab int) []Resource {
	switch kindFor(tab) {
	case resources.KindVideo:
		return r.bundle.Videos
	case resources.KindNote:
		return r.bundle.Notes
	case resources.KindSimulation:
		return r.bundle.Simulations
	default:
		return r.bundle.Questions
	}
}

// Resource aliases the domain type for brevity in this package.
type Resource = resources.Resource

func (r *ReviseScreen) tabCount() int {
	return len(resources.AllKinds()) + 1
}

func (r *ReviseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if r.tab > 0 {
			r.tab--
			r.selected, r.offset = 0, 0
		}
	case "right", "l", "tab":
		if r.tab < r.tabCount()-1 {
			r.tab++
			r.selected, r.offset = 0, 0
		}
	case "up", "k":
		if r.tab == notesTab {
			if r.offset > 0 {
				r.offset--
			}
		} else if r.selected > 0 {
			r.selected--
		}
	case "down", "j":
		if r.tab == notesTab {
			r.offset++
		} else if r.selected < len(r.resourcesFor(r.tab))-1 {
			r.selected++
		}
	}
	return r, nil
}

func (r *ReviseScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.renderTabs()))
	b.WriteString("\n\n")

	var body string
	if r.tab == notesTab {
		body = r.renderNotes(cw, height-6)
	} else {
		body = r.renderResources(cw)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))

	return b.String()
}

func (r *ReviseScreen) renderTabs() string {
	labels := []string{"Revision"}
	for i, k := range resources.AllKinds() {
		labels = append(labels, fmt.Sprintf("%s (%d)", k.Label(), len(r.resourcesFor(i+1))))
	}

	var parts []string
	for i, label := range labels {
		style := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
		if i == r.tab {
			style = style.Foreground(theme.Primary).Bold(true).Underline(true)
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, " ")
}

// renderNotes shows the curated revision content: notes text, key
// formulas and common mistakes, scrolled by offset.
func (r *ReviseScreen) renderNotes(cw, visible int) string {
	sec := r.bundle.Section
	if sec == nil {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("No revision notes for this section yet.")
	}

	var parts []string

	if sec.Notes != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(cw-6).
			Render(resources.DecodeHTMLField(stripTags(sec.Notes))))
	}

	if len(sec.KeyFormulas) > 0 {
		var f strings.Builder
		for _, formula := range sec.KeyFormulas {
			f.WriteString("  " + formula + "\n")
		}
		parts = append(parts, components.TitledPanel("Key formulas",
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.TrimRight(f.String(), "\n")), cw))
	}

	if len(sec.CommonMistakes) > 0 {
		var m strings.Builder
		for _, mistake := range sec.CommonMistakes {
			m.WriteString("⚠ " + mistake + "\n")
		}
		parts = append(parts, components.TitledPanel("Common mistakes",
			lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.TrimRight(m.String(), "\n")), cw))
	}

	content := strings.Join(parts, "\n\n")

	// Scroll by whole lines; clamp the offset to the content height.
	lines := strings.Split(content, "\n")
	if r.offset > len(lines)-1 {
		r.offset = len(lines) - 1
	}
	if r.offset < 0 {
		r.offset = 0
	}
	end := r.offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[r.offset:end], "\n")
}

func (r *ReviseScreen) renderResources(cw int) string {
	list := r.resourcesFor(r.tab)
	if len(list) == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Nothing here yet.")
	}

	var b strings.Builder
	for i, res := range list {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == r.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		b.WriteString(prefix + style.Render(res.Title))
		if meta := resourceMeta(res); meta != "" {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))
		}
		b.WriteString("\n")

		if i == r.selected {
			if res.Description != "" {
				b.WriteString("    " + lipgloss.NewStyle().
					Foreground(theme.TextDim).
					Width(cw-8).
					Render(res.Description) + "\n")
			}
			b.WriteString("    " + lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Underline(true).
				Render(res.URL) + "\n")
		}
	}
	return b.String()
}

// resourceMeta summarizes the kind-specific fields in one dim string.
func resourceMeta(res Resource) string {
	switch {
	case res.Video != nil:
		return fmt.Sprintf("%s · %s", res.Video.Provider, res.Video.Duration)
	case res.Note != nil:
		if res.Note.Pages != "" {
			return fmt.Sprintf("%s · %s pages", res.Note.Type, res.Note.Pages)
		}
		return res.Note.Type
	case res.Simulation != nil:
		return res.Simulation.Provider
	case res.Question != nil:
		meta := res.Question.Type
		if res.Question.QuestionCount != "" {
			meta += " · " + res.Question.QuestionCount + " questions"
		}
		if res.Question.HasAnswers {
			meta += " · answers"
		}
		return meta
	}
	return ""
}

// stripTags removes HTML tags from curated notes, keeping the text. The
// source sheets carry simple markup only (strong, em, br, li).
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
