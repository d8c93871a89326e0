package audit

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/resources"
	"github.com/abhisek/physiz/internal/revision"
	"github.com/abhisek/physiz/internal/router"
	"github.com/abhisek/physiz/internal/screen"
	"github.com/abhisek/physiz/internal/screens/revise"
	"github.com/abhisek/physiz/internal/spec"
	"github.com/abhisek/physiz/internal/ui/components"
	"github.com/abhisek/physiz/internal/ui/layout"
	"github.com/abhisek/physiz/internal/ui/theme"
)

// TopicsScreen rates the topics of one section. The left column lists
// topics with their current rating; the detail panel shows the selected
// topic's prompt and the confidence scale.
type TopicsScreen struct {
	section *spec.Section
	ledger  *confidence.Ledger
	index   *resources.Index
	mapping *revision.Mapping

	selected int
	scale    components.ConfidenceScale
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// NewTopics creates the rating screen for a section.
func NewTopics(section *spec.Section, ledger *confidence.Ledger, index *resources.Index) *TopicsScreen {
	t := &TopicsScreen{
		section: section,
		ledger:  ledger,
		index:   index,
		mapping: revision.DefaultMapping(),
	}
	t.syncScale()
	return t
}

// syncScale resets the scale to the selected topic's current rating.
func (t *TopicsScreen) syncScale() {
	if t.selected >= len(t.section.Topics) {
		return
	}
	level, _ := t.ledger.Confidence(t.section.Topics[t.selected].ID)
	t.scale = components.NewConfidenceScale(level)
}

func (t *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (t *TopicsScreen) Title() string {
	return t.section.Title
}

func (t *TopicsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "1-5", Description: "Rate"},
		{Key: "↑↓", Description: "Topic"},
	}
	if t.index.Lookup(t.revisionKey()).Count() > 0 {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Resources"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// revisionKey resolves where the selected topic's revision content is
// filed: its coarse revision key when one covers it, else the section id.
func (t *TopicsScreen) revisionKey() string {
	if t.selected < len(t.section.Topics) {
		if key, ok := t.mapping.TopicToSection(t.section.Topics[t.selected].ID); ok {
			return key
		}
	}
	return t.section.ID
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if t.selected > 0 {
			t.selected--
			t.syncScale()
		}
		return t, nil
	case "down", "j":
		if t.selected < len(t.section.Topics)-1 {
			t.selected++
			t.syncScale()
		}
		return t, nil
	case "r":
		if key := t.revisionKey(); t.index.Lookup(key).Count() > 0 {
			sec := t.section
			return t, func() tea.Msg {
				return router.PushScreenMsg{Screen: revise.New(sec, key, t.index)}
			}
		}
		return t, nil
	}

	var level int
	var commit bool
	t.scale, level, commit = t.scale.Update(msg)
	if commit && t.selected < len(t.section.Topics) {
		t.ledger.SetConfidence(t.section.Topics[t.selected].ID, level)
		t.syncScale()
	}
	return t, nil
}

func (t *TopicsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")

	for i, topic := range t.section.Topics {
		level, _ := t.ledger.Confidence(topic.ID)

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == t.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s %s  %s",
			prefix,
			components.RatingBadge(level),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(topic.ID),
			style.Render(truncate(topic.Title, cw-20)))

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(cw).Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		t.detailPanel(cw)))

	return b.String()
}

// detailPanel renders the selected topic's prompt, objectives and the
// confidence scale.
func (t *TopicsScreen) detailPanel(cw int) string {
	if t.selected >= len(t.section.Topics) {
		return ""
	}
	topic := t.section.Topics[t.selected]

	var parts []string

	prompt := topic.Prompt
	if prompt == "" {
		prompt = fmt.Sprintf("How confident are you with %s?", topic.Title)
	}
	parts = append(parts, lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw-6).
		Render(prompt))

	if len(topic.LearningObjectives) > 0 {
		var obj strings.Builder
		for _, o := range topic.LearningObjectives {
			obj.WriteString("• " + o + "\n")
		}
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw-6).
			Render(strings.TrimRight(obj.String(), "\n")))
	}

	if len(topic.Examples) > 0 {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Width(cw-6).
			Render("e.g. "+strings.Join(topic.Examples, "; ")))
	}

	parts = append(parts, t.scale.View())

	return components.TitledPanel(topic.Title, strings.Join(parts, "\n\n"), cw)
}
