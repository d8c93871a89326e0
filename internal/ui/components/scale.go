package components

import (
	"fmt"
	"image/color"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/ui/theme"
)

// scaleLabels describe each confidence level, indexed by level-1.
var scaleLabels = [...]string{
	"No idea",
	"Seen it",
	"Getting there",
	"Confident",
	"Nailed it",
}

// ScaleLabel returns the short description for a confidence level,
// or an empty string for an unrated level.
func ScaleLabel(level int) string {
	if level < confidence.MinLevel || level > confidence.MaxLevel {
		return ""
	}
	return scaleLabels[level-1]
}

// LevelColor returns the display color for a confidence level.
func LevelColor(level int) color.Color {
	switch level {
	case 1:
		return theme.Error
	case 2:
		return theme.Accent
	case 3:
		return theme.Secondary
	case 4, 5:
		return theme.Success
	default:
		return theme.TextDim
	}
}

// ConfidenceScale is a 1-5 rating selector for a single topic. Pressing
// the current level again clears the rating, mirroring how the ledger
// treats a repeat as a toggle.
type ConfidenceScale struct {
	Level    int // 0 = unrated
	Selected int // cursor position, 1-5
}

// NewConfidenceScale creates a scale showing an existing level (0 for none).
func NewConfidenceScale(level int) ConfidenceScale {
	selected := level
	if selected < confidence.MinLevel {
		selected = 3
	}
	return ConfidenceScale{Level: level, Selected: selected}
}

// Update handles keyboard input. It returns the chosen level and true when
// the user commits a rating; the caller applies the toggle semantics.
func (c ConfidenceScale) Update(msg tea.Msg) (ConfidenceScale, int, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, 0, false
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if c.Selected > confidence.MinLevel {
			c.Selected--
		}
	case "right", "l":
		if c.Selected < confidence.MaxLevel {
			c.Selected++
		}
	case "1", "2", "3", "4", "5":
		level := int(key[0] - '0')
		c.Selected = level
		return c, level, true
	case "enter", " ":
		return c, c.Selected, true
	}

	return c, 0, false
}

// View renders the five level buttons with the current rating highlighted.
func (c ConfidenceScale) View() string {
	var cells []string
	for level := confidence.MinLevel; level <= confidence.MaxLevel; level++ {
		cell := fmt.Sprintf(" %d ", level)

		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text)

		switch {
		case level == c.Level:
			style = style.
				Background(LevelColor(level)).
				Foreground(theme.BgDark).
				BorderForeground(LevelColor(level)).
				Bold(true)
		case level == c.Selected:
			style = style.
				Foreground(theme.Primary).
				BorderForeground(theme.Primary).
				Bold(true)
		}

		cells = append(cells, style.Render(cell))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, cells...)

	label := ScaleLabel(c.Selected)
	if c.Selected == c.Level && c.Level != 0 {
		label += "  (again to clear)"
	}
	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(label)

	return row + "\n" + hint
}

// RatingBadge renders a compact colored badge for a level, "–" when unrated.
func RatingBadge(level int) string {
	if level == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("[–]")
	}
	return lipgloss.NewStyle().
		Foreground(LevelColor(level)).
		Bold(true).
		Render(fmt.Sprintf("[%d]", level))
}
