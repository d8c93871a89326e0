package home

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/physiz/internal/analytics"
	"github.com/abhisek/physiz/internal/ui/components"
	"github.com/abhisek/physiz/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const titleArtFull = ` ██████╗ ██╗  ██╗██╗   ██╗███████╗██╗███████╗
 ██╔══██╗██║  ██║╚██╗ ██╔╝██╔════╝██║╚══███╔╝
 ██████╔╝███████║ ╚████╔╝ ███████╗██║  ███╔╝
 ██╔═══╝ ██╔══██║  ╚██╔╝  ╚════██║██║ ███╔╝
 ██║     ██║  ██║   ██║   ███████║██║███████╗
 ╚═╝     ╚═╝  ╚═╝   ╚═╝   ╚══════╝╚═╝╚══════╝`

const titleArtCompact = "P · H · Y · S · I · Z"

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by
	// adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, h.renderStatsBar(cw, compact))
	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, compact))

	if !h.hasAdviser {
		sections = append(sections, renderLLMBanner(cw))
	}
	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CenterFrame(content, width, height)
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleArtFull
	if compact {
		art = titleArtCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the audit dashboard numbers in a bordered box.
func (h *HomeScreen) renderStatsBar(cw int, compact bool) string {
	rated := h.ledger.RatedCount()
	total := h.store.TopicCount()
	progress := analytics.ProgressPercent(h.store.AllTopics(), h.ledger.Levels())
	streak := analytics.StudyStreak(h.ledger.History(), time.Now())

	progressStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			progressStyle.Render(fmt.Sprintf("◆%d%%", progress)),
			dimStyle.Render(fmt.Sprintf("%d/%d", rated, total)),
			streakText(streak, true, streakStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			progressStyle.Render(fmt.Sprintf("◆ %d%% AUDITED", progress)),
			dimStyle.Render(fmt.Sprintf("%d OF %d TOPICS", rated, total)),
			streakText(streak, false, streakStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func streakText(days int, compact bool, active, dim lipgloss.Style) string {
	if days == 0 {
		if compact {
			return dim.Render("★0")
		}
		return dim.Render("★ NO STREAK")
	}
	if compact {
		return active.Render(fmt.Sprintf("★%d", days))
	}
	return active.Render(fmt.Sprintf("★ %d DAY STREAK", days))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button, or simple
// text lines on very small terminals.
func renderMenu(items []string, selected, cw int, compact bool) string {
	if compact {
		var lines []string
		for i, label := range items {
			var line string
			if i == selected {
				line = lipgloss.NewStyle().
					Foreground(theme.BgDark).
					Background(theme.Primary).
					Bold(true).
					Render(" ▸ " + label + " ")
			} else {
				line = lipgloss.NewStyle().
					Foreground(theme.Text).
					Render("   " + label)
			}
			lines = append(lines, line)
		}
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(strings.Join(lines, "\n"))
	}

	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderLLMBanner renders a hint when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("Set an LLM API key for study advice (see physiz --help)")
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("New version %s available — run physiz update", latestVersion))
}
