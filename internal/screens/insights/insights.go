// Package insights renders the analytics dashboard: overall progress,
// mastery distribution, weak and strong topics, study patterns, and
// LLM-generated study advice when a provider is configured.
package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/physiz/internal/advice"
	"github.com/abhisek/physiz/internal/analytics"
	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/screen"
	"github.com/abhisek/physiz/internal/spec"
	"github.com/abhisek/physiz/internal/ui/components"
	"github.com/abhisek/physiz/internal/ui/layout"
	"github.com/abhisek/physiz/internal/ui/theme"
)

type adviceResultMsg struct {
	advice *advice.Advice
	err    error
}

type adviceState int

const (
	adviceIdle adviceState = iota
	adviceLoading
	adviceReady
	adviceFailed
)

const pageCount = 3

// InsightsScreen shows the analytics snapshot for the current audit.
type InsightsScreen struct {
	snapshot analytics.Snapshot
	adviser  *advice.Service

	adviceState adviceState
	advice      *advice.Advice
	page        int
}

var _ screen.Screen = (*InsightsScreen)(nil)
var _ screen.KeyHintProvider = (*InsightsScreen)(nil)

// New computes the snapshot and creates the dashboard. adviser may be
// nil when no LLM provider is configured.
func New(store *spec.Store, ledger *confidence.Ledger, adviser *advice.Service) *InsightsScreen {
	return &InsightsScreen{
		snapshot: analytics.Compute(store, ledger, time.Now()),
		adviser:  adviser,
	}
}

func (s *InsightsScreen) Init() tea.Cmd {
	return nil
}

func (s *InsightsScreen) Title() string {
	return "Insights"
}

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Page"},
	}
	if s.adviser != nil {
		hints = append(hints, layout.KeyHint{Key: "a", Description: "Advice"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// requestAdvice generates advice off the update loop; bubbletea runs the
// command in its own goroutine.
func (s *InsightsScreen) requestAdvice() tea.Cmd {
	adviser := s.adviser
	input := advice.Input{Snapshot: s.snapshot}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		result, err := adviser.Generate(ctx, input)
		return adviceResultMsg{advice: result, err: err}
	}
}

func (s *InsightsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case adviceResultMsg:
		if msg.err != nil {
			s.adviceState = adviceFailed
		} else {
			s.advice = msg.advice
			s.adviceState = adviceReady
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if s.page > 0 {
				s.page--
			}
		case "right", "l", "tab":
			if s.page < pageCount-1 {
				s.page++
			}
		case "a":
			if s.adviser != nil && s.adviceState != adviceLoading {
				s.adviceState = adviceLoading
				s.page = 2
				return s, s.requestAdvice()
			}
		}
	}
	return s, nil
}

func (s *InsightsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.page {
	case 0:
		body = s.overviewPage(cw)
	case 1:
		body = s.trendsPage(cw)
	default:
		body = s.advicePage(cw)
	}

	pager := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(pagerDots(s.page))

	content := body + "\n\n" + lipgloss.PlaceHorizontal(cw, lipgloss.Center, pager)
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func pagerDots(page int) string {
	dots := make([]string, pageCount)
	for i := range dots {
		if i == page {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	return strings.Join(dots, " ")
}

func (s *InsightsScreen) overviewPage(cw int) string {
	o := s.snapshot.Overview
	var parts []string

	bar := components.NewProgressBar("Audit", float64(o.Progress)/100, true, cw-8)
	overview := fmt.Sprintf("%s\n%d of %d topics assessed · average confidence %.1f",
		bar.View(), o.AssessedTopics, o.TotalTopics, o.AverageConfidence)
	parts = append(parts, components.TitledPanel("Overview", overview, cw))

	papers := fmt.Sprintf("Paper 1  %3d%%  avg %.1f\nPaper 2  %3d%%  avg %.1f",
		o.Paper1.Progress, o.Paper1.AverageConfidence,
		o.Paper2.Progress, o.Paper2.AverageConfidence)
	parts = append(parts, components.TitledPanel("Papers", papers, cw))

	parts = append(parts, components.TitledPanel("Mastery", s.masteryRows(cw), cw))

	return strings.Join(parts, "\n")
}

// masteryRows renders one bar per mastery band, widest band normalized.
func (s *InsightsScreen) masteryRows(cw int) string {
	m := s.snapshot.Mastery
	rows := []struct {
		label string
		count int
		level int
	}{
		{"Not started", m.NotStarted, 0},
		{"Beginning", m.Beginning, 1},
		{"Developing", m.Developing, 2},
		{"Competent", m.Competent, 3},
		{"Proficient", m.Proficient, 4},
		{"Mastered", m.Mastered, 5},
	}

	maxCount := 1
	for _, r := range rows {
		if r.count > maxCount {
			maxCount = r.count
		}
	}

	barWidth := cw - 28
	if barWidth < 8 {
		barWidth = 8
	}

	var b strings.Builder
	for _, r := range rows {
		filled := r.count * barWidth / maxCount
		bar := lipgloss.NewStyle().
			Foreground(components.LevelColor(r.level)).
			Render(strings.Repeat("█", filled))
		fmt.Fprintf(&b, "%-12s %4d  %s\n", r.label, r.count, bar)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *InsightsScreen) trendsPage(cw int) string {
	var parts []string

	p := s.snapshot.Patterns
	v := s.snapshot.Velocity
	patterns := fmt.Sprintf(
		"Current streak   %d days\nStudy days       %d this month\nSessions         %d (avg %.1f changes)\nMost active      %s",
		p.CurrentStreak, p.StudyDaysThisMonth, p.TotalSessions, p.AvgChangesPerSession, p.MostActiveDay)
	parts = append(parts, components.TitledPanel("Study patterns", patterns, cw))

	velocity := fmt.Sprintf("Improvements     %d\nDeclines         %d\nNet              %+d\nImprovement rate %.0f%%",
		v.Improvements, v.Declines, v.Net, v.ImprovementRate)
	parts = append(parts, components.TitledPanel("Last 30 days", velocity, cw))

	parts = append(parts, components.TitledPanel("Focus next", s.topicList(s.snapshot.CriticalTopics, cw), cw))
	parts = append(parts, components.TitledPanel("Going well", s.topicList(s.snapshot.StrongTopics, cw), cw))

	return strings.Join(parts, "\n")
}

func (s *InsightsScreen) topicList(topics []analytics.TopicInsight, cw int) string {
	if len(topics) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Nothing yet — keep auditing.")
	}
	shown := topics
	if len(shown) > 5 {
		shown = shown[:5]
	}
	var b strings.Builder
	for _, t := range shown {
		fmt.Fprintf(&b, "%s %s  %s\n",
			components.RatingBadge(t.Level),
			t.Topic.Title,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.SectionTitle))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *InsightsScreen) advicePage(cw int) string {
	if s.adviser == nil {
		return components.TitledPanel("Study advice",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("Set an LLM API key to get personalised advice (see physiz --help)."), cw)
	}

	switch s.adviceState {
	case adviceLoading:
		return components.TitledPanel("Study advice",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Thinking..."), cw)
	case adviceFailed:
		return components.TitledPanel("Study advice",
			lipgloss.NewStyle().Foreground(theme.Error).Render("Advice generation failed. Press 'a' to retry."), cw)
	case adviceReady:
		return s.renderAdvice(cw)
	default:
		return components.TitledPanel("Study advice",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Press 'a' to generate advice from your audit."), cw)
	}
}

func (s *InsightsScreen) renderAdvice(cw int) string {
	var parts []string

	parts = append(parts, components.TitledPanel("Summary",
		lipgloss.NewStyle().Foreground(theme.Text).Width(cw-6).Render(s.advice.Summary), cw))

	if len(s.advice.Priorities) > 0 {
		var b strings.Builder
		for _, p := range s.advice.Priorities {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render(p.TopicTitle))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("  "+p.SectionTitle) + "\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw-6).
				Render(p.Reason) + "\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Width(cw-6).
				Render("→ "+p.Suggestion) + "\n\n")
		}
		parts = append(parts, components.TitledPanel("Priorities", strings.TrimRight(b.String(), "\n"), cw))
	}

	if len(s.advice.WeeklyPlan) > 0 {
		var b strings.Builder
		for _, item := range s.advice.WeeklyPlan {
			b.WriteString("• " + item + "\n")
		}
		parts = append(parts, components.TitledPanel("This week",
			lipgloss.NewStyle().Foreground(theme.Text).Width(cw-6).
				Render(strings.TrimRight(b.String(), "\n")), cw))
	}

	return strings.Join(parts, "\n")
}
