package analytics

import (
	"testing"
	"time"

	"github.com/abhisek/physiz/internal/confidence"
)

func change(ts time.Time, oldLevel, newLevel int) confidence.Change {
	return confidence.Change{
		TopicID:   "t",
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		Timestamp: ts,
		SessionID: confidence.SessionID(ts),
	}
}

func TestStudyStreak(t *testing.T) {
	now := time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	tests := []struct {
		name    string
		history []confidence.Change
		want    int
	}{
		{"no history", nil, 0},
		{
			"three consecutive days ending today",
			[]confidence.Change{
				change(day(0), 0, 3),
				change(day(-1), 0, 2),
				change(day(-2), 0, 1),
			},
			3,
		},
		{
			"gap before today breaks the streak",
			[]confidence.Change{
				change(day(-1), 0, 3),
				change(day(-2), 0, 2),
			},
			0,
		},
		{
			"gap in the middle cuts the count",
			[]confidence.Change{
				change(day(0), 0, 3),
				change(day(-2), 0, 2),
				change(day(-3), 0, 1),
			},
			1,
		},
		{
			"multiple changes per day count once",
			[]confidence.Change{
				change(day(0), 0, 3),
				change(day(0).Add(-2*time.Hour), 0, 2),
				change(day(-1), 0, 1),
			},
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StudyStreak(tt.history, now); got != tt.want {
				t.Errorf("StudyStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeVelocity(t *testing.T) {
	now := time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC)
	history := []confidence.Change{
		change(now.AddDate(0, 0, -1), 2, 4),  // improvement
		change(now.AddDate(0, 0, -3), 3, 1),  // decline
		change(now.AddDate(0, 0, -5), 1, 2),  // improvement
		change(now.AddDate(0, 0, -40), 1, 5), // outside the window
	}

	v := computeVelocity(history, now)
	if v.Improvements != 2 || v.Declines != 1 || v.Net != 1 {
		t.Errorf("velocity = %+v", v)
	}
	// 2 of 3 recent changes improved.
	if v.ImprovementRate < 66 || v.ImprovementRate > 67 {
		t.Errorf("ImprovementRate = %v", v.ImprovementRate)
	}
}

func TestComputePatterns(t *testing.T) {
	now := time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC) // a Thursday
	sessionA := now.AddDate(0, 0, -1).Truncate(time.Hour)
	history := []confidence.Change{
		change(now, 0, 3),
		change(sessionA.Add(5*time.Minute), 0, 2),
		change(sessionA.Add(10*time.Minute), 0, 4), // same session as above
	}

	p := computePatterns(history, now)
	if p.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", p.TotalSessions)
	}
	if p.AvgChangesPerSession != 1.5 {
		t.Errorf("AvgChangesPerSession = %v, want 1.5", p.AvgChangesPerSession)
	}
	if p.StudyDaysThisMonth != 2 {
		t.Errorf("StudyDaysThisMonth = %d, want 2", p.StudyDaysThisMonth)
	}
	if p.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", p.CurrentStreak)
	}
	if !p.LastStudy.Equal(now) {
		t.Errorf("LastStudy = %v", p.LastStudy)
	}
	// Two changes fell on Wednesday, one on Thursday.
	if p.MostActiveDay != "Wednesday" {
		t.Errorf("MostActiveDay = %q", p.MostActiveDay)
	}
}

func TestWeeklyTrends(t *testing.T) {
	// A Sunday, so the current week holds exactly one day.
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	history := []confidence.Change{
		change(now, 1, 3),                   // this week, improvement
		change(now.AddDate(0, 0, -2), 4, 2), // previous week, decline
		change(now.AddDate(0, 0, -3), 2, 3), // previous week, improvement
	}

	trends := computeWeeklyTrends(history, now)
	if len(trends) != 2 {
		t.Fatalf("trends len = %d, want 2", len(trends))
	}
	// Chronological order, oldest week first.
	if !trends[0].WeekStart.Before(trends[1].WeekStart) {
		t.Error("weeks not chronological")
	}
	if trends[0].TotalChanges != 2 || trends[0].Improvements != 1 {
		t.Errorf("previous week = %+v", trends[0])
	}
	if trends[1].TotalChanges != 1 || trends[1].Improvements != 1 {
		t.Errorf("current week = %+v", trends[1])
	}
	if trends[1].ImprovementRate != 100 {
		t.Errorf("ImprovementRate = %v, want 100", trends[1].ImprovementRate)
	}

	for _, tr := range trends {
		if tr.WeekStart.Weekday() != time.Sunday {
			t.Errorf("WeekStart %v is not Sunday-aligned", tr.WeekStart)
		}
	}
}

func TestWeekStart(t *testing.T) {
	loc := time.UTC
	// Wednesday 2026-03-11 -> Sunday 2026-03-08.
	ws := weekStart(time.Date(2026, 3, 11, 23, 30, 0, 0, loc), loc)
	want := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)
	if !ws.Equal(want) {
		t.Errorf("weekStart = %v, want %v", ws, want)
	}
	// A Sunday maps to itself at midnight.
	ws = weekStart(time.Date(2026, 3, 8, 9, 0, 0, 0, loc), loc)
	if !ws.Equal(want) {
		t.Errorf("sunday weekStart = %v, want %v", ws, want)
	}
}
