package analytics

import (
	"sort"
	"time"

	"github.com/abhisek/physiz/internal/confidence"
)

// dayKey collapses a timestamp to its calendar date in the reference
// location. All streak and trend math works on these keys.
func dayKey(ts time.Time, loc *time.Location) string {
	return ts.In(loc).Format("2006-01-02")
}

func computeVelocity(history []confidence.Change, now time.Time) StudyVelocity {
	cutoff := now.Add(-recentWindow)
	var v StudyVelocity
	total := 0
	for _, c := range history {
		if c.Timestamp.Before(cutoff) {
			continue
		}
		total++
		switch {
		case c.NewLevel > c.OldLevel:
			v.Improvements++
		case c.NewLevel < c.OldLevel:
			v.Declines++
		}
	}
	v.Net = v.Improvements - v.Declines
	if total > 0 {
		v.ImprovementRate = 100 * float64(v.Improvements) / float64(total)
	}
	return v
}

// StudyStreak counts consecutive calendar days with at least one change,
// ending today. Any gap immediately before today resets it to zero.
func StudyStreak(history []confidence.Change, now time.Time) int {
	if len(history) == 0 {
		return 0
	}
	loc := now.Location()
	days := make(map[string]bool, len(history))
	for _, c := range history {
		days[dayKey(c.Timestamp, loc)] = true
	}

	streak := 0
	for day := now; days[dayKey(day, loc)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func computePatterns(history []confidence.Change, now time.Time) StudyPatterns {
	p := StudyPatterns{
		MostActiveDay: "No data",
		CurrentStreak: StudyStreak(history, now),
	}
	if len(history) == 0 {
		return p
	}
	p.LastStudy = history[0].Timestamp

	sessions := make(map[string]bool, len(history))
	for _, c := range history {
		sessions[c.SessionID] = true
	}
	p.TotalSessions = len(sessions)
	if p.TotalSessions > 0 {
		p.AvgChangesPerSession = float64(len(history)) / float64(p.TotalSessions)
	}

	cutoff := now.Add(-recentWindow)
	loc := now.Location()
	recentDays := make(map[string]bool)
	weekdayCounts := make(map[time.Weekday]int)
	for _, c := range history {
		if c.Timestamp.Before(cutoff) {
			continue
		}
		recentDays[dayKey(c.Timestamp, loc)] = true
		weekdayCounts[c.Timestamp.In(loc).Weekday()]++
	}
	p.StudyDaysThisMonth = len(recentDays)

	best, bestCount := time.Weekday(-1), 0
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if weekdayCounts[wd] > bestCount {
			best, bestCount = wd, weekdayCounts[wd]
		}
	}
	if bestCount > 0 {
		p.MostActiveDay = best.String()
	}
	return p
}

// weekStart returns midnight of the Sunday opening the week that holds
// ts, in the given location.
func weekStart(ts time.Time, loc *time.Location) time.Time {
	t := ts.In(loc)
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

func computeWeeklyTrends(history []confidence.Change, now time.Time) []WeeklyTrend {
	cutoff := now.Add(-recentWindow)
	loc := now.Location()

	buckets := make(map[time.Time]*WeeklyTrend)
	for _, c := range history {
		if c.Timestamp.Before(cutoff) {
			continue
		}
		ws := weekStart(c.Timestamp, loc)
		b := buckets[ws]
		if b == nil {
			b = &WeeklyTrend{WeekStart: ws}
			buckets[ws] = b
		}
		b.TotalChanges++
		if c.NewLevel > c.OldLevel {
			b.Improvements++
		}
	}

	out := make([]WeeklyTrend, 0, len(buckets))
	for _, b := range buckets {
		if b.TotalChanges > 0 {
			b.ImprovementRate = 100 * float64(b.Improvements) / float64(b.TotalChanges)
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].WeekStart.Before(out[j].WeekStart)
	})
	return out
}
