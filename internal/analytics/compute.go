package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/spec"
)

// Compute derives a full analytics snapshot from the current store and
// ledger contents. now anchors the streak, velocity, and trend windows.
func Compute(store *spec.Store, ledger *confidence.Ledger, now time.Time) Snapshot {
	topics := store.AllTopics()
	levels := ledger.Levels()
	history := ledger.History()

	snap := Snapshot{
		Overview:     computeOverview(store, topics, levels),
		Mastery:      computeMastery(topics, levels),
		Velocity:     computeVelocity(history, now),
		Patterns:     computePatterns(history, now),
		WeeklyTrends: computeWeeklyTrends(history, now),
	}
	snap.CriticalTopics = topicInsights(store, topics, levels, func(level int) bool {
		return level == 1 || level == 2
	}, true)
	snap.StrongTopics = topicInsights(store, topics, levels, func(level int) bool {
		return level == 4 || level == 5
	}, false)
	return snap
}

// ProgressPercent returns the rounded percentage of topics that hold a
// rating. An empty topic set yields 0, never a division by zero.
func ProgressPercent(topics []spec.Topic, levels map[string]int) int {
	if len(topics) == 0 {
		return 0
	}
	assessed := 0
	for _, t := range topics {
		if _, ok := levels[t.ID]; ok {
			assessed++
		}
	}
	return int(math.Round(100 * float64(assessed) / float64(len(topics))))
}

// AverageLevel returns the mean confidence over assessed topics only,
// or 0 when nothing is assessed.
func AverageLevel(topics []spec.Topic, levels map[string]int) float64 {
	sum, n := 0, 0
	for _, t := range topics {
		if level, ok := levels[t.ID]; ok {
			sum += level
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// GroupProgress reports coverage per navigation group for a view mode,
// in group order.
func GroupProgress(store *spec.Store, levels map[string]int, mode spec.ViewMode) []GroupReadiness {
	groups := store.GroupsForMode(mode)
	out := make([]GroupReadiness, 0, len(groups))
	for _, g := range groups {
		topics := store.TopicsForSections(spec.GroupSections(g))
		out = append(out, GroupReadiness{
			Title:             store.GroupTitle(g),
			TotalTopics:       len(topics),
			Progress:          ProgressPercent(topics, levels),
			AverageConfidence: AverageLevel(topics, levels),
		})
	}
	return out
}

func computeOverview(store *spec.Store, topics []spec.Topic, levels map[string]int) Overview {
	o := Overview{
		TotalTopics:       len(topics),
		Progress:          ProgressPercent(topics, levels),
		AverageConfidence: AverageLevel(topics, levels),
	}
	for _, t := range topics {
		level, ok := levels[t.ID]
		if !ok {
			continue
		}
		o.AssessedTopics++
		if level <= 2 {
			o.LowConfidenceCount++
		}
	}

	p1 := store.TopicsForPaper(spec.Paper1)
	p2 := store.TopicsForPaper(spec.Paper2)
	o.Paper1 = PaperReadiness{
		Progress:          ProgressPercent(p1, levels),
		AverageConfidence: AverageLevel(p1, levels),
	}
	o.Paper2 = PaperReadiness{
		Progress:          ProgressPercent(p2, levels),
		AverageConfidence: AverageLevel(p2, levels),
	}
	return o
}

func computeMastery(topics []spec.Topic, levels map[string]int) MasteryDistribution {
	var m MasteryDistribution
	for _, t := range topics {
		switch levels[t.ID] {
		case 1:
			m.Beginning++
		case 2:
			m.Developing++
		case 3:
			m.Competent++
		case 4:
			m.Proficient++
		case 5:
			m.Mastered++
		default:
			m.NotStarted++
		}
	}
	return m
}

// topicInsights filters topics by rating and sorts ascending or
// descending by level. The sort is stable so spec order breaks ties.
func topicInsights(store *spec.Store, topics []spec.Topic, levels map[string]int, match func(int) bool, ascending bool) []TopicInsight {
	var out []TopicInsight
	for _, t := range topics {
		level, ok := levels[t.ID]
		if !ok || !match(level) {
			continue
		}
		insight := TopicInsight{Topic: t, Level: level}
		if sec := store.SectionOf(t.ID); sec != nil {
			insight.SectionID = sec.ID
			insight.SectionTitle = sec.Title
		}
		out = append(out, insight)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Level < out[j].Level
		}
		return out[i].Level > out[j].Level
	})
	return out
}
