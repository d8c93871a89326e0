// Package analytics derives progress metrics, mastery distribution, and
// study-trend insights from the specification store and the confidence
// ledger. Everything is recomputed from scratch per call; nothing here
// caches across computations.
package analytics

import (
	"time"

	"github.com/abhisek/physiz/internal/spec"
)

// recentWindow is the trailing period considered for velocity and trend
// metrics.
const recentWindow = 30 * 24 * time.Hour

// Snapshot is the full analytics view at one point in time.
type Snapshot struct {
	Overview       Overview
	Mastery        MasteryDistribution
	CriticalTopics []TopicInsight
	StrongTopics   []TopicInsight
	Velocity       StudyVelocity
	Patterns       StudyPatterns
	WeeklyTrends   []WeeklyTrend
}

// Overview summarizes assessment coverage and confidence.
type Overview struct {
	TotalTopics        int
	AssessedTopics     int
	Progress           int // percent, rounded
	AverageConfidence  float64
	LowConfidenceCount int // assessed at level 1 or 2

	Paper1 PaperReadiness
	Paper2 PaperReadiness
}

// PaperReadiness reports coverage for one exam paper.
type PaperReadiness struct {
	Progress          int
	AverageConfidence float64
}

// GroupReadiness reports coverage for one navigation group.
type GroupReadiness struct {
	Title             string
	TotalTopics       int
	Progress          int
	AverageConfidence float64
}

// MasteryDistribution partitions all topics into six disjoint buckets.
// The counts always sum to the total topic count.
type MasteryDistribution struct {
	NotStarted int // no rating
	Beginning  int // level 1
	Developing int // level 2
	Competent  int // level 3
	Proficient int // level 4
	Mastered   int // level 5
}

// Total returns the sum across all buckets.
func (m MasteryDistribution) Total() int {
	return m.NotStarted + m.Beginning + m.Developing + m.Competent + m.Proficient + m.Mastered
}

// TopicInsight pairs a topic with its rating and owning section for the
// critical/strong lists.
type TopicInsight struct {
	Topic        spec.Topic
	SectionID    string
	SectionTitle string
	Level        int
}

// StudyVelocity counts rating movement over the trailing 30 days.
type StudyVelocity struct {
	Improvements    int // newLevel > oldLevel
	Declines        int // newLevel < oldLevel
	Net             int
	ImprovementRate float64 // percent of recent changes that improved
}

// StudyPatterns describes session and cadence heuristics derived from
// the change history.
type StudyPatterns struct {
	TotalSessions        int
	AvgChangesPerSession float64
	StudyDaysThisMonth   int
	MostActiveDay        string // weekday name, "No data" when empty
	CurrentStreak        int    // consecutive study days ending today
	LastStudy            time.Time
}

// WeeklyTrend aggregates recent changes into Sunday-aligned weeks.
type WeeklyTrend struct {
	WeekStart       time.Time
	TotalChanges    int
	Improvements    int
	ImprovementRate float64
}
