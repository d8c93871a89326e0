package advice

import (
	"fmt"
	"strings"
)

const adviceSystemPrompt = `You are an experienced A-level Physics tutor. A student has audited their confidence (1-5) across the specification and wants focused, realistic revision advice. Be specific and practical; never invent topics that are not in the data.`

func buildAdviceUserMessage(input Input) string {
	var b strings.Builder
	o := input.Snapshot.Overview

	b.WriteString("Audit Overview:\n")
	b.WriteString(fmt.Sprintf("- Topics assessed: %d of %d (%d%%)\n", o.AssessedTopics, o.TotalTopics, o.Progress))
	b.WriteString(fmt.Sprintf("- Average confidence: %.1f / 5\n", o.AverageConfidence))
	b.WriteString(fmt.Sprintf("- Paper 1 progress: %d%%, Paper 2 progress: %d%%\n", o.Paper1.Progress, o.Paper2.Progress))
	if input.ExamDate != "" {
		b.WriteString(fmt.Sprintf("- Exams: %s\n", input.ExamDate))
	}

	m := input.Snapshot.Mastery
	b.WriteString(fmt.Sprintf("\nMastery: not started %d, beginning %d, developing %d, competent %d, proficient %d, mastered %d\n",
		m.NotStarted, m.Beginning, m.Developing, m.Competent, m.Proficient, m.Mastered))

	b.WriteString("\nWeakest topics (confidence 1-2):\n")
	if len(input.Snapshot.CriticalTopics) == 0 {
		b.WriteString("None\n")
	}
	for _, t := range input.Snapshot.CriticalTopics {
		b.WriteString(fmt.Sprintf("- %s (%s): %d/5\n", t.Topic.Title, t.SectionTitle, t.Level))
	}

	b.WriteString("\nStrongest topics (confidence 4-5):\n")
	if len(input.Snapshot.StrongTopics) == 0 {
		b.WriteString("None\n")
	}
	for _, t := range input.Snapshot.StrongTopics {
		b.WriteString(fmt.Sprintf("- %s (%s): %d/5\n", t.Topic.Title, t.SectionTitle, t.Level))
	}

	v := input.Snapshot.Velocity
	b.WriteString(fmt.Sprintf("\nLast 30 days: %d improvements, %d declines, streak %d days\n",
		v.Improvements, v.Declines, input.Snapshot.Patterns.CurrentStreak))

	b.WriteString(`
Instructions:
1. Write a 2-4 sentence summary of where the student stands, balancing honesty with encouragement.
2. Pick 2-4 priority focus areas from the weakest topics above (use their exact titles and sections). For each, give a one-sentence reason and one concrete suggestion (a practice technique, a resource type, or a linking idea).
3. Suggest a realistic weekly plan as 3-5 bullet points. Mix weak-topic work with maintenance of strong topics.
4. If very few topics are assessed, the first priority should be completing the audit itself.`)

	return b.String()
}
