package spec

import (
	"github.com/abhisek/physiz/internal/tabular"
)

// Subject CSV columns. One row per topic; section fields repeat on every
// row of the same section.
const (
	colSectionID    = "section_name"
	colSectionTitle = "section_title"
	colSectionPaper = "section_paper"
	colSectionIcon  = "section_icon"
	colTopicID      = "topic_id"
	colTopicTitle   = "topic_title"
	colTopicPrompt  = "topic_prompt"
	colObjectives   = "learning_objectives"
	colExamples     = "examples"
)

// SectionsFromRows converts subject-file rows into sections, preserving
// row order. Rows with an empty section id are dropped silently; a topic
// row with an empty topic id contributes the section header only.
func SectionsFromRows(rows []tabular.Row) []Section {
	var sections []Section
	index := make(map[string]int)

	for _, row := range rows {
		id := row.Get(colSectionID)
		if id == "" {
			continue
		}

		i, ok := index[id]
		if !ok {
			sections = append(sections, Section{
				ID:    id,
				Title: row.Get(colSectionTitle),
				Paper: ParsePaper(row.Get(colSectionPaper)),
				Icon:  row.Get(colSectionIcon),
			})
			i = len(sections) - 1
			index[id] = i
		}

		topicID := row.Get(colTopicID)
		if topicID == "" {
			continue
		}
		sections[i].Topics = append(sections[i].Topics, Topic{
			ID:                 topicID,
			Title:              row.Get(colTopicTitle),
			Prompt:             row.Get(colTopicPrompt),
			LearningObjectives: row.List(colObjectives),
			Examples:           row.List(colExamples),
		})
	}

	return sections
}
