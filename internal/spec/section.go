// Package spec holds the exam specification hierarchy: sections of
// assessable topics, their exam-paper assignment, and the navigation
// groupings for the two view modes. Loaded once at startup and read-only
// thereafter.
package spec

// Paper identifies which exam paper a section is assessed in.
type Paper string

const (
	Paper1   Paper = "Paper 1"
	Paper2   Paper = "Paper 2"
	PaperAll Paper = "All Topics"
)

// ParsePaper maps a raw paper field to a Paper, defaulting to PaperAll.
func ParsePaper(s string) Paper {
	switch s {
	case string(Paper1):
		return Paper1
	case string(Paper2):
		return Paper2
	default:
		return PaperAll
	}
}

// Topic is the smallest assessable unit of curriculum content.
type Topic struct {
	ID                 string
	Title              string
	Prompt             string
	LearningObjectives []string
	Examples           []string
}

// Section is a named grouping of topics assigned to an exam paper.
type Section struct {
	ID     string
	Title  string
	Paper  Paper
	Icon   string
	Topics []Topic
}
