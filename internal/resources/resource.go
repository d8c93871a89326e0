// Package resources normalizes raw tabular resource records and indexes
// them per section for constant-time lookup. Normalization applies
// per-field defaults, drops rows without a section id, and deduplicates
// by URL; the index is rebuilt as a whole whenever resource data is
// (re)loaded.
package resources

// Kind identifies a resource variant.
type Kind string

const (
	KindVideo      Kind = "video"
	KindNote       Kind = "note"
	KindSimulation Kind = "simulation"
	KindQuestion   Kind = "question"
)

// AllKinds returns the resource kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindVideo, KindNote, KindSimulation, KindQuestion}
}

// Label returns a human-readable name for a kind.
func (k Kind) Label() string {
	switch k {
	case KindVideo:
		return "Videos"
	case KindNote:
		return "Notes"
	case KindSimulation:
		return "Simulations"
	case KindQuestion:
		return "Questions"
	default:
		return string(k)
	}
}

// Resource is a tagged union over the four resource variants. The base
// fields are shared; exactly one extension matching Kind is non-nil.
type Resource struct {
	Kind       Kind
	SectionID  string
	Title      string
	Description string
	URL        string // dedup key within (section, kind)
	Difficulty string

	Video      *VideoExt
	Note       *NoteExt
	Simulation *SimulationExt
	Question   *QuestionExt
}

// VideoExt holds video-specific fields.
type VideoExt struct {
	Duration string
	Provider string
}

// NoteExt holds note-specific fields.
type NoteExt struct {
	Type  string
	Pages string
}

// SimulationExt holds simulation-specific fields.
type SimulationExt struct {
	Provider      string
	Interactivity string
}

// QuestionExt holds question-set-specific fields.
type QuestionExt struct {
	Type          string
	QuestionCount string
	HasAnswers    bool
}

// RevisionSection holds the curated revision content for one section:
// free-text notes (HTML-bearing), key formulas, and common mistakes.
type RevisionSection struct {
	SectionID      string
	Title          string
	Notes          string
	KeyFormulas    []string
	CommonMistakes []string
}
