package resources

import (
	"strings"

	"github.com/abhisek/physiz/internal/tabular"
)

// Duplicate reports a resource row dropped because an earlier row in the
// same (section, kind) bucket already claimed its URL. Duplicates are
// non-fatal; callers may log them.
type Duplicate struct {
	SectionID string
	Kind      Kind
	URL       string
}

// Normalize converts raw rows of one resource kind into typed resources,
// applying per-field defaults and deduplicating by URL within each
// section. The first occurrence of a URL wins; later duplicates are
// returned in the second value. Rows with an empty section id are
// dropped silently. Normalize is pure: it never fails on a bad record.
func Normalize(rows []tabular.Row, kind Kind) ([]Resource, []Duplicate) {
	var out []Resource
	var dups []Duplicate
	seen := make(map[string]map[string]bool) // section id -> url set

	for _, row := range rows {
		sectionID := row.Get("section_id")
		if sectionID == "" {
			continue
		}

		r := newResource(row, kind)
		r.SectionID = sectionID

		urls := seen[sectionID]
		if urls == nil {
			urls = make(map[string]bool)
			seen[sectionID] = urls
		}
		if urls[r.URL] {
			dups = append(dups, Duplicate{SectionID: sectionID, Kind: kind, URL: r.URL})
			continue
		}
		urls[r.URL] = true
		out = append(out, r)
	}

	return out, dups
}

// newResource builds one resource from a row, filling kind-specific
// defaults the way the source data expects them.
func newResource(row tabular.Row, kind Kind) Resource {
	r := Resource{
		Kind:        kind,
		Description: row.Get("description"),
		URL:         row.Get("url"),
		Difficulty:  row.GetOr("difficulty", "Foundation"),
	}

	switch kind {
	case KindVideo:
		r.Title = row.GetOr("title", "Untitled Video")
		r.Video = &VideoExt{
			Duration: row.Get("duration"),
			Provider: row.GetOr("provider", "YouTube"),
		}
	case KindNote:
		r.Title = row.GetOr("title", "Untitled Note")
		r.Note = &NoteExt{
			Type:  row.GetOr("type", "PDF"),
			Pages: row.Get("pages"),
		}
	case KindSimulation:
		r.Title = row.GetOr("title", "Untitled Simulation")
		r.Simulation = &SimulationExt{
			Provider:      row.GetOr("provider", "PhET"),
			Interactivity: row.GetOr("interactivity", "High"),
		}
	case KindQuestion:
		r.Title = row.GetOr("title", "Untitled Questions")
		r.Question = &QuestionExt{
			Type:          row.GetOr("type", "Multiple Choice"),
			QuestionCount: row.Get("question_count"),
			HasAnswers:    row.Bool("has_answers"),
		}
	}

	return r
}

// NormalizeRevisionSections converts revision-section rows into
// RevisionSections keyed by section id. Later rows for the same section
// replace earlier ones. Rows with an empty section id are dropped.
func NormalizeRevisionSections(rows []tabular.Row) map[string]*RevisionSection {
	out := make(map[string]*RevisionSection)
	for _, row := range rows {
		sectionID := row.Get("section_id")
		if sectionID == "" {
			continue
		}
		out[sectionID] = &RevisionSection{
			SectionID:      sectionID,
			Title:          row.Get("title"),
			Notes:          DecodeHTMLField(row.Get("notes_html")),
			KeyFormulas:    row.List("key_formulas"),
			CommonMistakes: row.List("common_mistakes"),
		}
	}
	return out
}

// htmlEntities lists the entity replacements in their required order.
// &amp; must be decoded last so sequences like &amp;lt; resolve to &lt;
// rather than <.
var htmlEntities = [...][2]string{
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#x27;", "'"},
	{"&amp;", "&"},
}

// DecodeHTMLField cleans a free-text HTML cell: it strips a single layer
// of wrapping double quotes when both are present, then decodes the five
// entities the source exporter emits.
func DecodeHTMLField(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	for _, e := range htmlEntities {
		s = strings.ReplaceAll(s, e[0], e[1])
	}
	return s
}
