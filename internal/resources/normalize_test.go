package resources

import (
	"reflect"
	"testing"

	"github.com/abhisek/physiz/internal/tabular"
)

func TestNormalizeDefaults(t *testing.T) {
	tests := []struct {
		kind      Kind
		wantTitle string
	}{
		{KindVideo, "Untitled Video"},
		{KindNote, "Untitled Note"},
		{KindSimulation, "Untitled Simulation"},
		{KindQuestion, "Untitled Questions"},
	}

	for _, tt := range tests {
		rows := []tabular.Row{{"section_id": "3.1.1"}}
		got, dups := Normalize(rows, tt.kind)
		if len(dups) != 0 {
			t.Errorf("%s: unexpected duplicates %v", tt.kind, dups)
		}
		if len(got) != 1 {
			t.Fatalf("%s: got %d resources", tt.kind, len(got))
		}
		r := got[0]
		if r.Title != tt.wantTitle {
			t.Errorf("%s title = %q, want %q", tt.kind, r.Title, tt.wantTitle)
		}
		if r.Difficulty != "Foundation" {
			t.Errorf("%s difficulty = %q, want Foundation", tt.kind, r.Difficulty)
		}
	}
}

func TestNormalizeVariantFields(t *testing.T) {
	videos, _ := Normalize([]tabular.Row{{
		"section_id": "3.1.1", "title": "SI Units Explained", "url": "https://yt/x",
		"duration": "12:30", "provider": "Physics Online", "difficulty": "Higher",
	}}, KindVideo)
	v := videos[0]
	if v.Video == nil || v.Video.Duration != "12:30" || v.Video.Provider != "Physics Online" {
		t.Errorf("video ext = %+v", v.Video)
	}
	if v.Note != nil || v.Simulation != nil || v.Question != nil {
		t.Error("video resource carries foreign extensions")
	}

	questions, _ := Normalize([]tabular.Row{{
		"section_id": "3.1.1", "has_answers": "TRUE", "question_count": "15",
	}}, KindQuestion)
	q := questions[0]
	if q.Question == nil || !q.Question.HasAnswers || q.Question.QuestionCount != "15" {
		t.Errorf("question ext = %+v", q.Question)
	}
	if q.Question.Type != "Multiple Choice" {
		t.Errorf("question type default = %q", q.Question.Type)
	}
}

func TestNormalizeDropsMissingSectionID(t *testing.T) {
	rows := []tabular.Row{
		{"title": "No section"},
		{"section_id": "   ", "title": "Blank section"},
		{"section_id": "3.1.1", "title": "Kept"},
	}
	got, dups := Normalize(rows, KindNote)
	if len(got) != 1 || got[0].Title != "Kept" {
		t.Errorf("got %+v", got)
	}
	if len(dups) != 0 {
		t.Errorf("dups = %v", dups)
	}
}

func TestNormalizeDedupByURL(t *testing.T) {
	rows := []tabular.Row{
		{"section_id": "3.1.1", "title": "First", "url": "https://a"},
		{"section_id": "3.1.1", "title": "Second", "url": "https://a"},
		{"section_id": "3.1.2", "title": "Other section", "url": "https://a"},
	}
	got, dups := Normalize(rows, KindVideo)

	if len(got) != 2 {
		t.Fatalf("got %d resources, want 2", len(got))
	}
	if got[0].Title != "First" {
		t.Errorf("first occurrence should win, got %q", got[0].Title)
	}
	if len(dups) != 1 || dups[0].SectionID != "3.1.1" || dups[0].URL != "https://a" {
		t.Errorf("dups = %+v", dups)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	rows := []tabular.Row{
		{"section_id": "3.1.1", "title": "A", "url": "https://a"},
		{"section_id": "3.1.1", "title": "B", "url": "https://b"},
		{"section_id": "3.1.1", "title": "A again", "url": "https://a"},
	}
	once, _ := Normalize(rows, KindVideo)
	twice, _ := Normalize(append(rows, rows...), KindVideo)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalizing doubled input changed the result:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestDecodeHTMLField(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "hello", "hello"},
		{"wrapped quotes", `"<b>x</b>"`, "<b>x</b>"},
		{"leading quote only", `"unbalanced`, `"unbalanced`},
		{"entities", "&lt;p&gt;a &quot;b&quot; &#x27;c&#x27;&lt;/p&gt;", `<p>a "b" 'c'</p>`},
		{"amp last", "&amp;lt;", "&lt;"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		if got := DecodeHTMLField(tt.in); got != tt.want {
			t.Errorf("%s: DecodeHTMLField(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestNormalizeRevisionSections(t *testing.T) {
	rows := []tabular.Row{
		{
			"section_id": "3.1.1", "title": "SI Units and Measurements",
			"notes_html":      `"&lt;p&gt;Base units&lt;/p&gt;"`,
			"key_formulas":    "v = s/t|a = Δv/t",
			"common_mistakes": "mixing prefixes| ",
		},
		{"title": "no section id"},
	}
	got := NormalizeRevisionSections(rows)
	if len(got) != 1 {
		t.Fatalf("got %d sections", len(got))
	}
	sec := got["3.1.1"]
	if sec.Notes != "<p>Base units</p>" {
		t.Errorf("notes = %q", sec.Notes)
	}
	if len(sec.KeyFormulas) != 2 || len(sec.CommonMistakes) != 1 {
		t.Errorf("lists = %v / %v", sec.KeyFormulas, sec.CommonMistakes)
	}
}
