package resources

import (
	"testing"

	"github.com/abhisek/physiz/internal/tabular"
)

func buildTestIndex() *Index {
	videos, _ := Normalize([]tabular.Row{
		{"section_id": "3.1.1", "title": "V1", "url": "https://v1"},
		{"section_id": "3.1.1", "title": "V2", "url": "https://v2"},
		{"section_id": " 3.1.2 ", "title": "V3", "url": "https://v3"},
	}, KindVideo)
	notes, _ := Normalize([]tabular.Row{
		{"section_id": "3.1.1", "title": "N1", "url": "https://n1"},
	}, KindNote)
	sections := NormalizeRevisionSections([]tabular.Row{
		{"section_id": "3.1.1", "title": "SI Units"},
	})

	all := append(videos, notes...)
	return NewIndex(all, sections)
}

func TestLookup(t *testing.T) {
	idx := buildTestIndex()

	sr := idx.Lookup("3.1.1")
	if sr.Section == nil || sr.Section.Title != "SI Units" {
		t.Errorf("section = %+v", sr.Section)
	}
	if len(sr.Videos) != 2 || sr.Videos[0].Title != "V1" || sr.Videos[1].Title != "V2" {
		t.Errorf("videos = %+v", sr.Videos)
	}
	if len(sr.Notes) != 1 {
		t.Errorf("notes = %+v", sr.Notes)
	}
	if sr.Count() != 3 {
		t.Errorf("Count = %d, want 3", sr.Count())
	}
}

func TestLookupNormalizesKey(t *testing.T) {
	idx := buildTestIndex()

	// "3.1.2" was indexed from a padded id; a padded lookup resolves too.
	if got := idx.Lookup("3.1.2"); len(got.Videos) != 1 {
		t.Errorf("trimmed build key: videos = %+v", got.Videos)
	}
	if got := idx.Lookup("  3.1.2  "); len(got.Videos) != 1 {
		t.Errorf("padded lookup key: videos = %+v", got.Videos)
	}
}

func TestLookupUnknownSection(t *testing.T) {
	idx := buildTestIndex()

	sr := idx.Lookup("999")
	if sr.Section != nil {
		t.Errorf("section = %+v, want nil", sr.Section)
	}
	if len(sr.Videos) != 0 || len(sr.Notes) != 0 || len(sr.Simulations) != 0 || len(sr.Questions) != 0 {
		t.Errorf("unknown section returned resources: %+v", sr)
	}
	if sr.Count() != 0 {
		t.Errorf("Count = %d, want 0", sr.Count())
	}
}

func TestEmptyIndex(t *testing.T) {
	idx := EmptyIndex()
	sr := idx.Lookup("anything")
	if sr.Section != nil || sr.Count() != 0 {
		t.Errorf("empty index lookup = %+v", sr)
	}
	if ids := idx.SectionIDs(); len(ids) != 0 {
		t.Errorf("SectionIDs = %v", ids)
	}
}

func TestRebuildIsFullReplace(t *testing.T) {
	old := buildTestIndex()

	videos, _ := Normalize([]tabular.Row{
		{"section_id": "3.9.9", "title": "New", "url": "https://new"},
	}, KindVideo)
	rebuilt := NewIndex(videos, nil)

	// The new index knows nothing about the old build's sections.
	if got := rebuilt.Lookup("3.1.1"); got.Count() != 0 || got.Section != nil {
		t.Errorf("stale entries leaked into rebuilt index: %+v", got)
	}
	if got := rebuilt.Lookup("3.9.9"); len(got.Videos) != 1 {
		t.Errorf("rebuilt index missing new entry: %+v", got)
	}
	// The old index is untouched.
	if got := old.Lookup("3.1.1"); got.Count() != 3 {
		t.Errorf("old index mutated: %+v", got)
	}
}
