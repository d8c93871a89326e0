package dataset

import (
	"testing"
	"testing/fstest"

	"github.com/abhisek/physiz/internal/spec"
)

func TestLoadEmbedded(t *testing.T) {
	ds, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if ds.Store.TopicCount() == 0 {
		t.Fatal("embedded dataset has no topics")
	}
	if len(ds.Store.Sections()) < 20 {
		t.Errorf("sections = %d, want the full specification", len(ds.Store.Sections()))
	}

	// Every section referenced by a navigation group must exist.
	for _, mode := range []spec.ViewMode{spec.ModePaper, spec.ModeSpec} {
		for _, g := range ds.Store.GroupsForMode(mode) {
			for _, id := range spec.GroupSections(g) {
				if ds.Store.Section(id) == nil {
					t.Errorf("group %q references unknown section %q", g.Key, id)
				}
			}
		}
	}

	// The resource index must only reference known sections.
	for _, id := range ds.Index.SectionIDs() {
		if ds.Store.Section(id) == nil {
			t.Errorf("resource index references unknown section %q", id)
		}
	}

	// Spot-check one section's resources.
	sr := ds.Index.Lookup("dc_circuits")
	if sr.Count() == 0 {
		t.Error("dc_circuits has no resources")
	}
	if sr.Section == nil || len(sr.Section.KeyFormulas) == 0 {
		t.Error("dc_circuits revision section missing or empty")
	}

	if len(ds.Duplicates) != 0 {
		t.Errorf("embedded dataset has %d duplicate URLs", len(ds.Duplicates))
	}
}

func TestLoadEmbeddedPapers(t *testing.T) {
	ds, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Store.TopicsForPaper(spec.Paper1)) == 0 {
		t.Error("no Paper 1 topics")
	}
	if len(ds.Store.TopicsForPaper(spec.Paper2)) == 0 {
		t.Error("no Paper 2 topics")
	}
}

func TestLoadFromMissingSheets(t *testing.T) {
	// A data root with only one subject sheet still loads; the missing
	// sheets degrade to empty slices.
	fsys := fstest.MapFS{
		"subjects/measurements.csv": &fstest.MapFile{Data: []byte(
			"section_name,section_title,section_paper,section_icon,topic_id,topic_title\n" +
				"measurements_errors,Measurements,Paper 1,x,3.1.1a,SI Units\n",
		)},
	}

	ds, err := loadFrom(fsys)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if ds.Store.TopicCount() != 1 {
		t.Errorf("TopicCount = %d, want 1", ds.Store.TopicCount())
	}
	if got := ds.Index.Lookup("measurements_errors"); got.Count() != 0 {
		t.Errorf("resources = %d, want none", got.Count())
	}
}

func TestLoadFromEmptyRootFails(t *testing.T) {
	if _, err := loadFrom(fstest.MapFS{}); err != ErrNoData {
		t.Errorf("err = %v, want ErrNoData", err)
	}
}

func TestLoadRejectsMissingDir(t *testing.T) {
	if _, err := Load("/nonexistent/physiz-data"); err == nil {
		t.Error("missing override directory accepted")
	}
}
