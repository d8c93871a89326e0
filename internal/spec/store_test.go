package spec

import (
	"testing"

	"github.com/abhisek/physiz/internal/tabular"
)

func testSections() []Section {
	return []Section{
		{
			ID: "measurements_errors", Title: "Measurements and Errors", Paper: Paper1, Icon: "settings",
			Topics: []Topic{
				{ID: "3.1.1a", Title: "SI units"},
				{ID: "3.1.1b", Title: "Prefixes"},
			},
		},
		{
			ID: "waves_properties", Title: "Wave Properties", Paper: Paper1, Icon: "waves",
			Topics: []Topic{
				{ID: "3.3.1.1a", Title: "Progressive waves"},
			},
		},
		{
			ID: "ideal_gases", Title: "Ideal Gases", Paper: Paper2, Icon: "settings",
			Topics: []Topic{
				{ID: "3.6.2.2a", Title: "Gas laws"},
				{ID: "3.6.2.2b", Title: "Molar quantities"},
			},
		},
	}
}

func TestStoreAccessors(t *testing.T) {
	s := NewStore(testSections())

	if got := s.TopicCount(); got != 5 {
		t.Errorf("TopicCount = %d, want 5", got)
	}
	if sec := s.Section("waves_properties"); sec == nil || sec.Title != "Wave Properties" {
		t.Errorf("Section(waves_properties) = %+v", sec)
	}
	if sec := s.Section("nope"); sec != nil {
		t.Errorf("Section(nope) = %+v, want nil", sec)
	}

	topics := s.AllTopics()
	if len(topics) != 5 {
		t.Fatalf("AllTopics len = %d", len(topics))
	}
	// Stable section-then-topic order.
	if topics[0].ID != "3.1.1a" || topics[4].ID != "3.6.2.2b" {
		t.Errorf("AllTopics order = %v ... %v", topics[0].ID, topics[4].ID)
	}

	if sec := s.SectionOf("3.6.2.2a"); sec == nil || sec.ID != "ideal_gases" {
		t.Errorf("SectionOf = %+v", sec)
	}
	if sec := s.SectionOf("missing"); sec != nil {
		t.Errorf("SectionOf(missing) = %+v", sec)
	}
}

func TestTopicsForPaper(t *testing.T) {
	s := NewStore(testSections())

	p1 := s.TopicsForPaper(Paper1)
	if len(p1) != 3 {
		t.Errorf("Paper1 topics = %d, want 3", len(p1))
	}
	p2 := s.TopicsForPaper(Paper2)
	if len(p2) != 2 {
		t.Errorf("Paper2 topics = %d, want 2", len(p2))
	}
}

func TestDuplicateSectionLastWriteWins(t *testing.T) {
	first := Section{ID: "waves_properties", Title: "Old Title", Paper: Paper1,
		Topics: []Topic{{ID: "3.3.1.1a", Title: "Old"}}}
	second := Section{ID: "waves_properties", Title: "New Title", Paper: Paper1,
		Topics: []Topic{{ID: "3.3.1.1a", Title: "New"}}}

	s := NewStore([]Section{first, second})

	if got := s.Section("waves_properties").Title; got != "New Title" {
		t.Errorf("duplicate section title = %q, want last-loaded", got)
	}
	if got := s.TopicCount(); got != 1 {
		t.Errorf("TopicCount = %d, want 1", got)
	}
	if got := s.AllTopics()[0].Title; got != "New" {
		t.Errorf("duplicate topic title = %q, want last-loaded", got)
	}
}

func TestGroupsForMode(t *testing.T) {
	s := NewStore(testSections())

	specGroups := s.GroupsForMode(ModeSpec)
	if len(specGroups) != 10 {
		t.Errorf("spec mode groups = %d, want 10", len(specGroups))
	}
	for _, g := range specGroups {
		if g.Kind != GroupMulti {
			t.Errorf("spec mode has non-group entry %+v", g)
		}
	}

	p1 := s.GroupsForPaper(Paper1)
	if len(p1) != 6 {
		t.Errorf("paper 1 groups = %d, want 6", len(p1))
	}
	last := p1[len(p1)-1]
	if last.Kind != GroupSingle || last.Key != "circular_motion" {
		t.Errorf("paper 1 last group = %+v, want single circular_motion", last)
	}

	// Paper mode and spec mode are independent tables: circular motion is
	// a single entry in paper mode but inside the periodic-motion group in
	// spec mode.
	found := false
	for _, g := range specGroups {
		for _, id := range g.Sections {
			if id == "circular_motion" {
				found = true
			}
		}
	}
	if !found {
		t.Error("circular_motion missing from spec mode groups")
	}
}

func TestSectionsFromRows(t *testing.T) {
	rows := []tabular.Row{
		{
			"section_name": "measurements_errors", "section_title": "Measurements and Errors",
			"section_paper": "Paper 1", "section_icon": "settings",
			"topic_id": "3.1.1a", "topic_title": "SI units", "topic_prompt": "Can you use SI units?",
			"learning_objectives": "know base units|use prefixes", "examples": "kg, m, s",
		},
		{
			"section_name": "measurements_errors", "section_title": "Measurements and Errors",
			"section_paper": "Paper 1", "section_icon": "settings",
			"topic_id": "3.1.1b", "topic_title": "Prefixes",
		},
		// Missing section id: dropped.
		{"topic_id": "orphan", "topic_title": "Orphan"},
	}

	sections := SectionsFromRows(rows)
	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	sec := sections[0]
	if sec.Paper != Paper1 || sec.Icon != "settings" {
		t.Errorf("section header = %+v", sec)
	}
	if len(sec.Topics) != 2 {
		t.Fatalf("topics = %d, want 2", len(sec.Topics))
	}
	if got := sec.Topics[0].LearningObjectives; len(got) != 2 || got[0] != "know base units" {
		t.Errorf("objectives = %v", got)
	}
}
