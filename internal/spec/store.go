package spec

import (
	"slices"
)

// Store holds the loaded specification with precomputed indices.
// It is constructed once and passed by reference to consumers; there is
// no package-level singleton.
type Store struct {
	sections []Section
	byID     map[string]*Section
	topics   []Topic
	topicSec map[string]string // topic id -> owning section id
}

// NewStore builds a Store from sections in load order.
//
// A section id appearing twice keeps its original position but takes the
// content of the last occurrence; topic ids are assumed globally unique,
// so a collision across source files is last-loaded-wins, silently.
func NewStore(sections []Section) *Store {
	s := &Store{
		byID:     make(map[string]*Section, len(sections)),
		topicSec: make(map[string]string),
	}

	for _, sec := range sections {
		if existing, ok := s.byID[sec.ID]; ok {
			*existing = sec
			continue
		}
		s.sections = append(s.sections, sec)
		s.byID[sec.ID] = &s.sections[len(s.sections)-1]
	}

	for i := range s.sections {
		for _, t := range s.sections[i].Topics {
			s.topics = append(s.topics, t)
			s.topicSec[t.ID] = s.sections[i].ID
		}
	}

	return s
}

// Section returns a section by id, or nil if not found.
func (s *Store) Section(id string) *Section {
	return s.byID[id]
}

// Sections returns all sections in load order.
func (s *Store) Sections() []Section {
	return slices.Clone(s.sections)
}

// AllTopics returns every topic flattened across all sections, in stable
// section-then-topic order.
func (s *Store) AllTopics() []Topic {
	return slices.Clone(s.topics)
}

// TopicCount returns the total number of topics.
func (s *Store) TopicCount() int {
	return len(s.topics)
}

// SectionOf returns the section owning a topic id, or nil.
func (s *Store) SectionOf(topicID string) *Section {
	secID, ok := s.topicSec[topicID]
	if !ok {
		return nil
	}
	return s.byID[secID]
}

// TopicsForPaper returns all topics whose section is assessed in the
// given paper, in stable order.
func (s *Store) TopicsForPaper(p Paper) []Topic {
	var out []Topic
	for i := range s.sections {
		if s.sections[i].Paper != p {
			continue
		}
		out = append(out, s.sections[i].Topics...)
	}
	return out
}

// TopicsForSections returns the topics of the named sections, in the
// order the section ids are given. Unknown ids are skipped.
func (s *Store) TopicsForSections(ids []string) []Topic {
	var out []Topic
	for _, id := range ids {
		if sec := s.byID[id]; sec != nil {
			out = append(out, sec.Topics...)
		}
	}
	return out
}

// GroupsForMode returns the static navigation groups for a view mode.
// Paper mode concatenates the Paper 1 and Paper 2 tables; papers can also
// be requested individually via GroupsForPaper.
func (s *Store) GroupsForMode(mode ViewMode) []Group {
	if mode == ModeSpec {
		return slices.Clone(specModeGroups)
	}
	out := slices.Clone(paperModeGroups[Paper1])
	return append(out, paperModeGroups[Paper2]...)
}

// GroupsForPaper returns the paper-mode groups for one exam paper.
func (s *Store) GroupsForPaper(p Paper) []Group {
	return slices.Clone(paperModeGroups[p])
}

// GroupTitle returns the display title for a group, resolving single
// groups to their section title.
func (s *Store) GroupTitle(g Group) string {
	if g.Kind == GroupSingle {
		if sec := s.byID[g.Key]; sec != nil {
			return sec.Title
		}
		return g.Key
	}
	return g.Title
}

// GroupSections returns the section ids a group covers.
func GroupSections(g Group) []string {
	if g.Kind == GroupSingle {
		return []string{g.Key}
	}
	return slices.Clone(g.Sections)
}
