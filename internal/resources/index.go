package resources

import "strings"

// SectionResources is the full resource view for one section. Unknown
// sections yield the zero value: nil Section and empty slices.
type SectionResources struct {
	Section     *RevisionSection
	Videos      []Resource
	Notes       []Resource
	Simulations []Resource
	Questions   []Resource
}

// Count returns the total number of resources across all kinds.
func (sr SectionResources) Count() int {
	return len(sr.Videos) + len(sr.Notes) + len(sr.Simulations) + len(sr.Questions)
}

// Index maps section ids to their resources, one bucket per kind.
// An Index is immutable once built; reloading resource data builds a new
// Index and swaps it in whole, so readers never observe a partial merge.
type Index struct {
	byKind   map[Kind]map[string][]Resource
	sections map[string]*RevisionSection
}

// NewIndex builds an index from normalized resources and revision
// sections. Insertion order within each (section, kind) bucket follows
// the input order.
func NewIndex(normalized []Resource, sections map[string]*RevisionSection) *Index {
	idx := &Index{
		byKind:   make(map[Kind]map[string][]Resource),
		sections: make(map[string]*RevisionSection),
	}
	for _, k := range AllKinds() {
		idx.byKind[k] = make(map[string][]Resource)
	}

	for _, r := range normalized {
		id := normalizeSectionID(r.SectionID)
		if id == "" {
			continue
		}
		bucket := idx.byKind[r.Kind]
		bucket[id] = append(bucket[id], r)
	}

	for id, sec := range sections {
		if key := normalizeSectionID(id); key != "" {
			idx.sections[key] = sec
		}
	}

	return idx
}

// EmptyIndex returns an index with no resources. Lookups on it behave
// identically to lookups for unknown sections.
func EmptyIndex() *Index {
	return NewIndex(nil, nil)
}

// Lookup returns everything indexed for a section id. The id is
// normalized the same way as during the build, so numeric-looking and
// padded ids resolve consistently. Unknown ids return empty slices and a
// nil section, never an error.
func (idx *Index) Lookup(sectionID string) SectionResources {
	id := normalizeSectionID(sectionID)
	return SectionResources{
		Section:     idx.sections[id],
		Videos:      idx.byKind[KindVideo][id],
		Notes:       idx.byKind[KindNote][id],
		Simulations: idx.byKind[KindSimulation][id],
		Questions:   idx.byKind[KindQuestion][id],
	}
}

// SectionIDs returns the ids of all sections that have at least one
// resource or a revision section.
func (idx *Index) SectionIDs() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for id := range idx.sections {
		add(id)
	}
	for _, bucket := range idx.byKind {
		for id := range bucket {
			add(id)
		}
	}
	return out
}

// normalizeSectionID applies the same key normalization as the
// normalizer: trim surrounding whitespace.
func normalizeSectionID(id string) string {
	return strings.TrimSpace(id)
}
