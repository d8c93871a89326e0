// Package revision maps coarse revision-section keys to the fine-grained
// topic ids they cover. The table is static data; the core consumes it
// to jump from a rated topic to its revision content.
package revision

import "slices"

// Mapping associates coarse revision keys with topic id sets and display
// titles, with a reverse index from topic id to coarse key.
type Mapping struct {
	topics  map[string][]string
	titles  map[string]string
	reverse map[string]string
}

// NewMapping builds a Mapping from the coarse-key tables. The reverse
// index is derived once here; a topic appearing under two keys keeps the
// last one.
func NewMapping(topics map[string][]string, titles map[string]string) *Mapping {
	m := &Mapping{
		topics:  topics,
		titles:  titles,
		reverse: make(map[string]string),
	}
	for key, ids := range topics {
		for _, id := range ids {
			m.reverse[id] = key
		}
	}
	return m
}

// TopicToSection returns the coarse revision key covering a topic id.
// The second value is false when the topic has no revision content.
func (m *Mapping) TopicToSection(topicID string) (string, bool) {
	key, ok := m.reverse[topicID]
	return key, ok
}

// TopicsFor returns the topic ids a coarse key covers, or nil.
func (m *Mapping) TopicsFor(key string) []string {
	return slices.Clone(m.topics[key])
}

// TitleFor returns the display title for a coarse key, falling back to
// the key itself.
func (m *Mapping) TitleFor(key string) string {
	if t, ok := m.titles[key]; ok {
		return t
	}
	return key
}

// Keys returns all coarse keys in sorted order.
func (m *Mapping) Keys() []string {
	keys := make([]string, 0, len(m.topics))
	for k := range m.topics {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
