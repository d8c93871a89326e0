package revision

import "testing"

func TestTopicToSection(t *testing.T) {
	m := DefaultMapping()

	tests := []struct {
		topicID string
		wantKey string
		wantOK  bool
	}{
		{"3.1.1a", "3.1.1", true},
		{"3.4.1.5c", "3.4.1.5", true},
		{"3.5.1.6b", "3.5.1.6", true},
		{"not-a-topic", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		key, ok := m.TopicToSection(tt.topicID)
		if key != tt.wantKey || ok != tt.wantOK {
			t.Errorf("TopicToSection(%q) = %q, %v; want %q, %v",
				tt.topicID, key, ok, tt.wantKey, tt.wantOK)
		}
	}
}

func TestTopicsForAndTitles(t *testing.T) {
	m := DefaultMapping()

	topics := m.TopicsFor("3.1.2")
	if len(topics) != 5 {
		t.Errorf("TopicsFor(3.1.2) = %v", topics)
	}
	if m.TopicsFor("9.9.9") != nil {
		t.Error("TopicsFor on unknown key should be nil")
	}

	if got := m.TitleFor("3.2.2.1"); got != "Photoelectric Effect" {
		t.Errorf("TitleFor = %q", got)
	}
	if got := m.TitleFor("9.9.9"); got != "9.9.9" {
		t.Errorf("TitleFor fallback = %q", got)
	}
}

func TestReverseLastWriteWins(t *testing.T) {
	m := NewMapping(map[string][]string{
		"a": {"t1"},
		"b": {"t1"},
	}, nil)

	// Either key is acceptable for a doubly-mapped topic, but the lookup
	// must succeed.
	if _, ok := m.TopicToSection("t1"); !ok {
		t.Error("doubly-mapped topic not resolvable")
	}
}

func TestEveryTopicHasTitle(t *testing.T) {
	m := DefaultMapping()
	for _, key := range m.Keys() {
		if m.TitleFor(key) == key {
			t.Errorf("revision key %q has no display title", key)
		}
	}
}
