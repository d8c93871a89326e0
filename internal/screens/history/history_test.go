package history

import (
	"testing"
	"time"

	"github.com/abhisek/physiz/internal/confidence"
)

func TestGroupSessions(t *testing.T) {
	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	history := []confidence.Change{
		{TopicID: "c", OldLevel: 4, NewLevel: 2, SessionID: "s2", Timestamp: base.Add(time.Hour)},
		{TopicID: "b", OldLevel: 2, NewLevel: 4, SessionID: "s1", Timestamp: base.Add(5 * time.Minute)},
		{TopicID: "a", OldLevel: 0, NewLevel: 3, SessionID: "s1", Timestamp: base},
	}

	sessions := groupSessions(history)
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}

	// Newest session first, matching history order.
	if sessions[0].id != "s2" || sessions[1].id != "s1" {
		t.Errorf("session order = %s, %s", sessions[0].id, sessions[1].id)
	}
	if sessions[0].declines != 1 || sessions[0].improvements != 0 {
		t.Errorf("s2 counts = %+v", sessions[0])
	}

	s1 := sessions[1]
	if len(s1.changes) != 2 {
		t.Fatalf("s1 has %d changes, want 2", len(s1.changes))
	}
	if !s1.start.Equal(base) {
		t.Errorf("s1 start = %v, want earliest change time", s1.start)
	}
	// First ratings (old level 0) are not improvements.
	if s1.improvements != 1 {
		t.Errorf("s1 improvements = %d, want 1", s1.improvements)
	}
}

func TestGroupSessionsEmpty(t *testing.T) {
	if got := groupSessions(nil); len(got) != 0 {
		t.Errorf("got %d sessions for empty history", len(got))
	}
}
