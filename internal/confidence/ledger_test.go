package confidence

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSetAndGetConfidence(t *testing.T) {
	l := NewLedger()

	l.SetConfidence("3.1.1a", 4)
	if level, ok := l.Confidence("3.1.1a"); !ok || level != 4 {
		t.Errorf("Confidence = %d, %v", level, ok)
	}

	l.SetConfidence("3.1.1a", 2)
	if level, _ := l.Confidence("3.1.1a"); level != 2 {
		t.Errorf("overwrite: level = %d, want 2", level)
	}

	if _, ok := l.Confidence("unrated"); ok {
		t.Error("unrated topic reported as rated")
	}
}

func TestToggleToNull(t *testing.T) {
	l := NewLedger()

	// Same level twice restores the pre-call state.
	l.SetConfidence("t", 3)
	l.SetConfidence("t", 3)
	if _, ok := l.Confidence("t"); ok {
		t.Error("toggling same level should clear the rating")
	}

	// Toggle law from any starting state.
	l.SetConfidence("t", 5)
	l.SetConfidence("t", 5)
	l.SetConfidence("t", 5)
	if level, ok := l.Confidence("t"); !ok || level != 5 {
		t.Errorf("after odd number of toggles: %d, %v", level, ok)
	}
}

func TestOutOfRangeLevelIgnored(t *testing.T) {
	l := NewLedger()
	l.SetConfidence("t", 0)
	l.SetConfidence("t", 6)
	l.SetConfidence("t", -1)
	if l.RatedCount() != 0 {
		t.Errorf("RatedCount = %d, want 0", l.RatedCount())
	}
	if len(l.History()) != 0 {
		t.Error("invalid levels must not append history")
	}
}

func TestHistoryRecordsEffectiveChanges(t *testing.T) {
	base := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	l := NewLedger(WithClock(fixedClock(base)))

	l.SetConfidence("t", 3) // 0 -> 3
	l.SetConfidence("t", 3) // 3 -> 0 (toggle)
	l.SetConfidence("t", 4) // 0 -> 4

	h := l.History()
	if len(h) != 3 {
		t.Fatalf("history len = %d, want 3", len(h))
	}
	// Newest first.
	if h[0].OldLevel != 0 || h[0].NewLevel != 4 {
		t.Errorf("newest change = %+v", h[0])
	}
	if h[1].OldLevel != 3 || h[1].NewLevel != 0 {
		t.Errorf("toggle change = %+v", h[1])
	}
	if h[2].OldLevel != 0 || h[2].NewLevel != 3 {
		t.Errorf("oldest change = %+v", h[2])
	}
}

func TestHistoryBounded(t *testing.T) {
	ts := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	l := NewLedger(WithClock(func() time.Time {
		ts = ts.Add(time.Minute)
		return ts
	}))

	// Alternate levels so every call is an effective change.
	for i := 0; i < MaxHistory+40; i++ {
		topic := fmt.Sprintf("t%d", i%7)
		l.SetConfidence(topic, 1+i%5)
	}

	h := l.History()
	if len(h) != MaxHistory {
		t.Fatalf("history len = %d, want %d", len(h), MaxHistory)
	}
	// Newest-first ordering preserved after truncation.
	for i := 1; i < len(h); i++ {
		if h[i].Timestamp.After(h[i-1].Timestamp) {
			t.Fatalf("history out of order at %d", i)
		}
	}
}

func TestSessionID(t *testing.T) {
	tests := []struct {
		a, b time.Time
		same bool
	}{
		{
			time.Date(2026, 3, 10, 14, 0, 1, 0, time.UTC),
			time.Date(2026, 3, 10, 14, 29, 59, 0, time.UTC),
			true,
		},
		{
			// One second apart but straddling a bucket boundary:
			// different sessions, by design of the heuristic.
			time.Date(2026, 3, 10, 14, 29, 59, 0, time.UTC),
			time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
			false,
		},
		{
			time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
			false,
		},
	}
	for _, tt := range tests {
		same := SessionID(tt.a) == SessionID(tt.b)
		if same != tt.same {
			t.Errorf("SessionID(%v) vs SessionID(%v): same=%v, want %v", tt.a, tt.b, same, tt.same)
		}
	}
}

type failingPersister struct{ calls int }

func (p *failingPersister) SaveLedger(_ context.Context, _ State) error {
	p.calls++
	return errors.New("disk full")
}

func TestSaveFailureKeepsState(t *testing.T) {
	p := &failingPersister{}
	l := NewLedger(WithPersister(p))
	l.warnf = func(string, ...any) {}

	l.SetConfidence("t1", 4)
	l.SetConfidence("t2", 2)

	if p.calls != 2 {
		t.Errorf("persister calls = %d, want 2", p.calls)
	}
	if level, ok := l.Confidence("t1"); !ok || level != 4 {
		t.Errorf("state lost after save failure: %d, %v", level, ok)
	}
	if len(l.History()) != 2 {
		t.Errorf("history lost after save failure: %d", len(l.History()))
	}
}

type recordingPersister struct{ last *State }

func (p *recordingPersister) SaveLedger(_ context.Context, s State) error {
	p.last = &s
	return nil
}

func TestPersistedState(t *testing.T) {
	p := &recordingPersister{}
	l := NewLedger(WithPersister(p), WithUser("student-42"))

	l.SetConfidence("t", 5)

	if p.last == nil {
		t.Fatal("persister not called")
	}
	if p.last.ConfidenceLevels["t"] != 5 || p.last.User != "student-42" {
		t.Errorf("persisted state = %+v", p.last)
	}
	if p.last.Version != StateVersion {
		t.Errorf("version = %q", p.last.Version)
	}
}

func TestRestoreDropsInvalidLevels(t *testing.T) {
	l := NewLedger()
	l.Restore(State{ConfidenceLevels: map[string]int{
		"good": 3,
		"zero": 0,
		"high": 9,
	}})
	if l.RatedCount() != 1 {
		t.Errorf("RatedCount = %d, want 1", l.RatedCount())
	}
	if level, ok := l.Confidence("good"); !ok || level != 3 {
		t.Errorf("good level = %d, %v", level, ok)
	}
}

func TestRecorderSeesEffectiveChanges(t *testing.T) {
	var seen []Change
	l := NewLedger(WithRecorder(func(c Change) { seen = append(seen, c) }))

	l.SetConfidence("t", 3)
	l.SetConfidence("t", 3) // toggle to null
	l.SetConfidence("t", 9) // ignored, out of range

	if len(seen) != 2 {
		t.Fatalf("recorder called %d times, want 2", len(seen))
	}
	if seen[0].OldLevel != 0 || seen[0].NewLevel != 3 {
		t.Errorf("first change = %+v", seen[0])
	}
	if seen[1].OldLevel != 3 || seen[1].NewLevel != 0 {
		t.Errorf("toggle change = %+v", seen[1])
	}
}
