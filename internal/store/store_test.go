package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/physiz/internal/confidence"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testState(levels map[string]int, ts time.Time) confidence.State {
	return confidence.State{
		ConfidenceLevels: levels,
		LastUpdated:      ts,
		Version:          confidence.StateVersion,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "physiz_student_a")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	state := testState(map[string]int{"3.4.1.5a": 4, "3.6.1.2a": 2}, now)
	if err := repo.Save(ctx, "physiz_student_a", state); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "physiz_student_a")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.State.ConfidenceLevels["3.4.1.5a"] != 4 {
		t.Errorf("restored levels = %v", snap.State.ConfidenceLevels)
	}
	if snap.State.Version != confidence.StateVersion {
		t.Errorf("version = %q", snap.State.Version)
	}
}

func TestSnapshotKeysAreIsolated(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.Save(ctx, "physiz_student_a", testState(map[string]int{"t": 1}, now)); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if err := repo.Save(ctx, "physiz_student_b", testState(map[string]int{"t": 5}, now)); err != nil {
		t.Fatalf("save b: %v", err)
	}

	snap, err := repo.Latest(ctx, "physiz_student_a")
	if err != nil {
		t.Fatalf("latest a: %v", err)
	}
	if snap.State.ConfidenceLevels["t"] != 1 {
		t.Errorf("student a sees level %d", snap.State.ConfidenceLevels["t"])
	}

	if snap, _ := repo.Latest(ctx, "physiz_student_missing"); snap != nil {
		t.Error("unknown key returned a snapshot")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		state := testState(map[string]int{"t": i + 1}, base.Add(time.Duration(i)*time.Minute))
		if err := repo.Save(ctx, "k", state); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx, "k")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.State.ConfidenceLevels["t"] != 3 {
		t.Errorf("level = %d, want 3", snap.State.ConfidenceLevels["t"])
	}
}

func TestSnapshotRetention(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < snapshotKeep+5; i++ {
		state := testState(map[string]int{"t": 1}, base.Add(time.Duration(i)*time.Minute))
		if err := repo.Save(ctx, "k", state); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != snapshotKeep {
		t.Errorf("remaining snapshots = %d, want %d", count, snapshotKeep)
	}
}

func TestRatingEvents(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for i, data := range []RatingEventData{
		{Key: "k", TopicID: "3.4.1.5a", OldLevel: 0, NewLevel: 3, SessionID: "2026-03-10T14:00:00Z"},
		{Key: "k", TopicID: "3.4.1.5a", OldLevel: 3, NewLevel: 0, SessionID: "2026-03-10T14:00:00Z"},
		{Key: "other", TopicID: "3.6.1.2a", OldLevel: 0, NewLevel: 5},
	} {
		if err := events.AppendRating(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	n, err := events.RatingCount(ctx, "k")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("rating count = %d, want 2", n)
	}
}

func TestLedgerPersisterRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := NewLedgerPersister(s, "physiz_student_rt")
	ledger := confidence.NewLedger(confidence.WithPersister(p), confidence.WithUser("rt"))
	ledger.SetConfidence("3.1.1a", 4)
	ledger.SetConfidence("3.1.2a", 2)

	state := LoadLedger(ctx, s, "physiz_student_rt")
	if state == nil {
		t.Fatal("no state restored")
	}

	restored := confidence.NewLedger()
	restored.Restore(*state)
	if level, ok := restored.Confidence("3.1.1a"); !ok || level != 4 {
		t.Errorf("restored level = %d, %v", level, ok)
	}
	if len(restored.History()) != 2 {
		t.Errorf("restored history len = %d, want 2", len(restored.History()))
	}

	if state := LoadLedger(ctx, s, "physiz_student_none"); state != nil {
		t.Error("missing key restored state")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq[%d] = %d, not increasing past %d", i, seq, prev)
		}
		prev = seq
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "rating_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
