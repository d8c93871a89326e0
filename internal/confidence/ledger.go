// Package confidence holds the per-topic confidence ratings, the bounded
// change history behind the analytics trends, and the portable backup
// format. The in-memory ledger is the source of truth between saves;
// persistence is best-effort and never blocks a rating change.
package confidence

import (
	"context"
	"fmt"
	"os"
	"time"
)

// MaxHistory bounds the change history; the oldest entries are evicted
// once it is exceeded.
const MaxHistory = 500

// MinLevel and MaxLevel bound the confidence scale.
const (
	MinLevel = 1
	MaxLevel = 5
)

// sessionWindow is the bucket width used to derive study-session ids.
// Two changes inside the same 30-minute window share a session. This is
// a coarse heuristic: changes a second apart can straddle a boundary.
const sessionWindow = 30 * time.Minute

// Change is one append-only history record of an effective rating
// change. Absent ratings are recorded as level 0.
type Change struct {
	TopicID   string    `json:"topicId"`
	OldLevel  int       `json:"oldLevel"`
	NewLevel  int       `json:"newLevel"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"studySession"`
}

// State is the serializable ledger snapshot handed to the persistence
// collaborator and embedded in backups.
type State struct {
	ConfidenceLevels map[string]int `json:"confidenceLevels"`
	History          []Change       `json:"history,omitempty"`
	LastUpdated      time.Time      `json:"lastUpdated"`
	Version          string         `json:"version"`
	User             string         `json:"user,omitempty"`
}

// StateVersion tags serialized ledger state and backups.
const StateVersion = "1.1"

// Persister saves ledger state. Failures degrade to in-memory-only
// operation; the ledger reports them but keeps accepting changes.
type Persister interface {
	SaveLedger(ctx context.Context, state State) error
}

// Ledger owns the confidence map and change history for one learner.
// Not safe for concurrent use; the app drives it from a single loop.
type Ledger struct {
	levels  map[string]int
	history []Change // newest first
	user    string

	persister Persister
	recorder  func(Change)
	now       func() time.Time
	warnf     func(format string, args ...any)
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithPersister attaches a persistence collaborator.
func WithPersister(p Persister) Option {
	return func(l *Ledger) { l.persister = p }
}

// WithUser tags persisted state with the learner identifier.
func WithUser(user string) Option {
	return func(l *Ledger) { l.user = user }
}

// WithRecorder registers a callback invoked once per effective change,
// after it is appended to the history. Used to mirror changes into the
// audit event log.
func WithRecorder(fn func(Change)) Option {
	return func(l *Ledger) { l.recorder = fn }
}

// WithClock overrides the wall clock (tests).
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// NewLedger creates an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		levels: make(map[string]int),
		now:    time.Now,
		warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format, args...)
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Restore replaces the ledger contents from persisted state. Nil maps in
// the state are treated as empty.
func (l *Ledger) Restore(state State) {
	l.levels = make(map[string]int, len(state.ConfidenceLevels))
	for id, level := range state.ConfidenceLevels {
		if level >= MinLevel && level <= MaxLevel {
			l.levels[id] = level
		}
	}
	l.history = append([]Change(nil), state.History...)
	if len(l.history) > MaxHistory {
		l.history = l.history[:MaxHistory]
	}
}

// Confidence returns the rating for a topic; ok is false when unrated.
func (l *Ledger) Confidence(topicID string) (level int, ok bool) {
	level, ok = l.levels[topicID]
	return level, ok
}

// Levels returns a copy of the full confidence map.
func (l *Ledger) Levels() map[string]int {
	out := make(map[string]int, len(l.levels))
	for id, level := range l.levels {
		out[id] = level
	}
	return out
}

// RatedCount returns how many topics currently hold a rating.
func (l *Ledger) RatedCount() int {
	return len(l.levels)
}

// SetConfidence records a rating for a topic. Rating a topic at its
// current level clears it (toggle-to-null); any other level overwrites.
// Levels outside 1..5 are ignored. Every effective change appends to the
// history and triggers a best-effort save.
func (l *Ledger) SetConfidence(topicID string, level int) {
	if level < MinLevel || level > MaxLevel {
		return
	}

	oldLevel := l.levels[topicID] // 0 when absent

	newLevel := level
	if oldLevel == level {
		newLevel = 0
	}

	if newLevel == 0 {
		delete(l.levels, topicID)
	} else {
		l.levels[topicID] = newLevel
	}

	if oldLevel != newLevel {
		l.appendChange(topicID, oldLevel, newLevel)
	}

	l.save()
}

// Clear removes every rating and the history.
func (l *Ledger) Clear() {
	l.levels = make(map[string]int)
	l.history = nil
	l.save()
}

// History returns the change history, newest first.
func (l *Ledger) History() []Change {
	return append([]Change(nil), l.history...)
}

// State exports the serializable snapshot of the ledger.
func (l *Ledger) State() State {
	return State{
		ConfidenceLevels: l.Levels(),
		History:          l.History(),
		LastUpdated:      l.now(),
		Version:          StateVersion,
		User:             l.user,
	}
}

func (l *Ledger) appendChange(topicID string, oldLevel, newLevel int) {
	ts := l.now()
	change := Change{
		TopicID:   topicID,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		Timestamp: ts,
		SessionID: SessionID(ts),
	}
	l.history = append([]Change{change}, l.history...)
	if len(l.history) > MaxHistory {
		l.history = l.history[:MaxHistory]
	}
	if l.recorder != nil {
		l.recorder(change)
	}
}

// save pushes the current state to the persister. A failure is reported
// once and otherwise ignored: the in-memory ledger stays authoritative
// and further rating changes keep working.
func (l *Ledger) save() {
	if l.persister == nil {
		return
	}
	if err := l.persister.SaveLedger(context.Background(), l.State()); err != nil {
		l.warnf("warning: failed to save confidence data: %v\n", err)
	}
}

// SessionID buckets a timestamp into a fixed 30-minute window and
// returns the window start in RFC 3339 form.
func SessionID(ts time.Time) string {
	return ts.UTC().Truncate(sessionWindow).Format(time.RFC3339)
}
