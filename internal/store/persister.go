package store

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/physiz/internal/confidence"
)

// LedgerPersister adapts the snapshot repository to the confidence
// ledger's persistence hook. Each save writes a fresh snapshot under the
// learner's storage key.
type LedgerPersister struct {
	snapshots SnapshotRepo
	key       string
}

// NewLedgerPersister builds a persister bound to one learner key.
func NewLedgerPersister(s *Store, key string) *LedgerPersister {
	return &LedgerPersister{snapshots: s.SnapshotRepo(), key: key}
}

// SaveLedger implements confidence.Persister.
func (p *LedgerPersister) SaveLedger(ctx context.Context, state confidence.State) error {
	return p.snapshots.Save(ctx, p.key, state)
}

// LoadLedger restores the newest persisted state for a learner key.
// A missing snapshot returns nil. A snapshot that cannot be read or
// decoded is treated as absent with a warning: starting fresh beats
// refusing to start.
func LoadLedger(ctx context.Context, s *Store, key string) *confidence.State {
	snap, err := s.SnapshotRepo().Latest(ctx, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: discarding unreadable saved state: %v\n", err)
		return nil
	}
	if snap == nil {
		return nil
	}
	return &snap.State
}
