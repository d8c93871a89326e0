package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/physiz/ent"
	"github.com/abhisek/physiz/ent/snapshot"
	"github.com/abhisek/physiz/internal/confidence"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, key string, state confidence.State) error {
	dataMap, err := stateToMap(state)
	if err != nil {
		return fmt.Errorf("marshal snapshot state: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.Snapshot.Create().
		SetKey(key).
		SetSequence(seqNum).
		SetData(dataMap)
	if !state.LastUpdated.IsZero() {
		builder = builder.SetTimestamp(state.LastUpdated)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return r.prune(ctx, key, snapshotKeep)
}

func (r *snapshotRepo) Latest(ctx context.Context, key string) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Where(snapshot.Key(key)).
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entSnapshotToSnapshot(s)
}

// prune deletes all but the keep most recent snapshots for a key.
func (r *snapshotRepo) prune(ctx context.Context, key string, keep int) error {
	old, err := r.client.Snapshot.Query().
		Where(snapshot.Key(key)).
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(old) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := old[0].Sequence
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.Key(key), snapshot.SequenceLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// stateToMap converts a confidence state to map[string]any for ent JSON
// storage.
func stateToMap(state confidence.State) (map[string]any, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToSnapshot converts an ent Snapshot to a store Snapshot.
func entSnapshotToSnapshot(s *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var state confidence.State
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot state: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Key:       s.Key,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		State:     state,
	}, nil
}
