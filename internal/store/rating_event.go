package store

import (
	"context"
	"fmt"

	"github.com/abhisek/physiz/ent"
	"github.com/abhisek/physiz/ent/ratingevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendRating(ctx context.Context, data RatingEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RatingEvent.Create().
		SetSequence(seqNum).
		SetKey(data.Key).
		SetTopicID(data.TopicID).
		SetOldLevel(data.OldLevel).
		SetNewLevel(data.NewLevel)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save rating event: %w", err)
	}
	return nil
}

func (r *eventRepo) RatingCount(ctx context.Context, key string) (int, error) {
	n, err := r.client.RatingEvent.Query().
		Where(ratingevent.Key(key)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count rating events: %w", err)
	}
	return n, nil
}
