package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RatingEvent records one effective confidence change for audit and
// analytics. Level 0 means unrated, so a toggle-to-clear shows up as
// new_level = 0.
type RatingEvent struct {
	ent.Schema
}

func (RatingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RatingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Comment("Learner storage key"),
		field.String("topic_id").NotEmpty(),
		field.Int("old_level").
			Range(0, 5),
		field.Int("new_level").
			Range(0, 5),
		field.String("session_id").Optional(),
	}
}

func (RatingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
		index.Fields("topic_id"),
		index.Fields("session_id"),
	}
}
