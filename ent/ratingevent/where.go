// Code generated by ent, DO NOT EDIT.

package ratingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/physiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldKey, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldTopicID, v))
}

// OldLevel applies equality check predicate on the "old_level" field. It's identical to OldLevelEQ.
func OldLevel(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldOldLevel, v))
}

// NewLevel applies equality check predicate on the "new_level" field. It's identical to NewLevelEQ.
func NewLevel(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldNewLevel, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldTimestamp, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldContainsFold(FieldKey, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldContainsFold(FieldTopicID, v))
}

// OldLevelEQ applies the EQ predicate on the "old_level" field.
func OldLevelEQ(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldOldLevel, v))
}

// OldLevelNEQ applies the NEQ predicate on the "old_level" field.
func OldLevelNEQ(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldOldLevel, v))
}

// OldLevelIn applies the In predicate on the "old_level" field.
func OldLevelIn(vs ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldOldLevel, vs...))
}

// OldLevelNotIn applies the NotIn predicate on the "old_level" field.
func OldLevelNotIn(vs ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldOldLevel, vs...))
}

// OldLevelGT applies the GT predicate on the "old_level" field.
func OldLevelGT(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldOldLevel, v))
}

// OldLevelGTE applies the GTE predicate on the "old_level" field.
func OldLevelGTE(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldOldLevel, v))
}

// OldLevelLT applies the LT predicate on the "old_level" field.
func OldLevelLT(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldOldLevel, v))
}

// OldLevelLTE applies the LTE predicate on the "old_level" field.
func OldLevelLTE(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldOldLevel, v))
}

// NewLevelEQ applies the EQ predicate on the "new_level" field.
func NewLevelEQ(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldNewLevel, v))
}

// NewLevelNEQ applies the NEQ predicate on the "new_level" field.
func NewLevelNEQ(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldNewLevel, v))
}

// NewLevelIn applies the In predicate on the "new_level" field.
func NewLevelIn(vs ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldNewLevel, vs...))
}

// NewLevelNotIn applies the NotIn predicate on the "new_level" field.
func NewLevelNotIn(vs ...int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldNewLevel, vs...))
}

// NewLevelGT applies the GT predicate on the "new_level" field.
func NewLevelGT(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldNewLevel, v))
}

// NewLevelGTE applies the GTE predicate on the "new_level" field.
func NewLevelGTE(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldNewLevel, v))
}

// NewLevelLT applies the LT predicate on the "new_level" field.
func NewLevelLT(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldNewLevel, v))
}

// NewLevelLTE applies the LTE predicate on the "new_level" field.
func NewLevelLTE(v int) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldNewLevel, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RatingEvent {
	return predicate.RatingEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RatingEvent) predicate.RatingEvent {
	return predicate.RatingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RatingEvent) predicate.RatingEvent {
	return predicate.RatingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RatingEvent) predicate.RatingEvent {
	return predicate.RatingEvent(sql.NotPredicates(p))
}
