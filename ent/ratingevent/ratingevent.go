// Code generated by ent, DO NOT EDIT.

package ratingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ratingevent type in the database.
	Label = "rating_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldOldLevel holds the string denoting the old_level field in the database.
	FieldOldLevel = "old_level"
	// FieldNewLevel holds the string denoting the new_level field in the database.
	FieldNewLevel = "new_level"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the ratingevent in the database.
	Table = "rating_events"
)

// Columns holds all SQL columns for ratingevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldKey,
	FieldTopicID,
	FieldOldLevel,
	FieldNewLevel,
	FieldSessionID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// KeyValidator is a validator for the "key" field. It is called by the builders before save.
	KeyValidator func(string) error
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// OldLevelValidator is a validator for the "old_level" field. It is called by the builders before save.
	OldLevelValidator func(int) error
	// NewLevelValidator is a validator for the "new_level" field. It is called by the builders before save.
	NewLevelValidator func(int) error
)

// OrderOption defines the ordering options for the RatingEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByOldLevel orders the results by the old_level field.
func ByOldLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldLevel, opts...).ToFunc()
}

// ByNewLevel orders the results by the new_level field.
func ByNewLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewLevel, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
