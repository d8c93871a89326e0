// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/physiz/ent/ratingevent"
)

// RatingEvent is the model entity for the RatingEvent schema.
type RatingEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Learner storage key
	Key string `json:"key,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// OldLevel holds the value of the "old_level" field.
	OldLevel int `json:"old_level,omitempty"`
	// NewLevel holds the value of the "new_level" field.
	NewLevel int `json:"new_level,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RatingEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ratingevent.FieldID, ratingevent.FieldSequence, ratingevent.FieldOldLevel, ratingevent.FieldNewLevel:
			values[i] = new(sql.NullInt64)
		case ratingevent.FieldKey, ratingevent.FieldTopicID, ratingevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case ratingevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RatingEvent fields.
func (_m *RatingEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ratingevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ratingevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case ratingevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case ratingevent.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case ratingevent.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case ratingevent.FieldOldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field old_level", values[i])
			} else if value.Valid {
				_m.OldLevel = int(value.Int64)
			}
		case ratingevent.FieldNewLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_level", values[i])
			} else if value.Valid {
				_m.NewLevel = int(value.Int64)
			}
		case ratingevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RatingEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RatingEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RatingEvent.
// Note that you need to call RatingEvent.Unwrap() before calling this method if this RatingEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RatingEvent) Update() *RatingEventUpdateOne {
	return NewRatingEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RatingEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RatingEvent) Unwrap() *RatingEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RatingEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RatingEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RatingEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("old_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.OldLevel))
	builder.WriteString(", ")
	builder.WriteString("new_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewLevel))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// RatingEvents is a parsable slice of RatingEvent.
type RatingEvents []*RatingEvent
