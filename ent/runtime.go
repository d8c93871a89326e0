// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/physiz/ent/llmrequestevent"
	"github.com/abhisek/physiz/ent/ratingevent"
	"github.com/abhisek/physiz/ent/schema"
	"github.com/abhisek/physiz/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	ratingeventMixin := schema.RatingEvent{}.Mixin()
	ratingeventMixinFields0 := ratingeventMixin[0].Fields()
	_ = ratingeventMixinFields0
	ratingeventFields := schema.RatingEvent{}.Fields()
	_ = ratingeventFields
	// ratingeventDescTimestamp is the schema descriptor for timestamp field.
	ratingeventDescTimestamp := ratingeventMixinFields0[1].Descriptor()
	// ratingevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	ratingevent.DefaultTimestamp = ratingeventDescTimestamp.Default.(func() time.Time)
	// ratingeventDescKey is the schema descriptor for key field.
	ratingeventDescKey := ratingeventFields[0].Descriptor()
	// ratingevent.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	ratingevent.KeyValidator = ratingeventDescKey.Validators[0].(func(string) error)
	// ratingeventDescTopicID is the schema descriptor for topic_id field.
	ratingeventDescTopicID := ratingeventFields[1].Descriptor()
	// ratingevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	ratingevent.TopicIDValidator = ratingeventDescTopicID.Validators[0].(func(string) error)
	// ratingeventDescOldLevel is the schema descriptor for old_level field.
	ratingeventDescOldLevel := ratingeventFields[2].Descriptor()
	// ratingevent.OldLevelValidator is a validator for the "old_level" field. It is called by the builders before save.
	ratingevent.OldLevelValidator = ratingeventDescOldLevel.Validators[0].(func(int) error)
	// ratingeventDescNewLevel is the schema descriptor for new_level field.
	ratingeventDescNewLevel := ratingeventFields[3].Descriptor()
	// ratingevent.NewLevelValidator is a validator for the "new_level" field. It is called by the builders before save.
	ratingevent.NewLevelValidator = ratingeventDescNewLevel.Validators[0].(func(int) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescKey is the schema descriptor for key field.
	snapshotDescKey := snapshotFields[0].Descriptor()
	// snapshot.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	snapshot.KeyValidator = snapshotDescKey.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
