package store

import (
	"context"
	"time"

	"github.com/abhisek/physiz/internal/confidence"
)

// snapshotKeep is how many snapshots to retain per learner key.
const snapshotKeep = 10

// Snapshot is one point-in-time capture of a learner's confidence state.
type Snapshot struct {
	ID        int
	Key       string
	Sequence  int64
	Timestamp time.Time
	State     confidence.State
}

// SnapshotRepo manages per-learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot for a learner key and prunes old rows
	// beyond the retention limit.
	Save(ctx context.Context, key string, state confidence.State) error

	// Latest returns the most recent snapshot for a key, or nil if none
	// exist.
	Latest(ctx context.Context, key string) (*Snapshot, error)
}

// RatingEventData captures one effective confidence change.
type RatingEventData struct {
	Key       string
	TopicID   string
	OldLevel  int
	NewLevel  int
	SessionID string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is the read model of one logged LLM API call.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMPurposeUsage aggregates LLM calls by purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls by model id, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to domain events plus the read
// queries behind the llm inspection commands.
type EventRepo interface {
	// AppendRating records one confidence change in the audit log.
	AppendRating(ctx context.Context, data RatingEventData) error

	// RatingCount returns how many rating events exist for a learner key.
	RatingCount(ctx context.Context, key string) (int, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	// limit == 0 means unlimited.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model id.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
