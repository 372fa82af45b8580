package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures aggregate learner progress at a point in time.
type SnapshotData struct {
	Version            int                `json:"version"`
	Difficulty         string             `json:"difficulty"`
	SentencesCompleted int                `json:"sentences_completed"`
	StageAccuracy      map[string]float64 `json:"stage_accuracy,omitempty"`
}

// Snapshot represents a point-in-time capture of learner progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID          string
	Action             string // "start" or "end"
	Difficulty         string
	SentencesCompleted int
	StagesPassed       int
	DurationSecs       int
}

// GradeEventData captures a single graded submission.
type GradeEventData struct {
	SessionID   string
	Stage       string
	Difficulty  string
	Sentence    string
	Work        string // submitted markup as JSON
	Correct     bool
	Feedback    string
	CorrectData string
	TimeMs      int
}

// GradeRecord is a persisted grade event returned by queries.
type GradeRecord struct {
	Sequence    int64
	Timestamp   time.Time
	SessionID   string
	Stage       string
	Difficulty  string
	Sentence    string
	Correct     bool
	Feedback    string
	CorrectData string
	TimeMs      int
}

// StageStats aggregates grading outcomes for a single stage.
type StageStats struct {
	Stage    string
	Attempts int
	Correct  int
}

// Accuracy returns the fraction of correct attempts, or 0 with no attempts.
func (s StageStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
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
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a persisted LLM request event returned by queries.
type LLMRequestRecord struct {
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
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates token consumption for a grouping key.
type LLMUsage struct {
	Key          string // purpose or model, depending on the query
	Requests     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendGradeEvent records a graded submission.
	AppendGradeEvent(ctx context.Context, data GradeEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryGradeEvents returns grade events newest first.
	QueryGradeEvents(ctx context.Context, opts QueryOpts) ([]GradeRecord, error)

	// StageAccuracy aggregates grading outcomes per stage, all time.
	StageAccuracy(ctx context.Context) ([]StageStats, error)

	// QueryLLMEvents returns LLM request events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// GetLLMEvent returns a single LLM request event by sequence number.
	GetLLMEvent(ctx context.Context, sequence int64) (*LLMRequestRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
