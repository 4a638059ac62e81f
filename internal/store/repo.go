package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	Purpose  string    // LLM events only; empty matches all
	Category string    // practice events only; empty matches all
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
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

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM events grouped by purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// PracticeEventData summarizes one generated practice set.
type PracticeEventData struct {
	Category     string
	Difficulty   string
	QuestionType string
	Requested    int
	Live         int
	Fallback     int
	Answered     int
	Correct      int
}

// PracticeEvent is a stored practice set summary.
type PracticeEvent struct {
	ID        string
	Timestamp time.Time
	PracticeEventData
}

// EventRepo provides append and query access to events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// AppendPractice records a practice set and returns its ID.
	AppendPractice(ctx context.Context, data PracticeEventData) (string, error)

	// QueryPractice returns practice events, newest first.
	QueryPractice(ctx context.Context, opts QueryOpts) ([]PracticeEvent, error)
}
