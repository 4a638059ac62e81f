package practice

import "fmt"

// InvalidArgumentError reports a request the caller should not have made.
// It is the only error GeneratePractice returns.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// InsufficientDataError means a candidate could not be turned into a
// question. The orchestrator moves on to the next candidate.
type InsufficientDataError struct {
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return "insufficient data: " + e.Reason
}
