package practice

import "fmt"

// Validator checks an assembled question before it is handed out.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages and logging,
	// e.g. "structural".
	Name() string

	// Validate returns nil if q passes.
	Validate(q Question) *ValidationError
}

// ValidationError describes why a question was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// runValidators returns the first failure, or nil.
func runValidators(vs []Validator, q Question) *ValidationError {
	for _, v := range vs {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}
