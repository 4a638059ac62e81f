package practice

import (
	"fmt"
	"strings"
)

// maxPromptLen bounds prompts so they fit on one screen.
const maxPromptLen = 500

// StructuralValidator enforces the Question invariants: a prompt and an
// answer, 3–4 distinct distractors that never repeat the answer, and
// exactly one blank marker in completion prompts.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q Question) *ValidationError {
	if !q.Type.Valid() {
		return v.fail("type must be VOCAB or COMPLETION, got %q", q.Type)
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return v.fail("prompt is empty")
	}
	if len(q.Prompt) > maxPromptLen {
		return v.fail("prompt exceeds %d characters", maxPromptLen)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return v.fail("answer is empty")
	}
	if n := len(q.Distractors); n < MinDistractors || n > MaxDistractors {
		return v.fail("need %d-%d distractors, got %d", MinDistractors, MaxDistractors, n)
	}

	answer := normalize(q.Answer)
	seen := make(map[string]struct{}, len(q.Distractors))
	for _, d := range q.Distractors {
		key := normalize(d)
		if key == "" {
			return v.fail("blank distractor")
		}
		if key == answer {
			return v.fail("distractor %q repeats the answer", d)
		}
		if _, dup := seen[key]; dup {
			return v.fail("option %q appears more than once", d)
		}
		seen[key] = struct{}{}
	}

	markers := strings.Count(q.Prompt, BlankMarker)
	switch q.Type {
	case TypeCompletion:
		if markers != 1 {
			return v.fail("completion prompt must contain one blank, found %d", markers)
		}
	case TypeVocab:
		if markers != 0 {
			return v.fail("vocabulary prompt must not contain a blank")
		}
	}
	return nil
}

func (v *StructuralValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}
