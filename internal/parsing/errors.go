package parsing

import "fmt"

// CollaboratorError represents a failure of the generative-text collaborator
// (transport error, timeout, or empty response). It is always recovered by
// the rule-based fallback and never surfaces to callers of the analyzer.
type CollaboratorError struct {
	Message string
	Cause   error
}

func (e *CollaboratorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("collaborator unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("collaborator unavailable: %s", e.Message)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Cause
}

// ParseError represents a response-shape mismatch when decoding the
// collaborator's structured output.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
