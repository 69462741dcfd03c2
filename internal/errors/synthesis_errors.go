package errors

import (
	"errors"
	"fmt"
)

// SynthesisError represents a failure while generating a palette.
type SynthesisError struct {
	Palette string
	Reason  string
	Cause   error
}

func (e *SynthesisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to synthesize %s palette: %s: %v", e.Palette, e.Reason, e.Cause)
	}
	return fmt.Sprintf("failed to synthesize %s palette: %s", e.Palette, e.Reason)
}

func (e *SynthesisError) Unwrap() error {
	return e.Cause
}

// ConvergenceWarning reports a readability adjustment that hit its iteration
// cap before reaching the requested contrast. It is informational; the best
// color found is still used.
type ConvergenceWarning struct {
	Role       string
	Target     float64
	Achieved   float64
	Iterations int
}

func (e *ConvergenceWarning) Error() string {
	role := e.Role
	if role == "" {
		role = "color"
	}
	return fmt.Sprintf("%s did not reach contrast %.2f after %d iterations (best %.2f)", role, e.Target, e.Iterations, e.Achieved)
}

// ShareError represents a failure to publish a theme.
type ShareError struct {
	Target     string
	Cause      error
	Suggestion string
}

func (e *ShareError) Error() string {
	return fmt.Sprintf("failed to share theme to %s: %v", e.Target, e.Cause)
}

func (e *ShareError) Unwrap() error {
	return e.Cause
}

// GetSuggestion extracts a suggestion from an error chain if present.
func GetSuggestion(err error) string {
	var roleErr *UnknownRoleError
	if errors.As(err, &roleErr) && len(roleErr.Suggestions) > 0 {
		return "did you mean " + roleErr.Suggestions[0] + "?"
	}
	var schemeErr *UnknownSchemeError
	if errors.As(err, &schemeErr) && len(schemeErr.Suggestions) > 0 {
		return "did you mean " + schemeErr.Suggestions[0] + "?"
	}
	var shareErr *ShareError
	if errors.As(err, &shareErr) && shareErr.Suggestion != "" {
		return shareErr.Suggestion
	}
	return ""
}

// IsConvergenceWarning reports whether err is, or wraps, a ConvergenceWarning.
func IsConvergenceWarning(err error) bool {
	var warn *ConvergenceWarning
	return errors.As(err, &warn)
}
