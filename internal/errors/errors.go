package errors

import (
	"fmt"
	"strings"
)

// FormatError reports a color string that is not a valid hex color.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid color %q", e.Input)
}

// UnknownRoleError indicates a role key that matches no vocabulary.
type UnknownRoleError struct {
	Role        string
	Suggestions []string
}

func (e *UnknownRoleError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown color role %q (did you mean %s?)", e.Role, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("unknown color role %q", e.Role)
}

// UnknownSchemeError indicates a scheme name that is not in the catalogue.
type UnknownSchemeError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownSchemeError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown scheme %q (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("unknown scheme %q", e.Name)
}

// NotLockableError indicates a lock toggle on a role that cannot be locked.
type NotLockableError struct {
	Role string
}

func (e *NotLockableError) Error() string {
	return fmt.Sprintf("role %s cannot be locked", e.Role)
}

// ChannelFullError indicates an update was dropped due to a full buffer.
type ChannelFullError struct {
	Channel string
}

func (e *ChannelFullError) Error() string {
	return fmt.Sprintf("channel %s is full, update dropped", e.Channel)
}
