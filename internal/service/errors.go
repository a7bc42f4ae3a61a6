package service

import (
	"fmt"
	"regexp"
)

// ValidationError reports rejected input. It is returned before any state
// change happens, so no partial mutation ever results from a rejected call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ErrNotLoggedIn rejects mutations that need a logged-in user.
var ErrNotLoggedIn = &ValidationError{Field: "user", Reason: "login required"}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
