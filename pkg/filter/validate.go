package filter

import (
	"fmt"
	"regexp"
)

// ValidationError beschreibt ein ungültiges Such-Pattern
type ValidationError struct {
	Message string
	Term    string // Das fehlerhafte Pattern
	Cause   error
}

func (e ValidationError) Error() string {
	msg := e.Message
	if e.Term != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Term)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e ValidationError) Unwrap() error {
	return e.Cause
}

// compile kompiliert das Pattern und verpackt Syntaxfehler als ValidationError
func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, ValidationError{
			Message: "Invalid regex pattern",
			Term:    pattern,
			Cause:   err,
		}
	}
	return re, nil
}
