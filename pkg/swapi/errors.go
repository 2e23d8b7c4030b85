package swapi

import (
	"fmt"
	"strings"
)

// RequestError reports a transport failure or a non-2xx response.
// StatusCode is zero when no response was received.
type RequestError struct {
	Character  string
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request %s returned status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ParseError reports a response body that could not be decoded into a character.
// Field names the missing key when the body was valid JSON but incomplete.
type ParseError struct {
	Character string
	URL       string
	Field     string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parse %s: missing field %q", e.URL, e.Field)
	}
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
