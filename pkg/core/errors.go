package core

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrAuth        = errors.New("authentication failed")
	ErrNotFound    = errors.New("node not found")
	ErrAmbiguous   = errors.New("ambiguous reference")
	ErrValidation  = errors.New("invalid input")
	ErrRateLimited = errors.New("rate limited")
	ErrClient      = errors.New("client error")
	ErrServer      = errors.New("server error")
)

// AmbiguousError reports a reference that matched more than one node. It
// carries every candidate id so the caller can disambiguate; resolution
// never picks one silently.
type AmbiguousError struct {
	Ref     string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous reference %q: %d matches (%s)",
		e.Ref, len(e.Matches), strings.Join(e.Matches, ", "))
}

func (e *AmbiguousError) Unwrap() error { return ErrAmbiguous }

// StatusError carries a non-success response from the service. It unwraps to
// the taxonomy sentinel for its status class, so errors.Is sees ErrAuth,
// ErrNotFound, ErrRateLimited, ErrClient or ErrServer as appropriate.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("service returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	switch {
	case e.StatusCode == 401:
		return ErrAuth
	case e.StatusCode == 404:
		return ErrNotFound
	case e.StatusCode == 429:
		return ErrRateLimited
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return ErrClient
	case e.StatusCode >= 500:
		return ErrServer
	}
	return nil
}
