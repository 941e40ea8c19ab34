package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent lookup failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates the dictionary has no entries for the term (HTTP 404).
	ErrNotFound = errors.New("no definitions found")

	// ErrUpstream indicates the dictionary API answered with an unexpected status.
	ErrUpstream = errors.New("dictionary api error")

	// ErrDecode indicates the dictionary API response could not be decoded.
	ErrDecode = errors.New("malformed dictionary response")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// Pronunciation Errors.

	// ErrNoPlayer indicates no audio player is available on this system.
	ErrNoPlayer = errors.New("no audio player available")

	// ErrPlaybackFailed indicates the audio player could not play the resource.
	ErrPlaybackFailed = errors.New("playback failed")
)

// StatusError reports a non-2xx, non-404 response from the dictionary API.
// It matches ErrUpstream with errors.Is.
type StatusError struct {
	// Code is the HTTP status code.
	Code int
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", ErrUpstream, e.Code)
}

// Unwrap returns ErrUpstream.
func (e *StatusError) Unwrap() error {
	return ErrUpstream
}

// IsNotFound reports whether err means the term has no definitions.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
