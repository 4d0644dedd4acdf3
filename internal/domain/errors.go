package domain

import "errors"

var (
	// ErrVideoNotFound is returned when the referenced video is absent from the store.
	ErrVideoNotFound = errors.New("video not found")
	// ErrQuestionNotFound is returned when a question ID does not resolve to a stored item.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrNoContent indicates the transcript or chunk source returned nothing usable.
	// Callers report zero generated items; this is never fatal.
	ErrNoContent = errors.New("no transcript content available")
	// ErrMalformedInput indicates a request is structurally invalid (missing
	// answer, unknown item variant). Surfaced immediately, never retried.
	ErrMalformedInput = errors.New("malformed input")
)
