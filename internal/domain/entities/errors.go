package entities

import "errors"

// Domain errors
var (
	// ErrRecordNotFound is returned by repositories when a lookup by
	// identifier or natural key matches nothing.
	ErrRecordNotFound = errors.New("record not found")

	// ErrEmptyTranscript rejects ingest requests carrying no turns.
	ErrEmptyTranscript = errors.New("transcript has no turns")
)
