package pipeline

import "errors"

var (
	// ErrNilJob indicates New was called without a job.
	ErrNilJob = errors.New("pipeline: nil job")

	// ErrUnknownPair indicates a lookup of a pair the report does not hold.
	ErrUnknownPair = errors.New("pipeline: unknown pair")
)
