package gol

import "errors"

var (
	// ErrMalformedInput is returned when the input is not a non-empty rectangular block of rows.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidWorkerCount is returned when a run is asked for fewer than one worker.
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	// ErrWorkerFailed is returned when any worker fails during a turn. The run is abandoned.
	ErrWorkerFailed = errors.New("worker failed")
)
