package llm

import "errors"

var (
	// ErrNotConfigured indicates no backend endpoint, key or model is set.
	ErrNotConfigured = errors.New("llm backend not configured")

	// ErrBackendUnavailable indicates the backend could not be reached.
	ErrBackendUnavailable = errors.New("llm backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrUpstreamStatus indicates the backend answered with a non-success status.
	ErrUpstreamStatus = errors.New("llm backend returned an error status")

	// ErrInvalidOutput indicates the response could not be parsed into the
	// expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")
)
