package flights

import "errors"

var (
	// ErrAuthFailed indicates the provider rejected or could not issue a token.
	ErrAuthFailed = errors.New("flight provider authentication failed")

	// ErrSearchFailed indicates a network error or non-success status from
	// the search endpoint.
	ErrSearchFailed = errors.New("flight provider search failed")

	// ErrMalformedResponse indicates the provider answered with an
	// unexpected payload shape.
	ErrMalformedResponse = errors.New("malformed flight provider response")
)
