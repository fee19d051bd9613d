package client

import (
	"fmt"
	"net/http"
)

// TransportError reports an export request that could not be completed
// (connection refused, DNS failure, timeout) or was rejected by the
// server with a non-success HTTP status.
type TransportError struct {
	// StatusCode is the HTTP status of the rejected response, or zero
	// when no response was received at all.
	StatusCode int

	// Err is the underlying transport failure, nil for status rejections.
	Err error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("export request failed: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that was not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "invalid JSON in response body: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
