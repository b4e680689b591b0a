package ghclient

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by errors.Is for a profile lookup of a user that
// does not exist.
var ErrNotFound = errors.New("user not found")

// NotFoundError reports that the API has no user with the given login.
type NotFoundError struct {
	Login string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Login)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// RemoteError reports a non-success HTTP status, or a success status whose
// body could not be decoded.
type RemoteError struct {
	Op     string
	Status int
	// Decode is set when the status was a success but the body was invalid.
	Decode bool
	Err    error
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("API error: %d", e.Status)
	if e.Op == OpRepositories {
		msg = fmt.Sprintf("failed to fetch repositories: %d", e.Status)
	}

	if e.Decode {
		msg += ": invalid response body"
	}

	return msg
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NetworkError wraps transport failures: DNS, refused connections,
// timeouts and cancellation.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s request: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
