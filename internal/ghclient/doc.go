// Package ghclient wraps go-github for the two read-only lookups ghexplorer
// performs: a user profile and that user's repositories.
//
// Errors are mapped into a small taxonomy so callers never inspect HTTP
// details:
//   - [NotFoundError] (matches [ErrNotFound]) when the profile does not exist
//   - [RemoteError] for any other non-success status, or an undecodable body
//   - [NetworkError] when no response was received at all
//
// Requests are unauthenticated. An optional rate limiter spaces outgoing calls.
package ghclient
