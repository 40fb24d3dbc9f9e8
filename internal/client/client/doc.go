// Package client talks to the watchlist server.
//
// The Client interface is the transport-agnostic API contract used by the
// CLI; HTTPClient implements it over the JSON HTTP API and keeps the session
// token returned by Login for later calls.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable, 401/403 responses wrap
// ErrUnauthorized and 404 responses wrap ErrNotFound; match them with
// errors.Is. Any other failure is an *APIError carrying the status and the
// server's message.
package client
