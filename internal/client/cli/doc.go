// Package cli provides the interactive watchlist command-line client.
//
// It wires configuration, the HTTP API client and an interactive REPL. The
// user registers or logs in, then manages their watchlist with list, add and
// remove. The session token lives only in memory and is dropped on logout or
// when the server rejects it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
