// Package model defines domain entities and data structures for the Roam API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: account with follow graph, privacy settings, activity log, and
//     host rating aggregate
//   - Adventure: user-authored activity post with a time window, privacy
//     scope, and attendance tracking
//   - Notification: append-only queue entry, mutated only via its read flag
//
// # Set Semantics
//
// The follow graph and interest lists are IDSet values (structural sets
// serialized as JSON arrays), and a user's activity log is a map keyed by
// adventure id. Both types make the "no duplicates, one entry per adventure"
// invariants impossible to violate rather than convention-enforced.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go and written by
// the handler layer.
package model
