// Package middleware provides HTTP middleware for the Roam API: request ID
// propagation, structured request logging, Prometheus instrumentation, panic
// recovery, CORS, and JWT authentication.
//
// Auth rejects requests without a valid bearer token. OptionalAuth admits
// guests: routes serving viewer-scoped reads use it so an absent or invalid
// token degrades to the guest view rather than a 401.
package middleware
