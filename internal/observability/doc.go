// Package observability exposes the service's Prometheus metrics: request
// counts and latencies per route, attendance workflow transitions, and
// follow edge repairs. Metrics are registered at init via promauto and
// served through Handler.
package observability
