// Package service implements the business logic layer for the Roam API.
//
// The service package contains the visibility evaluator, the follow graph
// manager, the attendance workflow engine, the rating aggregator, and the
// twin matcher, plus the thin orchestration around adventures, profiles,
// and notifications.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with
//     repository dependencies
//   - Methods check every precondition against freshly read state before
//     issuing any mutation
//   - Errors are returned as sentinel errors defined in errors.go
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing easy mocking in
// unit tests and decoupling from the SurrealDB implementation.
//
// # Transactional Units
//
// Operations that touch more than one record (follow edges, workflow
// transitions with their notifications) delegate to repository methods that
// run a single atomic batch; from a caller's point of view each transition
// either fully happens or not at all.
package service
