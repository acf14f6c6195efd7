// Package database provides the record store abstraction for Roam.
//
// This package defines the Database interface that abstracts SurrealDB
// operations, allowing clean separation between the engine's business logic
// and data access.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns multiple results (for SELECT queries returning lists)
//   - QueryOne: Returns a single result (for SELECT by ID)
//   - Execute: No return value (for CREATE/UPDATE/DELETE mutations)
//
// The Subscriber interface exposes the store's live queries as ordered
// per-collection change streams; the follow-edge reconciler consumes these.
//
// # Atomic Batches
//
// Multi-record engine mutations (the two legs of a follow edge, a workflow
// transition plus its notifications) must land together. AtomicBatch wraps
// accumulated statements in BEGIN TRANSACTION / COMMIT TRANSACTION and
// executes them as one unit:
//
//	batch := database.NewAtomicBatch()
//	batch.Add(query1, vars1)
//	batch.Add(query2, vars2)
//	err := batch.Execute(ctx, db)  // All or nothing
//
// Queries accumulate in memory until Execute; there is no isolation between
// Add calls.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database
