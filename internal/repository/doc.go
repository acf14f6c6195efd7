// Package repository implements data access for the Roam API using SurrealDB.
//
// Repositories translate between domain models and SurrealQL queries. Each
// repository handles one aggregate (user, adventure, notification), plus a
// workflow repository dedicated to attendance transitions that span records.
//
// # Query Patterns
//
// Direct record access uses type::record() for efficiency:
//
//	SELECT * FROM type::record($id)
//
// Set-valued fields (follow lists, interested users) are mutated with
// array::union / array::complement inside a single UPDATE, giving per-field
// add-to-set and remove-from-set semantics.
//
// # Multi-Record Mutations
//
// Both legs of a follow edge, and every attendance workflow transition with
// its notification writes, execute through database.AtomicBatch so they
// commit as one transaction.
//
// # Error Handling
//
// GetByID methods return (nil, nil) for missing records; services translate
// that into their own not-found errors. Store failures propagate wrapped
// database package sentinels.
package repository
