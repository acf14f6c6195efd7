package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, invalid reference, etc.).
	ErrQuery = errors.New("query error")
)

// Unavailable reports whether err represents a store I/O failure rather
// than a domain outcome.
func Unavailable(err error) bool {
	return errors.Is(err, ErrConnection) || errors.Is(err, ErrQuery)
}

// Database defines the interface for record store operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// ChangeAction classifies a record delta on a subscription stream
type ChangeAction string

const (
	ChangeCreate ChangeAction = "CREATE"
	ChangeUpdate ChangeAction = "UPDATE"
	ChangeDelete ChangeAction = "DELETE"
)

// ChangeEvent is one record delta from a collection subscription.
// Events are ordered per collection; there is no cross-collection ordering.
type ChangeEvent struct {
	Action ChangeAction
	Data   interface{}
}

// Subscriber produces ordered change streams per collection
type Subscriber interface {
	// Subscribe opens a live change stream for a table. The returned
	// channel closes when ctx is cancelled or the connection drops.
	Subscribe(ctx context.Context, table string) (<-chan ChangeEvent, error)
}

// Config holds database configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
