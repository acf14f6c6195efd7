package database

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// AtomicBatch accumulates statements that must succeed or fail together.
// On Execute the statements are wrapped in BEGIN TRANSACTION / COMMIT
// TRANSACTION and sent as a single query, with variables namespaced per
// statement to avoid collisions.
type AtomicBatch struct {
	queries []batchQuery
}

type batchQuery struct {
	query string
	vars  map[string]interface{}
}

// NewAtomicBatch creates a new atomic batch
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{
		queries: make([]batchQuery, 0),
	}
}

// Add adds a statement to the batch
func (ab *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	ab.queries = append(ab.queries, batchQuery{query: query, vars: vars})
	return ab
}

// Len returns the number of accumulated statements
func (ab *AtomicBatch) Len() int {
	return len(ab.queries)
}

// Execute runs all statements as a single transaction. An empty batch is a no-op.
func (ab *AtomicBatch) Execute(ctx context.Context, db Database) error {
	if len(ab.queries) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")

	allVars := make(map[string]interface{})
	for i, q := range ab.queries {
		stmt := q.query
		// Longest names first so $user does not clobber $user_id
		names := make([]string, 0, len(q.vars))
		for name := range q.vars {
			names = append(names, name)
		}
		sort.Slice(names, func(a, b int) bool { return len(names[a]) > len(names[b]) })
		for _, name := range names {
			namespaced := fmt.Sprintf("b%d_%s", i, name)
			stmt = strings.ReplaceAll(stmt, "$"+name, "$"+namespaced)
			allVars[namespaced] = q.vars[name]
		}
		sb.WriteString(stmt)
		sb.WriteString(";\n")
	}

	sb.WriteString("COMMIT TRANSACTION;")

	return db.Execute(ctx, sb.String(), allVars)
}
