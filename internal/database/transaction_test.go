package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureDB struct {
	Database
	query string
	vars  map[string]interface{}
}

func (c *captureDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	c.query = query
	c.vars = vars
	return nil
}

func TestAtomicBatch_WrapsInTransaction(t *testing.T) {
	db := &captureDB{}
	batch := NewAtomicBatch()
	batch.Add(`UPDATE type::record($a) SET x = 1`, map[string]interface{}{"a": "user:1"})
	batch.Add(`UPDATE type::record($a) SET y = 2`, map[string]interface{}{"a": "user:2"})

	require.NoError(t, batch.Execute(context.Background(), db))

	assert.Contains(t, db.query, "BEGIN TRANSACTION;")
	assert.Contains(t, db.query, "COMMIT TRANSACTION;")
	assert.Contains(t, db.query, "$b0_a")
	assert.Contains(t, db.query, "$b1_a")
	assert.Equal(t, "user:1", db.vars["b0_a"])
	assert.Equal(t, "user:2", db.vars["b1_a"])
}

func TestAtomicBatch_PrefixedVarNames(t *testing.T) {
	// $user must not clobber $user_id during namespacing
	db := &captureDB{}
	batch := NewAtomicBatch()
	batch.Add(`UPDATE type::record($user) SET ref = $user_id`, map[string]interface{}{
		"user":    "user:1",
		"user_id": "user:2",
	})

	require.NoError(t, batch.Execute(context.Background(), db))

	assert.Contains(t, db.query, "type::record($b0_user)")
	assert.Contains(t, db.query, "ref = $b0_user_id")
	assert.NotContains(t, db.query, "$b0_b0_")
	assert.Equal(t, "user:1", db.vars["b0_user"])
	assert.Equal(t, "user:2", db.vars["b0_user_id"])
}

func TestAtomicBatch_EmptyIsNoOp(t *testing.T) {
	db := &captureDB{}
	batch := NewAtomicBatch()

	require.NoError(t, batch.Execute(context.Background(), db))
	assert.Empty(t, db.query, "empty batch must not hit the store")
}
