package db

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_InvalidURL(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := Connect(ctx, "not-a-postgres-url")
	require.Error(t, err)
}

func TestClose_NilPool(t *testing.T) {
	db := &DB{}
	assert.NotPanics(t, func() { db.Close() })
}

func TestSchema_DefinesExpectedTables(t *testing.T) {
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS users")
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS match_history")
	assert.Contains(t, schemaSQL, "ON DELETE CASCADE")
	assert.True(t, strings.Contains(schemaSQL, "report") && strings.Contains(schemaSQL, "JSONB"))
}
