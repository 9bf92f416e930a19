package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readInitMigration(t *testing.T) string {
	t.Helper()

	sql, err := os.ReadFile(filepath.Join("..", "..", "migrations", "00001_init.sql"))
	require.NoError(t, err)
	return string(sql)
}

// The duplicate-apply conflict mapping matches on the constraint name pgx
// reports. A rename in the migration without a matching code change would
// silently turn that conflict into an internal error.
func TestMigrationDeclaresUniqueShiftUserConstraint(t *testing.T) {
	sql := readInitMigration(t)

	assert.Contains(t, sql, "CONSTRAINT "+uniqueShiftUserConstraint+" UNIQUE (shift_id, user_id)")
}

// Ids are opaque strings. If the id columns were typed UUID, a lookup with a
// malformed id would raise a cast error (a 500 to the caller) instead of
// matching no rows (a 404).
func TestMigrationKeepsIdColumnsText(t *testing.T) {
	sql := readInitMigration(t)

	assert.Equal(t, 3, strings.Count(sql, "id TEXT PRIMARY KEY"))
	assert.Contains(t, sql, "hired_provider_id TEXT")
	assert.Contains(t, sql, "shift_id TEXT")
	assert.Contains(t, sql, "user_id TEXT")
	assert.NotContains(t, sql, "UUID")
}
