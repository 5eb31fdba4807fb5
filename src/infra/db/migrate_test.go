package db

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(Migrations(), ".")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{
		"00001_create_table_users.sql",
		"00002_create_table_authentications.sql",
		"00003_create_table_threads.sql",
		"00004_create_table_comments.sql",
	}, names)
}

func TestCommentsMigrationCascades(t *testing.T) {
	raw, err := fs.ReadFile(Migrations(), "00004_create_table_comments.sql")
	require.NoError(t, err)

	sql := string(raw)
	assert.Contains(t, sql, "REFERENCES threads (id) ON DELETE CASCADE")
	assert.Contains(t, sql, "REFERENCES users (id) ON DELETE CASCADE")
	assert.Contains(t, sql, "is_delete BOOLEAN     NOT NULL DEFAULT FALSE")
}
