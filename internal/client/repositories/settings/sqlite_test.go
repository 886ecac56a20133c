package settings

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "appLanguage", "vi"))

	got, err := r.Get(ctx, "appLanguage")
	require.NoError(t, err)
	assert.Equal(t, "vi", got)
}

func TestSet_UpsertsExistingKey(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "authToken", "old"))
	require.NoError(t, r.Set(ctx, "authToken", "new"))

	got, err := r.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestGet_MissingKeyIsEmptyNotError(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.Get(context.Background(), "userEmail")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestDelete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "authToken", "tok"))
	require.NoError(t, r.Delete(ctx, "authToken"))

	got, err := r.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	// deleting again is a no-op
	require.NoError(t, r.Delete(ctx, "authToken"))
}

func TestList(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "userEmail", "a@b.com"))
	require.NoError(t, r.Set(ctx, "savedEmail", "a@b.com"))

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"userEmail": "a@b.com", "savedEmail": "a@b.com"}, all)
}
