package session

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var dbSeq int

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:sessionstore%d?mode=memory&cache=shared", dbSeq)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return NewSQLiteStore(db)
}

func TestLoad_EmptyDatabase_ZeroValues(t *testing.T) {
	s := setupStore(t)

	p, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, p.Token)
	assert.Empty(t, p.Role)
	assert.Nil(t, p.User)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	in := Persisted{Token: "t1", Role: "buyer", User: []byte(`{"id":7,"role":"buyer"}`)}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", out.Token)
	assert.Equal(t, "buyer", out.Role)
	assert.JSONEq(t, `{"id":7,"role":"buyer"}`, string(out.User))
}

func TestSave_OverwritesWholesale(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Persisted{Token: "t1", Role: "buyer", User: []byte(`{}`)}))
	require.NoError(t, s.Save(ctx, Persisted{Token: "t2", Role: "seller", User: []byte(`{"id":1}`)}))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", out.Token)
	assert.Equal(t, "seller", out.Role)
}

func TestSaveRole_DoesNotDisturbOtherKeys(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Persisted{Token: "t1", Role: "buyer", User: []byte(`{"id":7}`)}))
	require.NoError(t, s.SaveRole(ctx, "seller"))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", out.Token)
	assert.Equal(t, "seller", out.Role)
	assert.JSONEq(t, `{"id":7}`, string(out.User))
}

func TestClear_RemovesEverything(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Persisted{Token: "t1", Role: "buyer", User: []byte(`{}`)}))
	require.NoError(t, s.Clear(ctx))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Persisted{}, out)

	// Clearing an already-empty store is fine.
	require.NoError(t, s.Clear(ctx))
}

func TestLoad_MalformedProfileDropped(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Persisted{Token: "t1", Role: "buyer", User: []byte(`{"broken`)}))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", out.Token)
	assert.Nil(t, out.User)
}

func TestOpenDatabase_AppliesMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "session.db")

	db, err := OpenDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Persisted{Token: "t1", Role: "seller"}))
	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "seller", out.Role)
}
