package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/storage"
	"github.com/dmitrijs2005/kitchenkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db, logging.Discard()), db
}

func seed(t *testing.T, db *sql.DB, kv map[string]string) {
	t.Helper()
	repo := metadata.NewSQLiteRepository(db)
	for k, v := range kv {
		require.NoError(t, repo.Set(context.Background(), k, []byte(v)))
	}
}

func storedKeys(t *testing.T, db *sql.DB) map[string][]byte {
	t.Helper()
	rows, err := db.Query(`SELECT key, value FROM metadata`)
	require.NoError(t, err)
	defer rows.Close()

	m := map[string][]byte{}
	for rows.Next() {
		var k string
		var v []byte
		require.NoError(t, rows.Scan(&k, &v))
		m[k] = v
	}
	require.NoError(t, rows.Err())
	return m
}

func TestSaveThenLoad(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	user := models.UserProfile{ID: 12, Email: "cook@example.com", Name: "Cook"}

	require.NoError(t, s.Save(ctx, "tok-123", user))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-123", got.Token)
	assert.Equal(t, user, got.User)

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)
}

func TestLoad_Combinations(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]string
		valid  bool
	}{
		{name: "nothing stored", stored: map[string]string{}},
		{name: "token only", stored: map[string]string{KeyToken: "t"}},
		{name: "user only", stored: map[string]string{KeyUser: `{"id":1,"name":"Ann"}`}},
		{name: "malformed user", stored: map[string]string{KeyToken: "t", KeyUser: `{"id":`}},
		{name: "user without name", stored: map[string]string{KeyToken: "t", KeyUser: `{"id":1,"email":"a@b.c"}`}},
		{name: "user is not an object", stored: map[string]string{KeyToken: "t", KeyUser: `"Ann"`}},
		{name: "valid", stored: map[string]string{KeyToken: "t", KeyUser: `{"id":1,"email":"a@b.c","name":"Ann"}`}, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, db := newStore(t)
			seed(t, db, tt.stored)

			got, err := s.Load(context.Background())
			require.NoError(t, err)

			if tt.valid {
				require.NotNil(t, got)
				assert.Equal(t, "Ann", got.User.Name)
				assert.Len(t, storedKeys(t, db), 2)
				return
			}
			assert.Nil(t, got)
			assert.Empty(t, storedKeys(t, db), "invalid session must be cleared")
		})
	}
}

func TestClear(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "t", models.UserProfile{Name: "Ann"}))

	require.NoError(t, s.Clear(ctx))

	assert.Empty(t, storedKeys(t, db))
	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestSave_ReplacesWholeProfile(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "t1", models.UserProfile{ID: 1, Email: "a@b.c", Name: "Ann"}))
	require.NoError(t, s.Save(ctx, "t2", models.UserProfile{ID: 2, Name: "Bob"}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Session{Token: "t2", User: models.UserProfile{ID: 2, Name: "Bob"}}, got)
}

func TestLoad_StorageError(t *testing.T) {
	s, db := newStore(t)
	require.NoError(t, db.Close())

	_, err := s.Load(context.Background())
	require.Error(t, err)
}
