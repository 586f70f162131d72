package sessionstore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amelnikov/learnly/internal/client/models"
	"github.com/amelnikov/learnly/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func testUser() models.User {
	return models.User{
		Email:     "a@b.com",
		FirstName: "Alice",
		LastName:  "Brown",
		Role:      "user",
	}
}

func TestStore_TokenRoundTrip(t *testing.T) {
	store := New(setupDB(t), testLogger())
	ctx := context.Background()

	assert.Empty(t, store.Token(ctx))

	store.SetToken(ctx, "tok1")
	assert.Equal(t, "tok1", store.Token(ctx))

	store.RemoveToken(ctx)
	assert.Empty(t, store.Token(ctx))
}

func TestStore_UserRoundTrip(t *testing.T) {
	store := New(setupDB(t), testLogger())
	ctx := context.Background()

	assert.Nil(t, store.User(ctx))

	want := testUser()
	store.SetUser(ctx, want)
	got := store.User(ctx)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	store.RemoveUser(ctx)
	assert.Nil(t, store.User(ctx))
}

func TestStore_MalformedStoredUser(t *testing.T) {
	db := setupDB(t)
	store := New(db, testLogger())
	ctx := context.Background()

	require.NoError(t, NewSQLiteRepository(db).Set(ctx, UserKey, []byte("{not json")))
	assert.Nil(t, store.User(ctx))
}

func TestStore_SaveSessionWritesBothKeys(t *testing.T) {
	store := New(setupDB(t), testLogger())
	ctx := context.Background()

	store.SaveSession(ctx, "tok1", testUser())

	assert.Equal(t, "tok1", store.Token(ctx))
	got := store.User(ctx)
	require.NotNil(t, got)
	assert.Equal(t, testUser(), *got)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := New(setupDB(t), testLogger())
	ctx := context.Background()

	store.SaveSession(ctx, "tok1", testUser())
	store.Clear(ctx)
	assert.Empty(t, store.Token(ctx))
	assert.Nil(t, store.User(ctx))

	store.Clear(ctx)
	assert.Empty(t, store.Token(ctx))
}

func TestStore_NilDBDegradesToNoOps(t *testing.T) {
	store := New(nil, testLogger())
	ctx := context.Background()

	assert.False(t, store.Available())
	assert.Empty(t, store.Token(ctx))
	assert.Nil(t, store.User(ctx))

	store.SetToken(ctx, "tok1")
	store.SetUser(ctx, testUser())
	store.SaveSession(ctx, "tok1", testUser())
	store.RemoveToken(ctx)
	store.RemoveUser(ctx)
	store.Clear(ctx)

	assert.Empty(t, store.Token(ctx))
	assert.Nil(t, store.User(ctx))
}

func TestStore_AbsorbsStorageErrors(t *testing.T) {
	db := setupDB(t)
	store := New(db, testLogger())
	ctx := context.Background()

	require.NoError(t, db.Close())

	// None of these may panic or surface the error.
	assert.True(t, store.Available())
	assert.Empty(t, store.Token(ctx))
	assert.Nil(t, store.User(ctx))
	store.SetToken(ctx, "tok1")
	store.SetUser(ctx, testUser())
	store.SaveSession(ctx, "tok1", testUser())
	store.Clear(ctx)
}
