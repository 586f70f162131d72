package sessionstore

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/amelnikov/learnly/internal/client/models"
	"github.com/amelnikov/learnly/internal/dbx"
	"github.com/amelnikov/learnly/internal/logging"
)

// Fixed keys in the session table.
const (
	TokenKey = "auth_token"
	UserKey  = "auth_user"
)

// Store persists the bearer token and the serialized user record across
// client restarts.
//
// The store never propagates storage failures: every error is logged and
// the operation degrades to a no-op or nil result. A Store built over a nil
// database is valid and behaves as if storage were permanently empty, for
// environments that run without a local state file.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

// New creates a Store over db. db may be nil.
func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

// Available reports whether durable storage is backing this store.
func (s *Store) Available() bool {
	return s.db != nil
}

func (s *Store) repo() Repository {
	return NewSQLiteRepository(s.db)
}

// Token returns the stored bearer token, or "" when none is stored or
// storage is unavailable. Satisfies api.TokenSource.
func (s *Store) Token(ctx context.Context) string {
	if s.db == nil {
		return ""
	}
	value, err := s.repo().Get(ctx, TokenKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored token", "error", err)
		return ""
	}
	return string(value)
}

// SetToken stores the bearer token.
func (s *Store) SetToken(ctx context.Context, token string) {
	if s.db == nil {
		return
	}
	if err := s.repo().Set(ctx, TokenKey, []byte(token)); err != nil {
		s.log.Warn(ctx, "failed to store token", "error", err)
	}
}

// RemoveToken deletes the stored bearer token, if any.
func (s *Store) RemoveToken(ctx context.Context) {
	if s.db == nil {
		return
	}
	if err := s.repo().Delete(ctx, TokenKey); err != nil {
		s.log.Warn(ctx, "failed to remove stored token", "error", err)
	}
}

// User returns the stored user record, or nil when none is stored, the
// record cannot be decoded, or storage is unavailable.
func (s *Store) User(ctx context.Context) *models.User {
	if s.db == nil {
		return nil
	}
	value, err := s.repo().Get(ctx, UserKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored user", "error", err)
		return nil
	}
	if len(value) == 0 {
		return nil
	}
	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		s.log.Warn(ctx, "stored user record is malformed", "error", err)
		return nil
	}
	return &user
}

// SetUser stores the user record serialized as JSON.
func (s *Store) SetUser(ctx context.Context, user models.User) {
	if s.db == nil {
		return
	}
	data, err := json.Marshal(user)
	if err != nil {
		s.log.Warn(ctx, "failed to encode user record", "error", err)
		return
	}
	if err := s.repo().Set(ctx, UserKey, data); err != nil {
		s.log.Warn(ctx, "failed to store user", "error", err)
	}
}

// RemoveUser deletes the stored user record, if any.
func (s *Store) RemoveUser(ctx context.Context) {
	if s.db == nil {
		return
	}
	if err := s.repo().Delete(ctx, UserKey); err != nil {
		s.log.Warn(ctx, "failed to remove stored user", "error", err)
	}
}

// SaveSession writes token and user in a single transaction so a crash
// between the two writes cannot leave a half-restored session behind.
func (s *Store) SaveSession(ctx context.Context, token string, user models.User) {
	if s.db == nil {
		return
	}
	data, err := json.Marshal(user)
	if err != nil {
		s.log.Warn(ctx, "failed to encode user record", "error", err)
		return
	}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, UserKey, data)
	})
	if err != nil {
		s.log.Warn(ctx, "failed to persist session", "error", err)
	}
}

// Clear removes both entries. Calling it repeatedly is harmless.
func (s *Store) Clear(ctx context.Context) {
	if s.db == nil {
		return
	}
	if err := s.repo().Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear session store", "error", err)
	}
}
