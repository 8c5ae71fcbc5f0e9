// Package session persists the logged-in user's bearer token and profile in
// the local metadata table, playing the role browser storage plays for a web
// front end.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/kitchenkeeper/internal/dbx"
	"github.com/dmitrijs2005/kitchenkeeper/internal/logging"
)

// Keys under which the session is stored.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Store loads, saves and clears the session. It reads storage on every call
// and caches nothing, so the HTTP client always sees the current token.
type Store struct {
	db   *sql.DB
	repo metadata.Repository
	log  logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, repo: metadata.NewSQLiteRepository(db), log: log}
}

// Load returns the stored session, or (nil, nil) when there is none.
//
// A session is returned only when a non-empty token and a parseable user
// profile with a non-empty name are both present. Any other combination is
// treated as no session and both keys are cleared.
func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	token, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		return nil, err
	}
	rawUser, err := s.repo.Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}

	if len(token) == 0 && len(rawUser) == 0 {
		return nil, nil
	}
	if len(token) == 0 || len(rawUser) == 0 {
		s.log.Warn(ctx, "incomplete session in storage, clearing", "has_token", len(token) > 0, "has_user", len(rawUser) > 0)
		return nil, s.Clear(ctx)
	}

	var user models.UserProfile
	if err := json.Unmarshal(rawUser, &user); err != nil {
		s.log.Warn(ctx, "invalid user data in storage, clearing", "error", err)
		return nil, s.Clear(ctx)
	}
	if user.Name == "" {
		s.log.Warn(ctx, "stored user has no name, clearing")
		return nil, s.Clear(ctx)
	}

	return &models.Session{Token: string(token), User: user}, nil
}

// Save stores token and user together.
func (s *Store) Save(ctx context.Context, token string, user models.UserProfile) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, rawUser)
	})
}

// Clear removes both keys.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyToken, KeyUser)
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token(ctx context.Context) (string, error) {
	token, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return string(token), nil
}
