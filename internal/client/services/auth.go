// Package services contains application services for the kitchenkeeper client.
// This file defines the authentication service: login, signup-then-login,
// logout and restoring the stored session at startup.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
)

// AuthFailedMessage is shown when an auth request fails without a server
// detail message.
const AuthFailedMessage = "authentication failed"

var ErrEmptyToken = errors.New("login response carried no token")

// AuthAPI is the part of the REST client the auth service needs.
type AuthAPI interface {
	Signup(ctx context.Context, creds models.Credentials) (models.UserProfile, error)
	Login(ctx context.Context, email, password string) (models.LoginResult, error)
	Me(ctx context.Context) (models.UserProfile, error)
}

// SessionStore persists the token and the cached profile.
type SessionStore interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, token string, user models.UserProfile) error
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate and persist the session.
//   - Signup: create the account, then log in with the same credentials.
//   - Logout: drop the stored session. The server keeps no session state.
//   - Restore: return the stored session, or nil when there is none.
//   - Whoami: ask the server who the current token belongs to.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.UserProfile, error)
	Signup(ctx context.Context, creds models.Credentials) (models.UserProfile, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.Session, error)
	Whoami(ctx context.Context) (models.UserProfile, error)
}

type authService struct {
	api      AuthAPI
	sessions SessionStore
}

func NewAuthService(api AuthAPI, sessions SessionStore) AuthService {
	return &authService{api: api, sessions: sessions}
}

// Login exchanges credentials for a token and saves {token, user}.
func (a *authService) Login(ctx context.Context, email, password string) (models.UserProfile, error) {
	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("login error: %w", err)
	}
	if res.Token == "" {
		return models.UserProfile{}, ErrEmptyToken
	}

	user := res.Profile()
	if err := a.sessions.Save(ctx, res.Token, user); err != nil {
		return models.UserProfile{}, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

// Signup registers the account and logs in right after. A signup failure
// stops before the login request is sent.
func (a *authService) Signup(ctx context.Context, creds models.Credentials) (models.UserProfile, error) {
	if _, err := a.api.Signup(ctx, creds); err != nil {
		return models.UserProfile{}, fmt.Errorf("signup error: %w", err)
	}
	return a.Login(ctx, creds.Email, creds.Password)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

func (a *authService) Restore(ctx context.Context) (*models.Session, error) {
	return a.sessions.Load(ctx)
}

func (a *authService) Whoami(ctx context.Context) (models.UserProfile, error) {
	return a.api.Me(ctx)
}
