// Package services contains application services for the travelmate client.
// This file defines the authentication service: login with remember-me
// semantics, signup, the two-step password reset, and logout.
package services

import (
	"bytes"
	"context"

	"github.com/dmitrijs2005/travelmate/internal/client/api"
	"github.com/dmitrijs2005/travelmate/internal/client/session"
)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Login: authenticate and persist token/email (and savedEmail iff
//     rememberMe); subscribers are notified through the store.
//   - Register: create an account; nothing is persisted on success — the
//     user logs in explicitly afterwards.
//   - RequestResetCode / ResetPassword: the two steps of the reset flow.
//   - Logout: remove token and email; savedEmail survives.
//
// Validation failures surface as the sentinel errors in this package and
// short-circuit before the network. On any failure the persisted session is
// left untouched.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte, rememberMe bool) error
	Register(ctx context.Context, fullname, email, phone string, password, confirm []byte) error
	RequestResetCode(ctx context.Context, email string) (message, resetCode string, err error)
	ResetPassword(ctx context.Context, email, resetCode string, newPassword, confirm []byte) error
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store *session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Login(ctx context.Context, email string, password []byte, rememberMe bool) error {
	if email == "" || len(password) == 0 {
		return ErrFieldRequired
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.store.Set(ctx, session.KeyAuthToken, token)
	a.store.Set(ctx, session.KeyUserEmail, email)
	if rememberMe {
		a.store.Set(ctx, session.KeySavedEmail, email)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, fullname, email, phone string, password, confirm []byte) error {
	if fullname == "" || email == "" || len(password) == 0 {
		return ErrFieldRequired
	}
	if !bytes.Equal(password, confirm) {
		return ErrPasswordMismatch
	}
	if len(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}

	return a.client.Register(ctx, fullname, email, phone, password)
}

func (a *authService) RequestResetCode(ctx context.Context, email string) (string, string, error) {
	if email == "" {
		return "", "", ErrFieldRequired
	}
	return a.client.RequestResetCode(ctx, email)
}

func (a *authService) ResetPassword(ctx context.Context, email, resetCode string, newPassword, confirm []byte) error {
	if email == "" || resetCode == "" || len(newPassword) == 0 {
		return ErrFieldRequired
	}
	if !bytes.Equal(newPassword, confirm) {
		return ErrPasswordMismatch
	}
	if len(newPassword) < MinPasswordLen {
		return ErrPasswordTooShort
	}

	return a.client.ResetPassword(ctx, email, resetCode, newPassword)
}

// Logout clears the authenticated identity. The remembered email is an
// independent value and is deliberately kept.
func (a *authService) Logout(ctx context.Context) error {
	a.store.Remove(ctx, session.KeyAuthToken)
	a.store.Remove(ctx, session.KeyUserEmail)
	return nil
}
