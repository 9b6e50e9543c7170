// Package services contains application services for the mailpilot client.
// This file defines the session service: login, registration, logout, and
// the bootstrap check that restores a persisted session on startup.
package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pvukovic/mailpilot/internal/client/client"
	"github.com/pvukovic/mailpilot/internal/client/repositories/credentials"
	"github.com/pvukovic/mailpilot/internal/common"
	"github.com/pvukovic/mailpilot/internal/logging"
)

// SessionService owns the authenticated/anonymous state of the client.
//
// Contract:
//   - Login: authenticate against the server and persist the credential.
//   - Register: create a new account; never authenticates automatically.
//   - Logout: drop the credential; idempotent, always succeeds locally.
//   - Bootstrap: restore a persisted session once at startup, without
//     revalidating against the server (a stale credential is discovered by
//     the first real request).
//   - IsAuthenticated: derived state — true iff a credential is stored.
//
// At most one login or register call is in flight at a time; a concurrent
// second submission fails locally with common.ErrAuthInProgress.
type SessionService interface {
	Bootstrap(ctx context.Context) (bool, error)
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}

type sessionService struct {
	client client.Client
	creds  credentials.Repository
	log    logging.Logger

	mu           sync.Mutex
	authInFlight bool
}

// NewSessionService constructs a SessionService bound to the given API
// client and credential store.
func NewSessionService(client client.Client, creds credentials.Repository, log logging.Logger) SessionService {
	return &sessionService{
		client: client,
		creds:  creds,
		log:    log.With("component", "session"),
	}
}

// beginAuth claims the single auth slot. The caller must release it with
// endAuth once the network call has completed.
func (s *sessionService) beginAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authInFlight {
		return common.ErrAuthInProgress
	}
	s.authInFlight = true
	return nil
}

func (s *sessionService) endAuth() {
	s.mu.Lock()
	s.authInFlight = false
	s.mu.Unlock()
}

func validateCredentials(email string, password []byte) error {
	if strings.TrimSpace(email) == "" || len(bytes.TrimSpace(password)) == 0 {
		return common.ErrEmptyCredentials
	}
	return nil
}

func (s *sessionService) Login(ctx context.Context, email string, password []byte) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	if err := s.beginAuth(); err != nil {
		return err
	}
	defer s.endAuth()

	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := s.creds.Set(ctx, token); err != nil {
		return fmt.Errorf("credential save error: %w", err)
	}

	s.log.Info(ctx, "login succeeded", "email", email)
	return nil
}

func (s *sessionService) Register(ctx context.Context, email string, password []byte) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	if err := s.beginAuth(); err != nil {
		return err
	}
	defer s.endAuth()

	if err := s.client.Register(ctx, email, password); err != nil {
		return fmt.Errorf("register error: %w", err)
	}

	s.log.Info(ctx, "registration succeeded", "email", email)
	return nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("credential clear error: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *sessionService) Bootstrap(ctx context.Context) (bool, error) {
	token, err := s.creds.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("credential read error: %w", err)
	}
	if token == "" {
		return false, nil
	}
	s.log.Info(ctx, "restored persisted session")
	return true, nil
}

func (s *sessionService) IsAuthenticated(ctx context.Context) bool {
	token, err := s.creds.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "credential read failed, treating session as anonymous", "error", err)
		return false
	}
	return token != ""
}
