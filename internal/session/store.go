// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/model-hub-client/internal/adapter"
	"github.com/MKhiriev/model-hub-client/internal/logger"
	"github.com/MKhiriev/model-hub-client/internal/store"
	"github.com/MKhiriev/model-hub-client/models"
	"github.com/asaskevich/EventBus"
)

const removeTokenTimeout = 5 * time.Second

// State is a snapshot of the session.
type State struct {
	User  *models.User
	Token string
}

// IsLoggedIn reports whether a session token is held.
func (s State) IsLoggedIn() bool {
	return s.Token != ""
}

func (s State) clone() State {
	if s.User != nil {
		user := *s.User
		s.User = &user
	}
	return s
}

// Store is the process-wide session state.
type Store struct {
	auth    adapter.AuthAPI
	storage store.KeyValueStorage
	logger  *logger.Logger

	mu    sync.RWMutex
	state State

	events *events
	ready  chan struct{}
}

// NewStore restores the session persisted in storage. When a token is found,
// the current user is fetched in the background within ctx; [Store.Ready]
// tells when that fetch is over. NewStore itself never waits for the server.
func NewStore(ctx context.Context, auth adapter.AuthAPI, storage store.KeyValueStorage, log *logger.Logger) (*Store, error) {
	if auth == nil {
		return nil, errors.New("session: auth api is nil")
	}
	if storage == nil {
		return nil, errors.New("session: storage is nil")
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Store{
		auth:    auth,
		storage: storage,
		logger:  log,
		events:  newEvents(EventBus.New()),
		ready:   make(chan struct{}),
	}

	token, err := storage.Get(ctx, store.TokenKey)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
	case err != nil:
		return nil, fmt.Errorf("load session token: %w", err)
	default:
		s.state.Token = strings.TrimSpace(token)
	}

	if !s.state.IsLoggedIn() {
		close(s.ready)
		return s, nil
	}

	s.logger.Debug().Msg("stored session found, fetching current user")
	go func() {
		defer close(s.ready)
		s.FetchUser(ctx)
	}()

	return s, nil
}

// Ready is closed once the user fetch started by [NewStore] has finished.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// User returns a copy of the current user, nil when unknown.
func (s *Store) User() *models.User {
	return s.Snapshot().User
}

// Token returns the current session token, empty when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// IsLoggedIn reports whether a session token is held.
func (s *Store) IsLoggedIn() bool {
	return s.Token() != ""
}

// Subscribe registers fn to receive the new state after every change.
// Subscribers are called one at a time in subscription order. fn may call
// back into the store or unsubscribe; changes it makes are delivered after it
// returns. While a delivery is running, changes made on other goroutines are
// handed to it instead of being delivered by their own goroutine.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func(), err error) {
	return s.events.subscribe(fn)
}

// Login exchanges creds for a token, persists it and then fetches the user.
// On any error the session is left as it was.
//
// A failing user fetch is not a Login error: it ends the new session through
// [Store.FetchUser] as usual.
func (s *Store) Login(ctx context.Context, creds models.Credentials) error {
	token, err := s.auth.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	accessToken := strings.TrimSpace(token.AccessToken)
	if accessToken == "" {
		return fmt.Errorf("login: %w", models.ErrEmptyToken)
	}

	if err = s.storage.Set(ctx, store.TokenKey, accessToken); err != nil {
		return fmt.Errorf("login: persist token: %w", err)
	}

	s.update(func(st *State) bool {
		st.Token = accessToken
		st.User = nil
		return true
	})
	s.logger.Info().Msg("logged in")

	s.FetchUser(ctx)
	return nil
}

// Register creates an account. The session is not changed.
func (s *Store) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	user, err := s.auth.Register(ctx, reg)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("registered")
	return user, nil
}

// FetchUser refreshes the current user. It does nothing when anonymous. Any
// failure means the token is no longer usable: the session is logged out and
// the error is only logged.
//
// The result is dropped if the token changed while the call was in flight.
func (s *Store) FetchUser(ctx context.Context) {
	token := s.Token()
	if token == "" {
		return
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		// Only the session this fetch was made for is ended.
		cleared := false
		s.update(func(st *State) bool {
			if st.Token != token {
				return false
			}
			st.Token = ""
			st.User = nil
			cleared = true
			return true
		})
		if !cleared {
			return
		}

		s.logger.Warn().Err(err).Msg("current user fetch failed, logging out")
		if err = s.removeToken(ctx); err != nil {
			s.logger.Error().Err(err).Msg("logout after failed user fetch")
		}
		return
	}

	s.update(func(st *State) bool {
		if st.Token != token {
			return false
		}
		st.User = &user
		return true
	})
}

// Logout forgets the session in memory and in storage. It is idempotent.
// Memory is cleared even when the storage removal fails; that error is
// returned. The removal is not aborted by cancellation of ctx.
func (s *Store) Logout(ctx context.Context) error {
	s.update(func(st *State) bool {
		if !st.IsLoggedIn() && st.User == nil {
			return false
		}
		st.Token = ""
		st.User = nil
		return true
	})

	return s.removeToken(ctx)
}

// removeToken deletes the durable token. A cancelled ctx must not leave a
// token on disk that the HTTP client would keep attaching.
func (s *Store) removeToken(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), removeTokenTimeout)
	defer cancel()

	if err := s.storage.Remove(ctx, store.TokenKey); err != nil {
		return fmt.Errorf("logout: remove token: %w", err)
	}

	return nil
}

// update applies fn under the lock and publishes the result when fn reports
// a change. Subscribers are called without the lock held.
func (s *Store) update(fn func(st *State) bool) {
	s.mu.Lock()
	changed := fn(&s.state)
	snapshot := s.state.clone()
	s.mu.Unlock()

	if changed {
		s.events.publish(snapshot)
	}
}
