// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/model-hub-client/internal/adapter"
	"github.com/MKhiriev/model-hub-client/internal/config"
	"github.com/MKhiriev/model-hub-client/internal/logger"
	"github.com/MKhiriev/model-hub-client/internal/notify"
	"github.com/MKhiriev/model-hub-client/internal/store"
	"github.com/MKhiriev/model-hub-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hubServer is a minimal model-hub auth backend accepting one user.
type hubServer struct {
	mu          sync.Mutex
	validToken  string
	meAuthHeads []string
}

func (h *hubServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/api/auth/login":
		var creds models.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != "a" || creds.Password != "b" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok1","token_type":"bearer"}`))

	case "/api/auth/me":
		auth := r.Header.Get("Authorization")
		h.mu.Lock()
		h.meAuthHeads = append(h.meAuthHeads, auth)
		valid := h.validToken
		h.mu.Unlock()

		if auth != "Bearer "+valid {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"a3d5c1e2-7b8f-4e6d-9c0b-1f2e3d4c5b6a","email":"ann@example.com","username":"Ann"}`))

	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
	}
}

func (h *hubServer) authHeaders() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.meAuthHeads...)
}

func newHubClient(t *testing.T, h *hubServer, storage store.KeyValueStorage) (*adapter.Client, *notify.Recorder) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	recorder := notify.NewRecorder()
	c, err := adapter.NewClient(config.ClientAdapter{
		APIURL:         "/api",
		HTTPAddress:    srv.URL,
		RequestTimeout: 2 * time.Second,
	}, storage, recorder, logger.Nop())
	require.NoError(t, err)

	return c, recorder
}

func TestLogin_ThroughHTTPClient(t *testing.T) {
	h := &hubServer{validToken: "tok1"}
	storage := newMemoryStorage(t, "")
	c, recorder := newHubClient(t, h, storage)
	ctx := context.Background()

	s, err := NewStore(ctx, c.Auth, storage, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Login(ctx, models.Credentials{Email: "a", Password: "b"}))

	token, ok := storedToken(t, storage)
	require.True(t, ok)
	assert.Equal(t, "tok1", token)
	assert.Equal(t, []string{"Bearer tok1"}, h.authHeaders())

	require.NotNil(t, s.User())
	assert.Equal(t, annID, s.User().ID)
	assert.Equal(t, "Ann", s.User().Username)
	assert.Empty(t, recorder.Messages())
}

func TestLogin_ThroughHTTPClient_WrongPassword(t *testing.T) {
	h := &hubServer{validToken: "tok1"}
	storage := newMemoryStorage(t, "")
	c, recorder := newHubClient(t, h, storage)
	ctx := context.Background()

	s, err := NewStore(ctx, c.Auth, storage, logger.Nop())
	require.NoError(t, err)

	err = s.Login(ctx, models.Credentials{Email: "a", Password: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	assertAnonymous(t, s, storage)
	assert.Empty(t, h.authHeaders())
	assert.Equal(t, []string{"Incorrect email or password"}, recorder.Messages())
}

func TestNewStore_ThroughHTTPClient(t *testing.T) {
	t.Run("valid stored token", func(t *testing.T) {
		h := &hubServer{validToken: "abc"}
		storage := newMemoryStorage(t, "abc")
		c, recorder := newHubClient(t, h, storage)

		s, err := NewStore(context.Background(), c.Auth, storage, logger.Nop())
		require.NoError(t, err)
		waitReady(t, s)

		require.NotNil(t, s.User())
		assert.Equal(t, "Ann", s.User().Username)
		assert.True(t, s.IsLoggedIn())
		assert.Equal(t, []string{"Bearer abc"}, h.authHeaders())
		assert.Empty(t, recorder.Messages())
	})

	t.Run("revoked stored token", func(t *testing.T) {
		h := &hubServer{validToken: "other"}
		storage := newMemoryStorage(t, "abc")
		c, recorder := newHubClient(t, h, storage)

		s, err := NewStore(context.Background(), c.Auth, storage, logger.Nop())
		require.NoError(t, err)
		waitReady(t, s)

		assertAnonymous(t, s, storage)
		assert.Equal(t, []string{"Could not validate credentials"}, recorder.Messages())
	})
}
