// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/MKhiriev/model-hub-client/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testModelID   = uuid.MustParse("6f1c1b7e-4a53-4d2e-9d0a-6a2f0b7d3c11")
	testCommentID = uuid.MustParse("0b9a7f4e-2f1d-4c6b-8a4e-13c5d7e9f021")
	testUserID    = uuid.MustParse("a3d5c1e2-7b8f-4e6d-9c0b-1f2e3d4c5b6a")
)

func credentials() models.Credentials {
	return models.Credentials{Email: "ann@example.com", Password: "secret123"}
}

type recordedRequest struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   []byte
}

// requestLog collects requests seen by a test server.
type requestLog struct {
	mu   sync.Mutex
	reqs []recordedRequest
}

func (l *requestLog) add(r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.reqs = append(l.reqs, recordedRequest{
		method: r.Method,
		path:   r.URL.Path,
		query:  r.URL.Query(),
		header: r.Header.Clone(),
		body:   body,
	})
}

func (l *requestLog) all() []recordedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]recordedRequest(nil), l.reqs...)
}

func (l *requestLog) last() recordedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.reqs) == 0 {
		return recordedRequest{}
	}
	return l.reqs[len(l.reqs)-1]
}

// newEchoServer answers every request with status and body and records it.
func newEchoServer(t *testing.T, status int, body string) (*requestLog, *httptest.Server) {
	t.Helper()

	log := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		writeJSON(w, status, body)
	}))
	t.Cleanup(srv.Close)

	return log, srv
}

func decodeBody(t *testing.T, raw []byte) map[string]any {
	t.Helper()

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	return got
}

func ptr[T any](v T) *T {
	return &v
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestAuth_Register(t *testing.T) {
	log, srv := newEchoServer(t, http.StatusCreated,
		`{"id":"a3d5c1e2-7b8f-4e6d-9c0b-1f2e3d4c5b6a","email":"ann@example.com","username":"Ann","created_at":"2026-01-02T03:04:05Z"}`)
	env := newTestClient(t, srv.URL)

	user, err := env.client.Auth.Register(context.Background(), models.Registration{
		Email: "ann@example.com", Username: "Ann", Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, testUserID, user.ID)
	assert.Equal(t, "Ann", user.Username)

	req := log.last()
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/api/auth/register", req.path)
	assert.Equal(t, "application/json", req.header.Get("Content-Type"))
	assert.Equal(t, map[string]any{
		"email": "ann@example.com", "username": "Ann", "password": "secret123",
	}, decodeBody(t, req.body))
}

func TestAuth_Login(t *testing.T) {
	log, srv := newEchoServer(t, http.StatusOK, `{"access_token":"tok1","token_type":"bearer"}`)
	env := newTestClient(t, srv.URL)

	token, err := env.client.Auth.Login(context.Background(), credentials())
	require.NoError(t, err)
	assert.Equal(t, models.Token{AccessToken: "tok1", TokenType: "bearer"}, token)

	req := log.last()
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/api/auth/login", req.path)
	assert.Equal(t, map[string]any{"email": "ann@example.com", "password": "secret123"}, decodeBody(t, req.body))
}

func TestAuth_Me(t *testing.T) {
	log, srv := newEchoServer(t, http.StatusOK,
		`{"id":"a3d5c1e2-7b8f-4e6d-9c0b-1f2e3d4c5b6a","email":"ann@example.com","username":"Ann","bio":"hi"}`)
	env := newTestClient(t, srv.URL)

	user, err := env.client.Auth.Me(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user.Bio)
	assert.Equal(t, "hi", *user.Bio)
	assert.Nil(t, user.Avatar)

	assert.Equal(t, http.MethodGet, log.last().method)
	assert.Equal(t, "/api/auth/me", log.last().path)
}

func TestAuth_UpdateMe_SendsQueryParams(t *testing.T) {
	log, srv := newEchoServer(t, http.StatusOK,
		`{"id":"a3d5c1e2-7b8f-4e6d-9c0b-1f2e3d4c5b6a","email":"ann@example.com","username":"Annie"}`)
	env := newTestClient(t, srv.URL)

	user, err := env.client.Auth.UpdateMe(context.Background(), models.UserUpdate{
		Username: ptr("Annie"),
		Bio:      ptr("likes transformers"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Annie", user.Username)

	req := log.last()
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/api/auth/me", req.path)
	assert.Equal(t, url.Values{
		"username": {"Annie"},
		"bio":      {"likes transformers"},
	}, req.query)
	assert.Empty(t, req.body)
}

func TestAuth_Logout(t *testing.T) {
	log, srv := newEchoServer(t, http.StatusOK, `{"message":"Successfully logged out"}`)
	env := newTestClient(t, srv.URL)

	msg, err := env.client.Auth.Logout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Successfully logged out", msg.Message)
	assert.Equal(t, http.MethodPost, log.last().method)
	assert.Equal(t, "/api/auth/logout", log.last().path)
}

// ── Models ──────────────────────────────────────────────────────────────────

func TestModels_List_EncodesFilters(t *testing.T) {
	tests := []struct {
		name   string
		params models.ModelListParams
		want   url.Values
	}{
		{name: "server defaults", params: models.ModelListParams{}, want: url.Values{}},
		{
			name: "all filters",
			params: models.ModelListParams{
				Page: 2, PageSize: 50, Category: "nlp", Search: "bert", Sort: models.SortPopular,
			},
			want: url.Values{
				"page": {"2"}, "page_size": {"50"}, "category": {"nlp"}, "search": {"bert"}, "sort": {"popular"},
			},
		},
		{
			name:   "sort only",
			params: models.ModelListParams{Sort: models.SortDownloads},
			want:   url.Values{"sort": {"downloads"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, srv := newEchoServer(t, http.StatusOK,
				`{"items":[{"id":"6f1c1b7e-4a53-4d2e-9d0a-6a2f0b7d3c11","name":"bert","category":"nlp","tags":["text"],"version":"1.0.0"}],"total":1,"page":1,"page_size":20}`)
			env := newTestClient(t, srv.URL)

			list, err := env.client.Models.List(context.Background(), tt.params)
			require.NoError(t, err)
			require.Len(t, list.Items, 1)
			assert.Equal(t, testModelID, list.Items[0].ID)
			assert.Equal(t, int64(1), list.Total)

			req := log.last()
			assert.Equal(t, "/api/models", req.path)
			assert.Equal(t, tt.want, req.query)
		})
	}
}

func TestModels_PathCalls(t *testing.T) {
	ctx := context.Background()
	modelPath := "/api/models/" + testModelID.String()

	tests := []struct {
		name       string
		response   string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
	}{
		{
			name:     "get",
			response: `{"id":"6f1c1b7e-4a53-4d2e-9d0a-6a2f0b7d3c11","name":"bert"}`,
			call: func(c *Client) error {
				m, err := c.Models.Get(ctx, testModelID)
				assert.Equal(t, "bert", m.Name)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   modelPath,
		},
		{
			name:     "delete",
			response: `{"message":"Model deleted"}`,
			call: func(c *Client) error {
				m, err := c.Models.Delete(ctx, testModelID)
				assert.Equal(t, "Model deleted", m.Message)
				return err
			},
			wantMethod: http.MethodDelete,
			wantPath:   modelPath,
		},
		{
			name:     "download",
			response: `{"download_url":"https://files.example.com/bert.bin","file_size":1024,"file_format":"bin"}`,
			call: func(c *Client) error {
				info, err := c.Models.Download(ctx, testModelID)
				assert.Equal(t, "https://files.example.com/bert.bin", info.DownloadURL)
				assert.Equal(t, int64(1024), info.FileSize)
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   modelPath + "/download",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, srv := newEchoServer(t, http.StatusOK, tt.response)
			env := newTestClient(t, srv.URL)

			require.NoError(t, tt.call(env.client))
			assert.Equal(t, tt.wantMethod, log.last().method)
			assert.Equal(t, tt.wantPath, log.last().path)
		})
	}
}

func TestModels_Create(t *testing.T) {
	log, srv := newEchoServer(t, http.StatusCreated,
		`{"id":"6f1c1b7e-4a53-4d2e-9d0a-6a2f0b7d3c11","name":"bert","category":"nlp","version":"1.0.0"}`)
	env := newTestClient(t, srv.URL)

	model, err := env.client.Models.Create(context.Background(), models.ModelCreate{
		Name:     "bert",
		Category: "nlp",
		Tags:     []string{"text"},
	})
	require.NoError(t, err)
	assert.Equal(t, testModelID, model.ID)

	req := log.last()
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/api/models", req.path)
	assert.Equal(t, map[string]any{
		"name": "bert", "category": "nlp", "tags": []any{"text"},
	}, decodeBody(t, req.body))
}

func TestModels_Update_SendsOnlySetFields(t *testing.T) {
	log, srv := newEchoServer(t, http.StatusOK,
		`{"id":"6f1c1b7e-4a53-4d2e-9d0a-6a2f0b7d3c11","name":"bert-large","version":"2.0.0"}`)
	env := newTestClient(t, srv.URL)

	model, err := env.client.Models.Update(context.Background(), testModelID, models.ModelUpdate{
		Name:    ptr("bert-large"),
		Version: ptr("2.0.0"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", model.Version)

	req := log.last()
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/api/models/"+testModelID.String(), req.path)
	assert.Equal(t, map[string]any{"name": "bert-large", "version": "2.0.0"}, decodeBody(t, req.body))
}

// ── Interactions ────────────────────────────────────────────────────────────

func TestInteractions_Comments(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		log, srv := newEchoServer(t, http.StatusOK,
			`[{"id":"0b9a7f4e-2f1d-4c6b-8a4e-13c5d7e9f021","content":"great","rating":5}]`)
		env := newTestClient(t, srv.URL)

		comments, err := env.client.Interactions.ListComments(ctx, testModelID, models.PageParams{Page: 3})
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, testCommentID, comments[0].ID)
		assert.Equal(t, 5, comments[0].Rating)

		req := log.last()
		assert.Equal(t, http.MethodGet, req.method)
		assert.Equal(t, "/api/models/"+testModelID.String()+"/comments", req.path)
		assert.Equal(t, url.Values{"page": {"3"}}, req.query)
	})

	t.Run("create", func(t *testing.T) {
		log, srv := newEchoServer(t, http.StatusCreated,
			`{"id":"0b9a7f4e-2f1d-4c6b-8a4e-13c5d7e9f021","content":"solid","rating":4}`)
		env := newTestClient(t, srv.URL)

		comment, err := env.client.Interactions.CreateComment(ctx, testModelID, models.CommentCreate{Content: "solid", Rating: 4})
		require.NoError(t, err)
		assert.Equal(t, "solid", comment.Content)

		req := log.last()
		assert.Equal(t, http.MethodPost, req.method)
		assert.Equal(t, "/api/models/"+testModelID.String()+"/comments", req.path)
		assert.Equal(t, map[string]any{"content": "solid", "rating": float64(4)}, decodeBody(t, req.body))
	})

	t.Run("create without rating", func(t *testing.T) {
		log, srv := newEchoServer(t, http.StatusCreated, `{"content":"ok","rating":5}`)
		env := newTestClient(t, srv.URL)

		_, err := env.client.Interactions.CreateComment(ctx, testModelID, models.CommentCreate{Content: "ok"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"content": "ok"}, decodeBody(t, log.last().body))
	})

	t.Run("delete", func(t *testing.T) {
		log, srv := newEchoServer(t, http.StatusOK, `{"message":"Comment deleted"}`)
		env := newTestClient(t, srv.URL)

		msg, err := env.client.Interactions.DeleteComment(ctx, testCommentID)
		require.NoError(t, err)
		assert.Equal(t, "Comment deleted", msg.Message)
		assert.Equal(t, http.MethodDelete, log.last().method)
		assert.Equal(t, "/api/comments/"+testCommentID.String(), log.last().path)
	})
}

func TestInteractions_Likes(t *testing.T) {
	ctx := context.Background()
	likePath := "/api/models/" + testModelID.String() + "/like"

	t.Run("like", func(t *testing.T) {
		log, srv := newEchoServer(t, http.StatusCreated,
			`{"id":"0b9a7f4e-2f1d-4c6b-8a4e-13c5d7e9f021","model_id":"6f1c1b7e-4a53-4d2e-9d0a-6a2f0b7d3c11"}`)
		env := newTestClient(t, srv.URL)

		like, err := env.client.Interactions.Like(ctx, testModelID)
		require.NoError(t, err)
		assert.Equal(t, testModelID, like.ModelID)
		assert.Equal(t, http.MethodPost, log.last().method)
		assert.Equal(t, likePath, log.last().path)
	})

	t.Run("unlike", func(t *testing.T) {
		log, srv := newEchoServer(t, http.StatusOK, `{"message":"Like removed"}`)
		env := newTestClient(t, srv.URL)

		_, err := env.client.Interactions.Unlike(ctx, testModelID)
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, log.last().method)
		assert.Equal(t, likePath, log.last().path)
	})

	t.Run("status", func(t *testing.T) {
		log, srv := newEchoServer(t, http.StatusOK, `{"liked":true}`)
		env := newTestClient(t, srv.URL)

		status, err := env.client.Interactions.LikeStatus(ctx, testModelID)
		require.NoError(t, err)
		assert.True(t, status.Liked)
		assert.Equal(t, http.MethodGet, log.last().method)
		assert.Equal(t, likePath+"/status", log.last().path)
	})

	t.Run("already liked", func(t *testing.T) {
		_, srv := newEchoServer(t, http.StatusBadRequest, `{"detail":"Already liked"}`)
		env := newTestClient(t, srv.URL)

		_, err := env.client.Interactions.Like(ctx, testModelID)
		assert.ErrorIs(t, err, ErrBadRequest)
		assert.Equal(t, []string{"Already liked"}, env.recorder.Messages())
	})
}
