package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
	"github.com/dmitrijs2005/kitchenkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken struct {
	token string
	calls int32
	err   error
}

func (s *staticToken) Token(ctx context.Context) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.token, s.err
}

func newTestClient(t *testing.T, h http.HandlerFunc, tokens TokenSource, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/api/", tokens, logging.Discard(), opts...)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New("ftp://example.com/api", nil, logging.Discard())
	require.Error(t, err)

	_, err = New("://nope", nil, logging.Discard())
	require.Error(t, err)
}

func TestClient_InjectsBearerTokenReadPerRequest(t *testing.T) {
	var gotAuth []string
	tokens := &staticToken{token: "first"}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		w.WriteHeader(http.StatusNoContent)
	}, tokens)

	ctx := context.Background()
	require.NoError(t, c.Delete(ctx, "/recipes/1"))
	tokens.token = "second"
	require.NoError(t, c.Delete(ctx, "/recipes/2"))
	tokens.token = ""
	require.NoError(t, c.Delete(ctx, "/recipes/3"))

	assert.Equal(t, []string{"Bearer first", "Bearer second", ""}, gotAuth)
	assert.EqualValues(t, 3, atomic.LoadInt32(&tokens.calls))
}

func TestClient_TokenSourceError(t *testing.T) {
	boom := errors.New("db closed")
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be sent")
	}, &staticToken{err: boom})

	err := c.Get(context.Background(), "/recipes", nil, nil)
	require.ErrorIs(t, err, boom)
}

func TestClient_UnauthorizedRunsHandlerThenReturnsError(t *testing.T) {
	var hookCalls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"title":"Unauthorized","status":401,"detail":"token expired"}`)
	}, &staticToken{token: "stale"}, WithUnauthorizedHandler(func(ctx context.Context) { hookCalls++ }))

	err := c.Get(context.Background(), "/pantry", nil, &models.Page[models.PantryItem]{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, hookCalls)
	assert.Equal(t, "token expired", Detail(err, "fallback"))
}

func TestClient_ErrorDetailExtraction(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		wantTitle  string
	}{
		{"problem detail", 400, `{"title":"Bad Request","detail":"email already exists"}`, "email already exists", "Bad Request"},
		{"message body", 409, `{"error":"conflict","message":"duplicate"}`, "duplicate", ""},
		{"plain text", 500, `oops`, "", ""},
		{"empty body", 503, ``, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}, nil)

			err := c.Post(context.Background(), "/auth/signup", map[string]string{"email": "x"}, nil)
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Equal(t, tt.wantTitle, apiErr.Title)
			assert.False(t, errors.Is(err, ErrUnauthorized))
		})
	}
}

func TestClient_NotFoundMatchesSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, nil)

	_, err := c.GetRecipe(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "unknown error", Detail(err, "unknown error"))
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(base, nil, logging.Discard())
	require.NoError(t, err)

	err = c.Get(context.Background(), "/recipes", nil, nil)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Get(ctx, "/recipes", nil, nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_WithTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}, nil, WithTimeout(20*time.Millisecond))

	err := c.Get(context.Background(), "/recipes", nil, nil)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_SendsJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "cook@example.com", "password": "pw"}, body)

		_ = json.NewEncoder(w).Encode(map[string]any{"token": "jwt", "userId": 5, "email": "cook@example.com", "name": "Cook"})
	}, nil)

	res, err := c.Login(context.Background(), "cook@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt", res.Token)
	assert.Equal(t, models.UserProfile{ID: 5, Email: "cook@example.com", Name: "Cook"}, res.Profile())
}
