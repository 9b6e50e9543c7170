package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvukovic/mailpilot/internal/client/models"
	"github.com/pvukovic/mailpilot/internal/common"
	"github.com/pvukovic/mailpilot/internal/logging"
)

// memStore is an in-memory credentials.Repository for gateway tests.
type memStore struct {
	mu    sync.Mutex
	token string
}

func (m *memStore) Get(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memStore) Set(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.Handler, store *memStore) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewHTTPClient(srv.URL, 5*time.Second, store, testLogger())
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestDo_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthHeaderName)
		gotReqID = r.Header.Get(common.RequestIDHeaderName)
		w.WriteHeader(http.StatusOK)
	})

	c := newTestClient(t, handler, &memStore{token: "T"})
	require.NoError(t, c.Ping(context.Background()))

	assert.Equal(t, "Bearer T", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestDo_AnonymousWhenNoCredential(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthHeaderName)
		w.WriteHeader(http.StatusOK)
	})

	c := newTestClient(t, handler, &memStore{})
	require.NoError(t, c.Ping(context.Background()))
	assert.Empty(t, gotAuth)
}

func TestDo_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, common.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, common.ErrUnauthorized},
		{"bad request", http.StatusBadRequest, common.ErrValidation},
		{"not found", http.StatusNotFound, common.ErrValidation},
		{"internal error", http.StatusInternalServerError, common.ErrServer},
		{"bad gateway", http.StatusBadGateway, common.ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			c := newTestClient(t, handler, &memStore{token: "T"})

			err := c.Ping(context.Background())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDo_UnauthorizedClearsCredential(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	store := &memStore{token: "stale"}
	c := newTestClient(t, handler, store)

	_, err := c.FetchEmail(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)

	token, _ := store.Get(context.Background())
	assert.Empty(t, token, "rejected credential must be cleared")
}

func TestDo_OtherFailuresLeaveCredentialAlone(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	store := &memStore{token: "T"}
	c := newTestClient(t, handler, store)

	err := c.Ping(context.Background())
	require.ErrorIs(t, err, common.ErrServer)

	token, _ := store.Get(context.Background())
	assert.Equal(t, "T", token)
}

func TestDo_TransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	c := NewHTTPClient(srv.URL, time.Second, &memStore{}, testLogger())
	err := c.Ping(context.Background())
	require.ErrorIs(t, err, common.ErrNetwork)
}

func TestLogin_ReturnsToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "a@b.com", req.Email)
		require.Equal(t, "x", req.Password)

		_ = json.NewEncoder(w).Encode(loginResponse{AccessToken: "T"})
	})
	c := newTestClient(t, handler, &memStore{})

	token, err := c.Login(context.Background(), "a@b.com", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "T", token)
}

func TestLogin_MissingTokenIsUnknown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	c := newTestClient(t, handler, &memStore{})

	_, err := c.Login(context.Background(), "a@b.com", []byte("x"))
	require.ErrorIs(t, err, common.ErrUnknown)
}

func TestSaveAgentSettings_JSONWithoutFile(t *testing.T) {
	var gotContentType string
	var got models.AgentSettings
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})
	c := newTestClient(t, handler, &memStore{token: "T"})

	settings := models.AgentSettings{Name: "Bot", PromptTemplate: "tpl"}
	require.NoError(t, c.SaveAgentSettings(context.Background(), settings, nil))

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, settings, got)
}

func TestSaveAgentSettings_MultipartWithFile(t *testing.T) {
	var gotName, gotFileName string
	var gotFile []byte
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("name")

		f, header, err := r.FormFile("trainingFile")
		require.NoError(t, err)
		defer f.Close()
		gotFileName = header.Filename
		gotFile, err = io.ReadAll(f)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	})
	c := newTestClient(t, handler, &memStore{token: "T"})

	file := &models.TrainingFile{Name: "corpus.txt", Data: []byte("samples")}
	err := c.SaveAgentSettings(context.Background(), models.AgentSettings{Name: "Bot"}, file)
	require.NoError(t, err)

	assert.Equal(t, "Bot", gotName)
	assert.Equal(t, "corpus.txt", gotFileName)
	assert.Equal(t, []byte("samples"), gotFile)
}

func TestEmailPipelineEndpoints(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fetch-email":
			_ = json.NewEncoder(w).Encode(fetchEmailResponse{Content: "raw email"})
		case "/summarize-email":
			var req summarizeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "raw email", req.Content)
			_ = json.NewEncoder(w).Encode(summarizeResponse{Summary: "tl;dr"})
		case "/send-email":
			var req sendEmailRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "tl;dr", req.Summary)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	c := newTestClient(t, handler, &memStore{token: "T"})
	ctx := context.Background()

	content, err := c.FetchEmail(ctx)
	require.NoError(t, err)
	require.Equal(t, "raw email", content)

	summary, err := c.SummarizeEmail(ctx, content)
	require.NoError(t, err)
	require.Equal(t, "tl;dr", summary)

	require.NoError(t, c.SendEmail(ctx, summary))
}
