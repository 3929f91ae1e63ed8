package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/bbs/internal/config"
	"github.com/itchan-dev/bbs/internal/domain"
	"github.com/itchan-dev/bbs/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type mockThreadService struct {
	listFunc   func(ctx context.Context) ([]domain.ThreadMetadata, error)
	getFunc    func(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	createFunc func(ctx context.Context, title domain.ThreadTitle, body domain.CommentBody) (domain.ThreadId, error)

	createCalled bool
}

func (m *mockThreadService) List(ctx context.Context) ([]domain.ThreadMetadata, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockThreadService) Get(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return domain.Thread{ThreadMetadata: domain.ThreadMetadata{Id: id}}, nil
}

func (m *mockThreadService) Create(ctx context.Context, title domain.ThreadTitle, body domain.CommentBody) (domain.ThreadId, error) {
	m.createCalled = true
	if m.createFunc != nil {
		return m.createFunc(ctx, title, body)
	}
	return 1, nil
}

type mockCommentService struct {
	createFunc func(ctx context.Context, threadId domain.ThreadId, name domain.CommentName, body domain.CommentBody) (domain.CommentId, error)

	createCalled bool
}

func (m *mockCommentService) Create(ctx context.Context, threadId domain.ThreadId, name domain.CommentName, body domain.CommentBody) (domain.CommentId, error) {
	m.createCalled = true
	if m.createFunc != nil {
		return m.createFunc(ctx, threadId, name, body)
	}
	return 1, nil
}

type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) Ping(ctx context.Context) error {
	return m.err
}

// --- Helpers ---

var jst = time.FixedZone("JST", 9*60*60)

func newTestHandler(t *testing.T, thread *mockThreadService, comment *mockCommentService) *Handler {
	t.Helper()
	templates, err := LoadTemplates(TemplatesFS, markdown.New())
	require.NoError(t, err)
	return New(config.Default(), thread, comment, &mockHealthChecker{}, templates)
}

// withThreadId attaches a chi route context carrying {id}.
func withThreadId(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
		status   int
	}{
		{
			name:     "Valid JSON",
			input:    map[string]string{"message": "hello"},
			expected: `{"message":"hello"}`,
			status:   http.StatusOK,
		},
		{
			name:     "Invalid JSON (channel)",
			input:    make(chan int),
			expected: "Internal error",
			status:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			writeJSON(rr, tt.input)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.expected, strings.TrimSpace(rr.Body.String()))
			if tt.status == http.StatusOK {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestCheckNotModified(t *testing.T) {
	lastModified := time.Date(2024, 1, 2, 3, 4, 5, 600, jst)
	etag := `"1-2-2"`

	t.Run("sets validators without conditional header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/thread/1", nil)

		assert.False(t, checkNotModified(rr, req, etag, lastModified))
		assert.Equal(t, etag, rr.Header().Get("ETag"))
		assert.Equal(t, lastModified.UTC().Format(http.TimeFormat), rr.Header().Get("Last-Modified"))
	})

	t.Run("304 when etag matches", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/thread/1", nil)
		req.Header.Set("If-None-Match", `"0-0-0", W/`+etag)

		assert.True(t, checkNotModified(rr, req, etag, lastModified))
		assert.Equal(t, http.StatusNotModified, rr.Code)
	})

	t.Run("200 when etag differs", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/thread/1", nil)
		req.Header.Set("If-None-Match", `"1-1-1"`)

		assert.False(t, checkNotModified(rr, req, etag, lastModified))
	})

	t.Run("If-Modified-Since alone never yields 304", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/thread/1", nil)
		req.Header.Set("If-Modified-Since", lastModified.Add(time.Hour).UTC().Format(http.TimeFormat))

		assert.False(t, checkNotModified(rr, req, etag, lastModified))
	})
}

func TestRenderTemplateUnknown(t *testing.T) {
	h := newTestHandler(t, &mockThreadService{}, &mockCommentService{})
	rr := httptest.NewRecorder()

	h.renderTemplate(rr, http.StatusOK, "missing.html", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestNotFound(t *testing.T) {
	h := newTestHandler(t, &mockThreadService{}, &mockCommentService{})
	rr := httptest.NewRecorder()

	h.NotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", bytes.NewReader(nil)))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Page not found")
}
