package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itchan-dev/bbs/internal/domain"
	internal_errors "github.com/itchan-dev/bbs/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListThreadsJSON(t *testing.T) {
	t.Run("empty list encodes as array", func(t *testing.T) {
		h := newTestHandler(t, &mockThreadService{}, &mockCommentService{})
		rr := httptest.NewRecorder()

		h.ListThreadsJSON(rr, httptest.NewRequest(http.MethodGet, "/api/v1/threads", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"threads":[]}`, rr.Body.String())
	})

	t.Run("threads", func(t *testing.T) {
		thread := sampleThread()
		threadService := &mockThreadService{
			listFunc: func(ctx context.Context) ([]domain.ThreadMetadata, error) {
				return []domain.ThreadMetadata{thread.ThreadMetadata}, nil
			},
		}
		h := newTestHandler(t, threadService, &mockCommentService{})
		rr := httptest.NewRecorder()

		h.ListThreadsJSON(rr, httptest.NewRequest(http.MethodGet, "/api/v1/threads", nil))

		var resp ThreadListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Threads, 1)
		assert.Equal(t, "Hello", resp.Threads[0].Title)
		assert.True(t, thread.CreatedAt.Equal(resp.Threads[0].CreatedAt))
	})
}

func TestGetThreadJSON(t *testing.T) {
	t.Run("thread with comments", func(t *testing.T) {
		threadService := &mockThreadService{
			getFunc: func(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
				return sampleThread(), nil
			},
		}
		h := newTestHandler(t, threadService, &mockCommentService{})
		rr := httptest.NewRecorder()
		req := withThreadId(httptest.NewRequest(http.MethodGet, "/api/v1/threads/7", nil), "7")

		h.GetThreadJSON(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp ThreadResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, domain.ThreadId(7), resp.Id)
		require.Len(t, resp.Comments, 2)
		assert.Equal(t, "anonymous", resp.Comments[0].Name)
		assert.Equal(t, "Alice", resp.Comments[1].Name)
	})

	t.Run("not found", func(t *testing.T) {
		threadService := &mockThreadService{
			getFunc: func(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
				return domain.Thread{}, internal_errors.NotFound("Thread not found")
			},
		}
		h := newTestHandler(t, threadService, &mockCommentService{})
		rr := httptest.NewRecorder()
		req := withThreadId(httptest.NewRequest(http.MethodGet, "/api/v1/threads/9", nil), "9")

		h.GetThreadJSON(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Thread not found"}`, rr.Body.String())
	})
}
