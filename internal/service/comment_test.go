package service

import (
	"context"
	"testing"

	"github.com/itchan-dev/bbs/internal/domain"
	internal_errors "github.com/itchan-dev/bbs/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    string
		wantName string
	}{
		{name: "explicit name is kept exactly", input: "Alice", wantName: "Alice"},
		{name: "missing name gets placeholder", input: "", wantName: "anonymous"},
		{name: "blank name gets placeholder", input: "   ", wantName: "anonymous"},
		{name: "surrounding spaces are kept", input: " Bob ", wantName: " Bob "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &MockCommentStorage{}
			s := NewComment(storage, &MockValidator{}, fixedClock(), "anonymous")

			_, err := s.Create(ctx, 1, tt.input, "Hi")
			require.NoError(t, err)

			require.True(t, storage.createCommentCalled)
			assert.Equal(t, tt.wantName, storage.createCommentArg.Name)
			assert.Equal(t, "Hi", storage.createCommentArg.Body)
			assert.Equal(t, domain.ThreadId(1), storage.createCommentArg.ThreadId)
			assert.Equal(t, jst, storage.createCommentArg.CreatedAt.Location())
		})
	}

	t.Run("InvalidBody", func(t *testing.T) {
		storage := &MockCommentStorage{}
		validator := &MockValidator{bodyFunc: func(string) error { return internal_errors.BadRequest("Body is required") }}
		s := NewComment(storage, validator, fixedClock(), "anonymous")

		_, err := s.Create(ctx, 1, "", "")
		require.Error(t, err)
		assert.Equal(t, 400, internal_errors.StatusCode(err))
		assert.False(t, storage.createCommentCalled)
	})

	t.Run("ThreadNotFound", func(t *testing.T) {
		storage := &MockCommentStorage{
			createCommentFunc: func(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error) {
				return -1, internal_errors.NotFound("Thread not found")
			},
		}
		s := NewComment(storage, &MockValidator{}, fixedClock(), "anonymous")

		_, err := s.Create(ctx, 999, "", "Hi")
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
