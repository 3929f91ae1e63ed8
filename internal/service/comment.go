package service

import (
	"context"
	"strings"

	"github.com/itchan-dev/bbs/internal/domain"
)

type CommentService interface {
	Create(ctx context.Context, threadId domain.ThreadId, name domain.CommentName, body domain.CommentBody) (domain.CommentId, error)
}

type Comment struct {
	storage         CommentStorage
	validator       CommentValidator
	clock           *Clock
	placeholderName string
}

type CommentStorage interface {
	CreateComment(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error)
}

type CommentValidator interface {
	Name(name string) error
	Body(body string) error
}

func NewComment(storage CommentStorage, validator CommentValidator, clock *Clock, placeholderName string) *Comment {
	return &Comment{
		storage:         storage,
		validator:       validator,
		clock:           clock,
		placeholderName: placeholderName,
	}
}

// Create appends a comment to threadId. A blank name is replaced with the
// placeholder name; any other name is stored as typed.
func (c *Comment) Create(ctx context.Context, threadId domain.ThreadId, name domain.CommentName, body domain.CommentBody) (domain.CommentId, error) {
	if strings.TrimSpace(name) == "" {
		name = c.placeholderName
	}
	if err := c.validator.Name(name); err != nil {
		return -1, err
	}
	if err := c.validator.Body(body); err != nil {
		return -1, err
	}

	return c.storage.CreateComment(ctx, domain.CommentCreationData{
		ThreadId:  threadId,
		Name:      name,
		Body:      body,
		CreatedAt: c.clock.Now(),
	})
}
