package service

import (
	"context"

	"github.com/itchan-dev/bbs/internal/domain"
)

type ThreadService interface {
	List(ctx context.Context) ([]domain.ThreadMetadata, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	Create(ctx context.Context, title domain.ThreadTitle, body domain.CommentBody) (domain.ThreadId, error)
}

type Thread struct {
	storage         ThreadStorage
	validator       ThreadValidator
	clock           *Clock
	placeholderName string
}

type ThreadStorage interface {
	ListThreads(ctx context.Context) ([]domain.ThreadMetadata, error)
	GetThread(ctx context.Context, id domain.ThreadId) (domain.ThreadMetadata, error)
	ListComments(ctx context.Context, threadId domain.ThreadId) ([]*domain.Comment, error)
	CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error)
}

type ThreadValidator interface {
	Title(title string) error
	Body(body string) error
}

func NewThread(storage ThreadStorage, validator ThreadValidator, clock *Clock, placeholderName string) *Thread {
	return &Thread{
		storage:         storage,
		validator:       validator,
		clock:           clock,
		placeholderName: placeholderName,
	}
}

// List returns every thread, newest first.
func (t *Thread) List(ctx context.Context) ([]domain.ThreadMetadata, error) {
	threads, err := t.storage.ListThreads(ctx)
	if err != nil {
		return nil, err
	}
	for i := range threads {
		threads[i].CreatedAt = t.clock.Local(threads[i].CreatedAt)
	}
	return threads, nil
}

// Get returns the thread with its comments, oldest first.
func (t *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	metadata, err := t.storage.GetThread(ctx, id)
	if err != nil {
		return domain.Thread{}, err
	}
	comments, err := t.storage.ListComments(ctx, id)
	if err != nil {
		return domain.Thread{}, err
	}

	metadata.CreatedAt = t.clock.Local(metadata.CreatedAt)
	for _, c := range comments {
		c.CreatedAt = t.clock.Local(c.CreatedAt)
	}
	return domain.Thread{ThreadMetadata: metadata, Comments: comments}, nil
}

// Create stores a thread whose body becomes its first comment, signed with
// the placeholder name.
func (t *Thread) Create(ctx context.Context, title domain.ThreadTitle, body domain.CommentBody) (domain.ThreadId, error) {
	if err := t.validator.Title(title); err != nil {
		return -1, err
	}
	if err := t.validator.Body(body); err != nil {
		return -1, err
	}

	now := t.clock.Now()
	creationData := domain.ThreadCreationData{
		Title:     title,
		CreatedAt: now,
		OpComment: domain.CommentCreationData{
			Name:      t.placeholderName,
			Body:      body,
			CreatedAt: now,
		},
	}
	return t.storage.CreateThread(ctx, creationData)
}
