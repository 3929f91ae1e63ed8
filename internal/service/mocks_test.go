package service

import (
	"context"
	"sync"
	"time"

	"github.com/itchan-dev/bbs/internal/domain"
)

// --- Mocks ---

type MockThreadStorage struct {
	listThreadsFunc  func(ctx context.Context) ([]domain.ThreadMetadata, error)
	getThreadFunc    func(ctx context.Context, id domain.ThreadId) (domain.ThreadMetadata, error)
	listCommentsFunc func(ctx context.Context, threadId domain.ThreadId) ([]*domain.Comment, error)
	createThreadFunc func(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error)

	mu                 sync.Mutex
	createThreadCalled bool
	createThreadArg    domain.ThreadCreationData
	listCommentsCalled bool
}

func (m *MockThreadStorage) ListThreads(ctx context.Context) ([]domain.ThreadMetadata, error) {
	if m.listThreadsFunc != nil {
		return m.listThreadsFunc(ctx)
	}
	return []domain.ThreadMetadata{}, nil
}

func (m *MockThreadStorage) GetThread(ctx context.Context, id domain.ThreadId) (domain.ThreadMetadata, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(ctx, id)
	}
	return domain.ThreadMetadata{Id: id}, nil
}

func (m *MockThreadStorage) ListComments(ctx context.Context, threadId domain.ThreadId) ([]*domain.Comment, error) {
	m.mu.Lock()
	m.listCommentsCalled = true
	m.mu.Unlock()

	if m.listCommentsFunc != nil {
		return m.listCommentsFunc(ctx, threadId)
	}
	return []*domain.Comment{}, nil
}

func (m *MockThreadStorage) CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	m.mu.Lock()
	m.createThreadCalled = true
	m.createThreadArg = creationData
	m.mu.Unlock()

	if m.createThreadFunc != nil {
		return m.createThreadFunc(ctx, creationData)
	}
	return 1, nil
}

type MockCommentStorage struct {
	createCommentFunc func(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error)

	mu                  sync.Mutex
	createCommentCalled bool
	createCommentArg    domain.CommentCreationData
}

func (m *MockCommentStorage) CreateComment(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error) {
	m.mu.Lock()
	m.createCommentCalled = true
	m.createCommentArg = creationData
	m.mu.Unlock()

	if m.createCommentFunc != nil {
		return m.createCommentFunc(ctx, creationData)
	}
	return 1, nil
}

type MockValidator struct {
	titleFunc func(title string) error
	nameFunc  func(name string) error
	bodyFunc  func(body string) error
}

func (m *MockValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

func (m *MockValidator) Name(name string) error {
	if m.nameFunc != nil {
		return m.nameFunc(name)
	}
	return nil
}

func (m *MockValidator) Body(body string) error {
	if m.bodyFunc != nil {
		return m.bodyFunc(body)
	}
	return nil
}

// --- Helpers ---

var (
	jst       = time.FixedZone("JST", 9*60*60)
	fixedTime = time.Date(2024, 5, 1, 0, 0, 0, 123456789, time.UTC)
)

func fixedClock() *Clock {
	return NewClock(jst, func() time.Time { return fixedTime })
}
