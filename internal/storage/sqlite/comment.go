package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itchan-dev/bbs/internal/domain"
	internal_errors "github.com/itchan-dev/bbs/internal/errors"
	"github.com/itchan-dev/bbs/internal/storage"
)

func (s *Storage) ListComments(ctx context.Context, threadId domain.ThreadId) ([]*domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, thread_id, name, body, created_at
		FROM comments
		WHERE thread_id = ?
		ORDER BY created_at ASC, id ASC
	`, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	comments := []*domain.Comment{}
	for rows.Next() {
		var comment domain.Comment
		var createdAt string
		if err := rows.Scan(&comment.Id, &comment.ThreadId, &comment.Name, &comment.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		if comment.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

// CreateComment checks the parent thread and inserts within one transaction.
// An unknown thread is reported as 404 instead of a bare constraint failure.
func (s *Storage) CreateComment(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error) {
	var id domain.CommentId
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM threads WHERE id = ?)", creationData.ThreadId,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to validate thread: %w", err)
		}
		if !exists {
			return internal_errors.NotFound("Thread not found")
		}

		id, err = insertComment(ctx, tx, creationData)
		return err
	})
	if err != nil {
		return -1, err
	}
	return id, nil
}

func insertComment(ctx context.Context, q storage.Querier, creationData domain.CommentCreationData) (domain.CommentId, error) {
	result, err := q.ExecContext(ctx,
		"INSERT INTO comments (thread_id, name, body, created_at) VALUES (?, ?, ?, ?)",
		creationData.ThreadId, creationData.Name, creationData.Body, formatTime(creationData.CreatedAt),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return -1, internal_errors.NotFound("Thread not found")
		}
		return -1, fmt.Errorf("failed to insert comment: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return -1, fmt.Errorf("failed to read comment id: %w", err)
	}
	return id, nil
}
