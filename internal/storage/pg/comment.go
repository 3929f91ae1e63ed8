package pg

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
        WHERE thread_id = $1
        ORDER BY created_at ASC, id ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	comments := []*domain.Comment{}
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(&comment.Id, &comment.ThreadId, &comment.Name, &comment.Body, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

func (s *Storage) CreateComment(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error) {
	var id domain.CommentId
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", creationData.ThreadId,
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
	var id domain.CommentId
	err := q.QueryRowContext(ctx, `
        INSERT INTO comments (thread_id, name, body, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, creationData.ThreadId, creationData.Name, creationData.Body, creationData.CreatedAt).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return -1, internal_errors.NotFound("Thread not found")
		}
		return -1, fmt.Errorf("failed to insert comment: %w", err)
	}
	return id, nil
}
