package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/bbs/internal/domain"
	internal_errors "github.com/itchan-dev/bbs/internal/errors"
	"github.com/itchan-dev/bbs/internal/storage"
)

func (s *Storage) ListThreads(ctx context.Context) ([]domain.ThreadMetadata, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, created_at
		FROM threads
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	threads := []domain.ThreadMetadata{}
	for rows.Next() {
		var thread domain.ThreadMetadata
		var createdAt string
		if err := rows.Scan(&thread.Id, &thread.Title, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		if thread.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		threads = append(threads, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}

func (s *Storage) GetThread(ctx context.Context, id domain.ThreadId) (domain.ThreadMetadata, error) {
	var thread domain.ThreadMetadata
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, created_at FROM threads WHERE id = ?", id,
	).Scan(&thread.Id, &thread.Title, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadMetadata{}, internal_errors.NotFound("Thread not found")
		}
		return domain.ThreadMetadata{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	if thread.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.ThreadMetadata{}, err
	}
	return thread, nil
}

// CreateThread inserts the thread and its opening comment in one transaction.
func (s *Storage) CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	var id domain.ThreadId
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			"INSERT INTO threads (title, created_at) VALUES (?, ?)",
			creationData.Title, formatTime(creationData.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert thread: %w", err)
		}
		if id, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("failed to read thread id: %w", err)
		}

		op := creationData.OpComment
		op.ThreadId = id
		op.CreatedAt = creationData.CreatedAt
		if _, err := insertComment(ctx, tx, op); err != nil {
			return fmt.Errorf("failed to create OP comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return -1, err
	}
	return id, nil
}
