package pg

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/itchan-dev/bbs/internal/config"
	"github.com/itchan-dev/bbs/internal/logger"
	"github.com/itchan-dev/bbs/internal/storage"

	"github.com/lib/pq"
)

//go:embed migrations/init.sql
var schema string

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const foreignKeyViolation = pq.ErrorCode("23503")

type Storage struct {
	db *sql.DB
}

func New(ctx context.Context, cfg config.Pg) (*Storage, error) {
	logger.Log.Info("connecting to db", "driver", "postgres", "host", cfg.Host, "dbname", cfg.Dbname)
	db, err := storage.Open(ctx, "postgres", connString(cfg), storage.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db: db}, nil
}

func connString(cfg config.Pg) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Dbname)
}

// Migrate applies the fixed schema. Safe to run on every start.
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
