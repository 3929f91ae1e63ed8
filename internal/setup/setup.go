package setup

import (
	"context"
	"fmt"

	"github.com/itchan-dev/bbs/internal/config"
	"github.com/itchan-dev/bbs/internal/handler"
	"github.com/itchan-dev/bbs/internal/logger"
	"github.com/itchan-dev/bbs/internal/markdown"
	"github.com/itchan-dev/bbs/internal/service"
	"github.com/itchan-dev/bbs/internal/storage/pg"
	"github.com/itchan-dev/bbs/internal/storage/sqlite"
	"github.com/itchan-dev/bbs/internal/utils"
)

// Storage is what the application needs from a backend.
type Storage interface {
	service.ThreadStorage
	service.CommentStorage
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Cleanup() error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage Storage
	Handler *handler.Handler
}

// OpenStorage connects to the backend selected by storage.driver.
func OpenStorage(ctx context.Context, cfg *config.Config) (Storage, error) {
	storageCfg := cfg.Private.Storage
	switch storageCfg.Driver {
	case config.DriverSQLite:
		logger.Log.Info("opening sqlite storage", "path", storageCfg.SQLitePath)
		s, err := sqlite.New(ctx, storageCfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		logger.Log.Info("opening postgres storage", "host", storageCfg.Pg.Host, "dbname", storageCfg.Pg.Dbname)
		s, err := pg.New(ctx, storageCfg.Pg)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", storageCfg.Driver)
	}
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	deps, err := New(cfg, storage)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}
	return deps, nil
}

// New wires services and handler on top of an already opened storage.
func New(cfg *config.Config, storage Storage) (*Dependencies, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}
	clock := service.NewClock(loc, nil)
	public := cfg.Public

	thread := service.NewThread(storage, &utils.ThreadValidator{TitleMaxLen: public.TitleMaxLen, BodyMaxLen: public.BodyMaxLen}, clock, public.PlaceholderName)
	comment := service.NewComment(storage, &utils.CommentValidator{NameMaxLen: public.NameMaxLen, BodyMaxLen: public.BodyMaxLen}, clock, public.PlaceholderName)

	templates, err := handler.LoadTemplates(handler.TemplatesFS, markdown.New())
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Handler: handler.New(cfg, thread, comment, storage, templates),
	}, nil
}
