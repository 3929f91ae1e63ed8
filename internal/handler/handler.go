package handler

import (
	"context"
	"html/template"

	"github.com/itchan-dev/bbs/internal/config"
	"github.com/itchan-dev/bbs/internal/service"
)

// HealthChecker reports whether storage can serve requests.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	cfg       *config.Config
	thread    service.ThreadService
	comment   service.CommentService
	health    HealthChecker
	templates map[string]*template.Template
}

func New(cfg *config.Config, thread service.ThreadService, comment service.CommentService, health HealthChecker, templates map[string]*template.Template) *Handler {
	return &Handler{
		cfg:       cfg,
		thread:    thread,
		comment:   comment,
		health:    health,
		templates: templates,
	}
}
