package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	internal_errors "github.com/itchan-dev/bbs/internal/errors"
	"github.com/itchan-dev/bbs/internal/logger"
)

// checkNotModified handles HTTP conditional GET requests. Last-Modified is
// informational only: it has second precision, so two writes within one second
// would share it. Freshness is decided by the etag against If-None-Match.
// Returns true if a 304 Not Modified response was sent (caller should return early).
func checkNotModified(w http.ResponseWriter, r *http.Request, etag string, lastModified time.Time) bool {
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("ETag", etag)
	w.Header().Set("Last-Modified", lastModified.UTC().Format(http.TimeFormat))

	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

// etagMatches applies the weak comparison of If-None-Match.
func etagMatches(ifNoneMatch, etag string) bool {
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

type CommonTemplateData struct {
	Timezone        string
	PlaceholderName string
	TitleMaxLen     int
	BodyMaxLen      int
	NameMaxLen      int
}

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

type errorPageData struct {
	Status     int
	StatusText string
	Message    string
}

func (h *Handler) commonTemplateData() CommonTemplateData {
	return CommonTemplateData{
		Timezone:        h.cfg.Public.Timezone,
		PlaceholderName: h.cfg.Public.PlaceholderName,
		TitleMaxLen:     h.cfg.Public.TitleMaxLen,
		BodyMaxLen:      h.cfg.Public.BodyMaxLen,
		NameMaxLen:      h.cfg.Public.NameMaxLen,
	}
}

func (h *Handler) renderTemplate(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := h.templates[name]
	if !ok {
		logger.Log.Error("template not found", "template", name)
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	wrapped := TemplateData{
		Data:   data,
		Common: h.commonTemplateData(),
	}

	// Render into a buffer so a failing template never produces a half page.
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// writeError maps err to a response: 404 gets the error page, other client
// errors plain text, everything else a logged 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := internal_errors.StatusCode(err)
	switch {
	case status == http.StatusNotFound:
		h.renderTemplate(w, status, "error.html", errorPageData{
			Status:     status,
			StatusText: http.StatusText(status),
			Message:    err.Error(),
		})
	case status < http.StatusInternalServerError:
		http.Error(w, err.Error(), status)
	default:
		logger.Log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NotFound is the router fallback for unknown paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, internal_errors.NotFound("Page not found"))
}

func writeJSON(w http.ResponseWriter, v any) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		logger.Log.Error("failed to encode json", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// writeJSONError is writeError for the JSON API.
func writeJSONError(w http.ResponseWriter, r *http.Request, err error) {
	status := internal_errors.StatusCode(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = "Internal Server Error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
