package handler

import (
	"net/http"

	"github.com/itchan-dev/bbs/internal/domain"
)

type ThreadListResponse struct {
	Threads []domain.ThreadMetadata `json:"threads"`
}

type ThreadResponse struct {
	domain.Thread
}

func (h *Handler) ListThreadsJSON(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List(r.Context())
	if err != nil {
		writeJSONError(w, r, err)
		return
	}
	if threads == nil {
		threads = []domain.ThreadMetadata{}
	}
	writeJSON(w, ThreadListResponse{Threads: threads})
}

func (h *Handler) GetThreadJSON(w http.ResponseWriter, r *http.Request) {
	threadId, err := threadIdParam(r)
	if err != nil {
		writeJSONError(w, r, err)
		return
	}

	thread, err := h.thread.Get(r.Context(), threadId)
	if err != nil {
		writeJSONError(w, r, err)
		return
	}
	if thread.Comments == nil {
		thread.Comments = []*domain.Comment{}
	}
	writeJSON(w, ThreadResponse{Thread: thread})
}
