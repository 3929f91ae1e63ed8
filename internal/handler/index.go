package handler

import (
	"net/http"

	"github.com/itchan-dev/bbs/internal/domain"
)

func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var templateData struct {
		Threads []domain.ThreadMetadata
	}
	templateData.Threads = threads

	h.renderTemplate(w, http.StatusOK, "index.html", templateData)
}
