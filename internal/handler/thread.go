package handler

import (
	"fmt"
	"net/http"

	"github.com/itchan-dev/bbs/internal/domain"
)

func (h *Handler) ThreadGetHandler(w http.ResponseWriter, r *http.Request) {
	threadId, err := threadIdParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	thread, err := h.thread.Get(r.Context(), threadId)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if checkNotModified(w, r, threadETag(&thread), thread.LastModified()) {
		return
	}

	var templateData struct {
		Thread domain.Thread
	}
	templateData.Thread = thread

	h.renderTemplate(w, http.StatusOK, "thread.html", templateData)
}

// threadETag changes on every comment appended to the thread.
func threadETag(thread *domain.Thread) string {
	var lastCommentId domain.CommentId
	if n := len(thread.Comments); n > 0 {
		lastCommentId = thread.Comments[n-1].Id
	}
	return fmt.Sprintf(`"%d-%d-%d"`, thread.Id, len(thread.Comments), lastCommentId)
}

type commentForm struct {
	Name string
	Body string `validate:"required"`
}

// POST handler for appending a comment to a thread
func (h *Handler) ThreadPostHandler(w http.ResponseWriter, r *http.Request) {
	threadId, err := threadIdParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}
	form := commentForm{
		Name: r.PostForm.Get("name"),
		Body: r.PostForm.Get("body"),
	}
	if err := validateForm(form); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := h.comment.Create(r.Context(), threadId, form.Name, form.Body); err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/thread/%d", threadId), http.StatusSeeOther)
}
