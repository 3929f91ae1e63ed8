package handler

import (
	"fmt"
	"net/http"
)

func (h *Handler) NewThreadGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, http.StatusOK, "new.html", nil)
}

type threadForm struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`
}

func (h *Handler) NewThreadPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}
	form := threadForm{
		Title: r.PostForm.Get("title"),
		Body:  r.PostForm.Get("body"),
	}
	if err := validateForm(form); err != nil {
		h.writeError(w, r, err)
		return
	}

	threadId, err := h.thread.Create(r.Context(), form.Title, form.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/thread/%d", threadId), http.StatusSeeOther)
}
