package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/bbs/internal/domain"
	internal_errors "github.com/itchan-dev/bbs/internal/errors"
)

const maxFormSize = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// threadIdParam reads {id} from the route. Anything that is not a positive
// integer cannot name a thread, so it is reported as not found.
func threadIdParam(r *http.Request) (domain.ThreadId, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, internal_errors.NotFound("Thread not found")
	}
	return id, nil
}

// parseForm limits the body size and parses the urlencoded form.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseForm(); err != nil {
		return internal_errors.BadRequest("Invalid form data")
	}
	return nil
}

// validateForm checks `validate` tags; a missing required field is a 400.
func validateForm(form any) error {
	if err := validate.Struct(form); err != nil {
		return internal_errors.BadRequest("Required fields missing")
	}
	return nil
}
