package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/itchan-dev/bbs/internal/errors"
)

type ThreadValidator struct {
	TitleMaxLen int
	BodyMaxLen  int
}

func (v *ThreadValidator) Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.BadRequest("Title is required")
	}
	if utf8.RuneCountInString(title) > v.TitleMaxLen {
		return errors.BadRequest("Title is too long")
	}
	return nil
}

func (v *ThreadValidator) Body(body string) error {
	return validateBody(body, v.BodyMaxLen)
}

type CommentValidator struct {
	NameMaxLen int
	BodyMaxLen int
}

func (v *CommentValidator) Name(name string) error {
	if utf8.RuneCountInString(name) > v.NameMaxLen {
		return errors.BadRequest("Name is too long")
	}
	return nil
}

func (v *CommentValidator) Body(body string) error {
	return validateBody(body, v.BodyMaxLen)
}

func validateBody(body string, maxLen int) error {
	if strings.TrimSpace(body) == "" {
		return errors.BadRequest("Body is required")
	}
	if utf8.RuneCountInString(body) > maxLen {
		return errors.BadRequest("Body is too long")
	}
	return nil
}
