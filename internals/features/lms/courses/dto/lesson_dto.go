package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LessonForm carries the multipart form fields of the lesson routes. Absent
// desc/link come through as "" and overwrite the stored values on update;
// that full-overwrite behavior is part of the wire contract.
type LessonForm struct {
	Title  string
	Number string
	Desc   string
	Link   string
}

func ParseLessonForm(c *fiber.Ctx) LessonForm {
	return LessonForm{
		Title:  strings.TrimSpace(c.FormValue("title")),
		Number: strings.TrimSpace(c.FormValue("number")),
		Desc:   c.FormValue("desc"),
		Link:   c.FormValue("link"),
	}
}

// Complete reports whether the required fields are present.
func (f LessonForm) Complete() bool {
	return f.Title != "" && f.Number != ""
}
