// Package forms binds and validates the HTML form submissions for venues,
// artists and shows.
package forms

import (
	"errors"
	"fmt"
	"fyyur-backend/cmd/fyyur/model"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/labstack/echo/v4"
)

// ShowTimeLayouts are the accepted start_time formats, the first one being
// the canonical rendering.
var ShowTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// For returns the messages reported for one field.
func (e FieldErrors) For(field string) []string {
	var out []string
	for _, fe := range e {
		if fe.Field == field {
			out = append(out, fe.Message)
		}
	}
	return out
}

// Validator adapts validator/v10 to echo.Validator.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	must(v.RegisterValidation("notblank", validators.NotBlank))
	must(v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
		return model.State(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return model.Genre(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("showtime", func(fl validator.FieldLevel) bool {
		_, err := ParseShowTime(fl.Field().String())
		return err == nil
	}))

	return &Validator{v: v}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func (cv *Validator) Validate(i any) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldName(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldName drops the struct prefix and the slice index so genres[2] reports
// as genres.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank", "min":
		return "This field is required."
	case "url":
		return "Invalid URL."
	case "state":
		return oneOf(model.States)
	case "genre":
		return oneOf(model.Genres)
	case "showtime":
		return "Not a valid datetime value."
	case "gt":
		return "Must be a positive number."
	}
	return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
}

func oneOf[T ~string](values []T) string {
	s := make([]string, 0, len(values))
	for _, v := range values {
		s = append(s, string(v))
	}
	return fmt.Sprintf("Invalid value, must be one of %s.", strings.Join(s, ", "))
}

// Bind fills dst from the request and validates it. Binding failures (for
// instance a non numeric id) are reported as field errors too.
func Bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return FieldErrors{{Field: "form", Message: fmt.Sprint(he.Message)}}
		}
		return err
	}
	return c.Validate(dst)
}

func ParseShowTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range ShowTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", s)
}
