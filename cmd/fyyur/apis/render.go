package apis

import (
	"errors"
	"fmt"
	"fyyur-backend/cmd/fyyur/forms"
	"fyyur-backend/cmd/fyyur/model"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// Page is the value handed to every HTML template.
type Page struct {
	Flash string
	Data  any
}

type formView struct {
	ID     uint              `json:"id,omitempty"`
	Form   any               `json:"form"`
	Errors forms.FieldErrors `json:"errors,omitempty"`
	States []model.State     `json:"-"`
	Genres []model.Genre     `json:"-"`
}

func newFormView(id uint, form any, errs forms.FieldErrors) formView {
	return formView{
		ID:     id,
		Form:   form,
		Errors: errs,
		States: model.States,
		Genres: model.Genres,
	}
}

type searchView[T any] struct {
	SearchTerm string                `json:"search_term"`
	Results    model.SearchResult[T] `json:"results"`
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// render writes the named template, or a BaseResponse when the client asked
// for JSON. An empty flash falls back to the one left by a redirect.
func render(c echo.Context, status int, name string, data any, flash string) error {
	if flash == "" {
		flash = popFlash(c)
	}

	if wantsJSON(c) {
		msg := flash
		if msg == "" {
			msg = http.StatusText(status)
			if status < http.StatusBadRequest {
				msg = "success"
			}
		}
		return c.JSON(
			status,
			model.BaseResponse{
				Message: msg,
				Data:    data,
			},
		)
	}

	return c.Render(status, name, Page{Flash: flash, Data: data})
}

// redirect sends browsers to location with a flash message for the next
// page. JSON clients get status with the message and location directly.
func redirect(c echo.Context, status int, location, flash string) error {
	if wantsJSON(c) {
		return c.JSON(
			status,
			model.BaseResponse{
				Message: flash,
				Data:    echo.Map{"location": location},
			},
		)
	}

	setFlash(c, flash)
	return c.Redirect(http.StatusSeeOther, location)
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, echo.ErrNotFound
	}
	return uint(id), nil
}

func fieldErrors(err error) (forms.FieldErrors, bool) {
	var ferrs forms.FieldErrors
	if errors.As(err, &ferrs) {
		return ferrs, true
	}
	return nil, false
}

func logError(c echo.Context, err error, format string, args ...any) {
	rid := c.Response().Header().Get(echo.HeaderXRequestID)
	c.Logger().Errorf("[%s] %s: %+v", rid, fmt.Sprintf(format, args...), err)
}
