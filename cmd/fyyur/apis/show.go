package apis

import (
	"context"
	"errors"
	"fyyur-backend/cmd/fyyur/forms"
	"fyyur-backend/cmd/fyyur/model"
	"fyyur-backend/cmd/fyyur/repository"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type IShowRepo interface {
	ListShows(ctx context.Context) ([]model.Show, error)
	CreateShow(ctx context.Context, show *model.Show) error
}

type ShowAPI struct {
	showRepo IShowRepo
	now      func() time.Time
}

func NewShowAPI(showRepo IShowRepo) *ShowAPI {
	return &ShowAPI{
		showRepo: showRepo,
		now:      time.Now,
	}
}

func (a *ShowAPI) Setup(g *echo.Group) {
	g.GET("/shows", a.listShows)
	g.GET("/shows/create", a.newShow)
	g.POST("/shows/create", a.createShow)
}

func (a *ShowAPI) listShows(c echo.Context) error {

	shows, err := a.showRepo.ListShows(c.Request().Context())
	if err != nil {
		return err
	}

	return render(c, http.StatusOK, "pages/shows.html", model.ShowViews(shows), "")
}

func (a *ShowAPI) newShow(c echo.Context) error {
	f := forms.ShowForm{
		StartTime: a.now().UTC().Format(forms.ShowTimeLayouts[0]),
	}
	return render(c, http.StatusOK, "forms/new_show.html", newFormView(0, f, nil), "")
}

func (a *ShowAPI) createShow(c echo.Context) error {

	var f forms.ShowForm
	if err := forms.Bind(c, &f); err != nil {
		ferrs, ok := fieldErrors(err)
		if !ok {
			return err
		}
		return a.invalidShow(c, f, ferrs)
	}

	show, err := f.Show()
	if err != nil {
		return a.invalidShow(c, f, forms.FieldErrors{{Field: "start_time", Message: err.Error()}})
	}

	err = a.showRepo.CreateShow(c.Request().Context(), &show)
	switch {
	case errors.Is(err, repository.ErrVenueNotFound):
		return a.invalidShow(c, f, forms.FieldErrors{{Field: "venue_id", Message: "No venue with this id."}})
	case errors.Is(err, repository.ErrArtistNotFound):
		return a.invalidShow(c, f, forms.FieldErrors{{Field: "artist_id", Message: "No artist with this id."}})
	case err != nil:
		logError(c, err, "create show venue=%d artist=%d", f.VenueID, f.ArtistID)
		return render(
			c,
			http.StatusInternalServerError,
			"pages/home.html",
			nil,
			"An error occurred. Show could not be listed.",
		)
	}

	return render(c, http.StatusOK, "pages/home.html", show.View(), "Show was successfully listed!")
}

func (a *ShowAPI) invalidShow(c echo.Context, f forms.ShowForm, ferrs forms.FieldErrors) error {
	return render(
		c,
		http.StatusBadRequest,
		"forms/new_show.html",
		newFormView(0, f, ferrs),
		"Show could not be listed. Please check the form.",
	)
}
