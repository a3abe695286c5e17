package apis

import (
	"context"
	"errors"
	"fmt"
	"fyyur-backend/cmd/fyyur/forms"
	"fyyur-backend/cmd/fyyur/model"
	"fyyur-backend/cmd/fyyur/repository"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type IArtistRepo interface {
	ListArtists(ctx context.Context) ([]model.Artist, error)
	GetArtist(ctx context.Context, id uint) (model.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]model.Artist, error)
	CreateArtist(ctx context.Context, artist *model.Artist) error
	UpdateArtist(ctx context.Context, artist model.Artist) error
	DeleteArtist(ctx context.Context, id uint) error
}

type ArtistAPI struct {
	artistRepo IArtistRepo
	now        func() time.Time
}

func NewArtistAPI(artistRepo IArtistRepo) *ArtistAPI {
	return &ArtistAPI{
		artistRepo: artistRepo,
		now:        time.Now,
	}
}

func (a *ArtistAPI) Setup(g *echo.Group) {
	g.GET("/artists", a.listArtists)
	g.POST("/artists/search", a.searchArtists)
	g.GET("/artists/create", a.newArtist)
	g.POST("/artists/create", a.createArtist)
	g.GET("/artists/:id", a.showArtist)
	g.DELETE("/artists/:id", a.deleteArtist)
	g.GET("/artists/:id/edit", a.editArtist)
	g.POST("/artists/:id/edit", a.updateArtist)
}

func (a *ArtistAPI) listArtists(c echo.Context) error {

	artists, err := a.artistRepo.ListArtists(c.Request().Context())
	if err != nil {
		return err
	}

	return render(c, http.StatusOK, "pages/artists.html", model.ArtistSummaries(artists), "")
}

func (a *ArtistAPI) searchArtists(c echo.Context) error {

	term := c.FormValue("search_term")
	artists, err := a.artistRepo.SearchArtists(c.Request().Context(), term)
	if err != nil {
		return err
	}

	view := searchView[model.ArtistSummary]{
		SearchTerm: term,
		Results:    model.NewSearchResult(model.ArtistSummaries(artists)),
	}
	return render(c, http.StatusOK, "pages/search_artists.html", view, "")
}

func (a *ArtistAPI) showArtist(c echo.Context) error {

	id, err := idParam(c)
	if err != nil {
		return err
	}

	artist, err := a.artistRepo.GetArtist(c.Request().Context(), id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}

	return render(c, http.StatusOK, "pages/show_artist.html", model.NewArtistDetail(artist, a.now()), "")
}

func (a *ArtistAPI) newArtist(c echo.Context) error {
	return render(c, http.StatusOK, "forms/new_artist.html", newFormView(0, forms.ArtistForm{}, nil), "")
}

func (a *ArtistAPI) createArtist(c echo.Context) error {

	var f forms.ArtistForm
	if err := forms.Bind(c, &f); err != nil {
		ferrs, ok := fieldErrors(err)
		if !ok {
			return err
		}
		return render(
			c,
			http.StatusBadRequest,
			"forms/new_artist.html",
			newFormView(0, f, ferrs),
			fmt.Sprintf("Artist %s could not be listed. Please check the form.", f.Name),
		)
	}

	var artist model.Artist
	if err := f.Apply(&artist); err != nil {
		return err
	}

	if err := a.artistRepo.CreateArtist(c.Request().Context(), &artist); err != nil {
		logError(c, err, "create artist %q", f.Name)
		return render(
			c,
			http.StatusInternalServerError,
			"pages/home.html",
			nil,
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", f.Name),
		)
	}

	return render(
		c,
		http.StatusOK,
		"pages/home.html",
		artist.Summary(),
		fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
	)
}

func (a *ArtistAPI) deleteArtist(c echo.Context) error {

	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, model.BaseResponse{Message: "artist not found"})
	}

	err = a.artistRepo.DeleteArtist(c.Request().Context(), id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return c.JSON(http.StatusNotFound, model.BaseResponse{Message: "artist not found"})
	}
	if err != nil {
		logError(c, err, "delete artist %d", id)
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: "An error occurred. Artist could not be deleted.",
			},
		)
	}

	msg := fmt.Sprintf("Artist %d was successfully deleted.", id)
	setFlash(c, msg)
	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: msg,
			Data:    echo.Map{"id": id},
		},
	)
}

func (a *ArtistAPI) editArtist(c echo.Context) error {

	id, err := idParam(c)
	if err != nil {
		return err
	}

	artist, err := a.artistRepo.GetArtist(c.Request().Context(), id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}

	return render(c, http.StatusOK, "forms/edit_artist.html", newFormView(id, forms.NewArtistForm(artist), nil), "")
}

func (a *ArtistAPI) updateArtist(c echo.Context) error {

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var f forms.ArtistForm
	if err := forms.Bind(c, &f); err != nil {
		ferrs, ok := fieldErrors(err)
		if !ok {
			return err
		}
		return render(
			c,
			http.StatusBadRequest,
			"forms/edit_artist.html",
			newFormView(id, f, ferrs),
			fmt.Sprintf("Artist %s could not be updated. Please check the form.", f.Name),
		)
	}

	artist := model.Artist{ID: id}
	if err := f.Apply(&artist); err != nil {
		return err
	}

	location := fmt.Sprintf("/artists/%d", id)
	err = a.artistRepo.UpdateArtist(c.Request().Context(), artist)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		logError(c, err, "update artist %d", id)
		return redirect(c, http.StatusInternalServerError, location, fmt.Sprintf("An error occurred. Artist %s could not be updated.", f.Name))
	}

	return redirect(c, http.StatusOK, location, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
}
