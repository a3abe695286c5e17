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

type IVenueRepo interface {
	ListVenues(ctx context.Context) ([]model.Venue, error)
	GetVenue(ctx context.Context, id uint) (model.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]model.Venue, error)
	CreateVenue(ctx context.Context, venue *model.Venue) error
	UpdateVenue(ctx context.Context, venue model.Venue) error
	DeleteVenue(ctx context.Context, id uint) error
}

type VenueAPI struct {
	venueRepo IVenueRepo
	now       func() time.Time
}

func NewVenueAPI(venueRepo IVenueRepo) *VenueAPI {
	return &VenueAPI{
		venueRepo: venueRepo,
		now:       time.Now,
	}
}

func (a *VenueAPI) Setup(g *echo.Group) {
	g.GET("/venues", a.listVenues)
	g.POST("/venues/search", a.searchVenues)
	g.GET("/venues/create", a.newVenue)
	g.POST("/venues/create", a.createVenue)
	g.GET("/venues/:id", a.showVenue)
	g.DELETE("/venues/:id", a.deleteVenue)
	g.GET("/venues/:id/edit", a.editVenue)
	g.POST("/venues/:id/edit", a.updateVenue)
}

func (a *VenueAPI) listVenues(c echo.Context) error {

	venues, err := a.venueRepo.ListVenues(c.Request().Context())
	if err != nil {
		return err
	}

	return render(c, http.StatusOK, "pages/venues.html", model.GroupAreas(venues, a.now()), "")
}

func (a *VenueAPI) searchVenues(c echo.Context) error {

	term := c.FormValue("search_term")
	venues, err := a.venueRepo.SearchVenues(c.Request().Context(), term)
	if err != nil {
		return err
	}

	view := searchView[model.VenueSummary]{
		SearchTerm: term,
		Results:    model.NewSearchResult(model.VenueSummaries(venues)),
	}
	return render(c, http.StatusOK, "pages/search_venues.html", view, "")
}

func (a *VenueAPI) showVenue(c echo.Context) error {

	id, err := idParam(c)
	if err != nil {
		return err
	}

	venue, err := a.venueRepo.GetVenue(c.Request().Context(), id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}

	return render(c, http.StatusOK, "pages/show_venue.html", model.NewVenueDetail(venue, a.now()), "")
}

func (a *VenueAPI) newVenue(c echo.Context) error {
	return render(c, http.StatusOK, "forms/new_venue.html", newFormView(0, forms.VenueForm{}, nil), "")
}

func (a *VenueAPI) createVenue(c echo.Context) error {

	var f forms.VenueForm
	if err := forms.Bind(c, &f); err != nil {
		ferrs, ok := fieldErrors(err)
		if !ok {
			return err
		}
		return render(
			c,
			http.StatusBadRequest,
			"forms/new_venue.html",
			newFormView(0, f, ferrs),
			fmt.Sprintf("Venue %s could not be listed. Please check the form.", f.Name),
		)
	}

	var venue model.Venue
	if err := f.Apply(&venue); err != nil {
		return err
	}

	if err := a.venueRepo.CreateVenue(c.Request().Context(), &venue); err != nil {
		logError(c, err, "create venue %q", f.Name)
		return render(
			c,
			http.StatusInternalServerError,
			"pages/home.html",
			nil,
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", f.Name),
		)
	}

	return render(
		c,
		http.StatusOK,
		"pages/home.html",
		venue.Summary(),
		fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
	)
}

func (a *VenueAPI) deleteVenue(c echo.Context) error {

	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, model.BaseResponse{Message: "venue not found"})
	}

	err = a.venueRepo.DeleteVenue(c.Request().Context(), id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return c.JSON(http.StatusNotFound, model.BaseResponse{Message: "venue not found"})
	}
	if err != nil {
		logError(c, err, "delete venue %d", id)
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: "An error occurred. Venue could not be deleted.",
			},
		)
	}

	msg := fmt.Sprintf("Venue %d was successfully deleted.", id)
	setFlash(c, msg)
	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: msg,
			Data:    echo.Map{"id": id},
		},
	)
}

func (a *VenueAPI) editVenue(c echo.Context) error {

	id, err := idParam(c)
	if err != nil {
		return err
	}

	venue, err := a.venueRepo.GetVenue(c.Request().Context(), id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}

	return render(c, http.StatusOK, "forms/edit_venue.html", newFormView(id, forms.NewVenueForm(venue), nil), "")
}

func (a *VenueAPI) updateVenue(c echo.Context) error {

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var f forms.VenueForm
	if err := forms.Bind(c, &f); err != nil {
		ferrs, ok := fieldErrors(err)
		if !ok {
			return err
		}
		return render(
			c,
			http.StatusBadRequest,
			"forms/edit_venue.html",
			newFormView(id, f, ferrs),
			fmt.Sprintf("Venue %s could not be updated. Please check the form.", f.Name),
		)
	}

	venue := model.Venue{ID: id}
	if err := f.Apply(&venue); err != nil {
		return err
	}

	location := fmt.Sprintf("/venues/%d", id)
	err = a.venueRepo.UpdateVenue(c.Request().Context(), venue)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		logError(c, err, "update venue %d", id)
		return redirect(c, http.StatusInternalServerError, location, fmt.Sprintf("An error occurred. Venue %s could not be updated.", f.Name))
	}

	return redirect(c, http.StatusOK, location, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
}
