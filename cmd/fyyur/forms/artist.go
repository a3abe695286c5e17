package forms

import (
	"fyyur-backend/cmd/fyyur/model"

	"github.com/jinzhu/copier"
)

type ArtistForm struct {
	Name               string   `form:"name" json:"name" validate:"required,notblank"`
	City               string   `form:"city" json:"city" validate:"required,notblank"`
	State              string   `form:"state" json:"state" validate:"required,state"`
	Address            string   `form:"address" json:"address" validate:"required,notblank"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url"`
	Genres             []string `form:"genres" json:"genres" validate:"dive,genre"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url"`
	Website            string   `form:"website" json:"website" validate:"omitempty,url"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func NewArtistForm(a model.Artist) ArtistForm {
	var f ArtistForm
	_ = copier.Copy(&f, &a)
	return f
}

func (f ArtistForm) Apply(a *model.Artist) error {
	if err := copier.Copy(a, &f); err != nil {
		return err
	}
	a.Genres = genreList(f.Genres)
	return nil
}
