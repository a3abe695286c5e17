package forms

import (
	"fyyur-backend/cmd/fyyur/model"
	"slices"

	"github.com/jinzhu/copier"
)

type VenueForm struct {
	Name               string   `form:"name" json:"name" validate:"required,notblank"`
	City               string   `form:"city" json:"city" validate:"required,notblank"`
	State              string   `form:"state" json:"state" validate:"required,state"`
	Address            string   `form:"address" json:"address" validate:"required,notblank"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url"`
	Genres             []string `form:"genres" json:"genres" validate:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url"`
	Website            string   `form:"website" json:"website" validate:"omitempty,url"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func NewVenueForm(v model.Venue) VenueForm {
	var f VenueForm
	_ = copier.Copy(&f, &v)
	return f
}

// Apply overwrites every editable field of v with the form values.
func (f VenueForm) Apply(v *model.Venue) error {
	if err := copier.Copy(v, &f); err != nil {
		return err
	}
	v.Genres = genreList(f.Genres)
	return nil
}

func genreList(g []string) []string {
	if g == nil {
		return []string{}
	}
	return slices.Clone(g)
}
