package forms

import "fyyur-backend/cmd/fyyur/model"

type ShowForm struct {
	ArtistID  uint   `form:"artist_id" json:"artist_id" validate:"required,gt=0"`
	VenueID   uint   `form:"venue_id" json:"venue_id" validate:"required,gt=0"`
	StartTime string `form:"start_time" json:"start_time" validate:"required,showtime"`
}

func (f ShowForm) Show() (model.Show, error) {
	start, err := ParseShowTime(f.StartTime)
	if err != nil {
		return model.Show{}, err
	}
	return model.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: start,
	}, nil
}
