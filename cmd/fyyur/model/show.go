package model

import "time"

// Show links one artist to one venue at a start time. Whether it is upcoming
// or past is decided when it is read, see SplitShows.
type Show struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	StartTime time.Time `gorm:"column:start_time;not null" json:"start_time"`
	VenueID   uint      `gorm:"column:venue_id;not null;index" json:"venue_id"`
	ArtistID  uint      `gorm:"column:artist_id;not null;index" json:"artist_id"`

	Venue  *Venue  `gorm:"foreignKey:VenueID" json:"-"`
	Artist *Artist `gorm:"foreignKey:ArtistID" json:"-"`
}

func (m *Show) TableName() string {
	return "shows"
}
