package model

type Artist struct {
	ID                 uint     `gorm:"column:id;primaryKey" json:"id"`
	Name               string   `gorm:"column:name;not null" json:"name"`
	City               string   `gorm:"column:city;size:120" json:"city"`
	State              string   `gorm:"column:state;size:120" json:"state"`
	Genres             []string `gorm:"column:genres;type:text;serializer:json" json:"genres"`
	Address            string   `gorm:"column:address;size:120" json:"address"`
	Phone              string   `gorm:"column:phone;size:120" json:"phone"`
	ImageLink          string   `gorm:"column:image_link;size:500" json:"image_link"`
	Website            string   `gorm:"column:website;size:120" json:"website"`
	SeekingVenue       bool     `gorm:"column:seeking_venue" json:"seeking_venue"`
	FacebookLink       string   `gorm:"column:facebook_link;size:120" json:"facebook_link"`
	SeekingDescription string   `gorm:"column:seeking_description;size:500" json:"seeking_description"`

	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"-"`
}

func (m *Artist) TableName() string {
	return "artists"
}
