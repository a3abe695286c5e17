package model

type Venue struct {
	ID                 uint     `gorm:"column:id;primaryKey" json:"id"`
	Name               string   `gorm:"column:name;not null" json:"name"`
	Genres             []string `gorm:"column:genres;type:text;serializer:json" json:"genres"`
	City               string   `gorm:"column:city;size:120" json:"city"`
	State              string   `gorm:"column:state;size:120" json:"state"`
	Address            string   `gorm:"column:address;size:120" json:"address"`
	Phone              string   `gorm:"column:phone;size:120" json:"phone"`
	ImageLink          string   `gorm:"column:image_link;size:500" json:"image_link"`
	FacebookLink       string   `gorm:"column:facebook_link;size:120" json:"facebook_link"`
	SeekingTalent      bool     `gorm:"column:seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `gorm:"column:seeking_description;size:500" json:"seeking_description"`
	Website            string   `gorm:"column:website;size:120" json:"website"`

	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
}

func (m *Venue) TableName() string {
	return "venues"
}
