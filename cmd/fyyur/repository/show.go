package repository

import (
	"context"
	"fyyur-backend/cmd/fyyur/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{
		db: db,
	}
}

func (r *ShowRepo) ListShows(ctx context.Context) ([]model.Show, error) {

	var shows []model.Show

	result := r.db.
		WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Order("start_time").
		Find(&shows)

	if result.Error != nil {
		return nil, result.Error
	}

	return shows, nil
}

// CreateShow inserts the show after checking, in the same transaction, that
// the venue and the artist it references exist.
func (r *ShowRepo) CreateShow(ctx context.Context, show *model.Show) error {

	return r.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			var n int64

			if err := tx.Model(&model.Venue{}).Where("id = ?", show.VenueID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrVenueNotFound
			}

			if err := tx.Model(&model.Artist{}).Where("id = ?", show.ArtistID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrArtistNotFound
			}

			return tx.Omit(clause.Associations).Create(show).Error
		})
}
