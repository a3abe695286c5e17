package repository

import (
	"context"
	"errors"
	"fyyur-backend/cmd/fyyur/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{
		db: db,
	}
}

// ListVenues returns every venue with its shows loaded, so callers can count
// upcoming shows without another query per venue.
func (r *VenueRepo) ListVenues(ctx context.Context) ([]model.Venue, error) {

	var venues []model.Venue

	result := r.db.
		WithContext(ctx).
		Preload("Shows").
		Order("state, city, name").
		Find(&venues)

	if result.Error != nil {
		return nil, result.Error
	}

	return venues, nil
}

func (r *VenueRepo) GetVenue(ctx context.Context, id uint) (model.Venue, error) {

	var venue model.Venue

	result := r.db.
		WithContext(ctx).
		Preload("Shows", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time")
		}).
		Preload("Shows.Artist").
		Preload("Shows.Venue").
		First(&venue, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return model.Venue{}, ErrVenueNotFound
	}
	if result.Error != nil {
		return model.Venue{}, result.Error
	}

	return venue, nil
}

func (r *VenueRepo) SearchVenues(ctx context.Context, term string) ([]model.Venue, error) {

	var venues []model.Venue

	result := r.db.
		WithContext(ctx).
		Where("name ILIKE ?", containsPattern(term)).
		Order("name").
		Find(&venues)

	if result.Error != nil {
		return nil, result.Error
	}

	return venues, nil
}

func (r *VenueRepo) CreateVenue(ctx context.Context, venue *model.Venue) error {

	result := r.db.
		WithContext(ctx).
		Omit(clause.Associations).
		Create(venue)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

// UpdateVenue overwrites every column of the venue identified by venue.ID.
func (r *VenueRepo) UpdateVenue(ctx context.Context, venue model.Venue) error {

	result := r.db.
		WithContext(ctx).
		Model(&model.Venue{ID: venue.ID}).
		Select("*").
		Omit("id", clause.Associations).
		Updates(&venue)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}

	return nil
}

// DeleteVenue removes the venue and its shows in one transaction.
func (r *VenueRepo) DeleteVenue(ctx context.Context, id uint) error {

	return r.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("venue_id = ?", id).Delete(&model.Show{}).Error; err != nil {
				return err
			}

			result := tx.Delete(&model.Venue{}, id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrVenueNotFound
			}

			return nil
		})
}
