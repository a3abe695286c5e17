package repository

import (
	"context"
	"errors"
	"fyyur-backend/cmd/fyyur/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{
		db: db,
	}
}

func (r *ArtistRepo) ListArtists(ctx context.Context) ([]model.Artist, error) {

	var artists []model.Artist

	result := r.db.
		WithContext(ctx).
		Preload("Shows").
		Order("name").
		Find(&artists)

	if result.Error != nil {
		return nil, result.Error
	}

	return artists, nil
}

func (r *ArtistRepo) GetArtist(ctx context.Context, id uint) (model.Artist, error) {

	var artist model.Artist

	result := r.db.
		WithContext(ctx).
		Preload("Shows", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time")
		}).
		Preload("Shows.Artist").
		Preload("Shows.Venue").
		First(&artist, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return model.Artist{}, ErrArtistNotFound
	}
	if result.Error != nil {
		return model.Artist{}, result.Error
	}

	return artist, nil
}

func (r *ArtistRepo) SearchArtists(ctx context.Context, term string) ([]model.Artist, error) {

	var artists []model.Artist

	result := r.db.
		WithContext(ctx).
		Where("name ILIKE ?", containsPattern(term)).
		Order("name").
		Find(&artists)

	if result.Error != nil {
		return nil, result.Error
	}

	return artists, nil
}

func (r *ArtistRepo) CreateArtist(ctx context.Context, artist *model.Artist) error {

	result := r.db.
		WithContext(ctx).
		Omit(clause.Associations).
		Create(artist)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *ArtistRepo) UpdateArtist(ctx context.Context, artist model.Artist) error {

	result := r.db.
		WithContext(ctx).
		Model(&model.Artist{ID: artist.ID}).
		Select("*").
		Omit("id", clause.Associations).
		Updates(&artist)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArtistNotFound
	}

	return nil
}

// DeleteArtist removes the artist and its shows in one transaction.
func (r *ArtistRepo) DeleteArtist(ctx context.Context, id uint) error {

	return r.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("artist_id = ?", id).Delete(&model.Show{}).Error; err != nil {
				return err
			}

			result := tx.Delete(&model.Artist{}, id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrArtistNotFound
			}

			return nil
		})
}
