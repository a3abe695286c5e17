// Package seed loads venues, artists and shows from CSV files through the same
// validation and repository calls as the web forms.
//
// The directory may hold venues.csv, artists.csv and shows.csv, each with a
// header row. Genres are separated by "|". The venue and artist columns of
// shows.csv refer to the 1-based row of the venue or artist in its own file;
// when that file is absent they are taken as database ids.
//
// LoadDB imports everything in one transaction, so a failing row leaves the
// database as it was. Load on its own writes each row as it goes.
package seed

import (
	"context"
	"errors"
	"fmt"
	"fyyur-backend/cmd/fyyur/forms"
	"fyyur-backend/cmd/fyyur/model"
	"fyyur-backend/cmd/fyyur/repository"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/goforj/godump"
	"gorm.io/gorm"
)

const (
	VenuesFile  = "venues.csv"
	ArtistsFile = "artists.csv"
	ShowsFile   = "shows.csv"
)

type VenueRow struct {
	Name               string `csv:"name"`
	City               string `csv:"city"`
	State              string `csv:"state"`
	Address            string `csv:"address"`
	Phone              string `csv:"phone"`
	Genres             string `csv:"genres"`
	ImageLink          string `csv:"image_link"`
	FacebookLink       string `csv:"facebook_link"`
	Website            string `csv:"website"`
	SeekingTalent      bool   `csv:"seeking_talent"`
	SeekingDescription string `csv:"seeking_description"`
}

func (r VenueRow) Form() forms.VenueForm {
	return forms.VenueForm{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Address:            r.Address,
		Phone:              r.Phone,
		Genres:             splitGenres(r.Genres),
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		Website:            r.Website,
		SeekingTalent:      r.SeekingTalent,
		SeekingDescription: r.SeekingDescription,
	}
}

type ArtistRow struct {
	Name               string `csv:"name"`
	City               string `csv:"city"`
	State              string `csv:"state"`
	Address            string `csv:"address"`
	Phone              string `csv:"phone"`
	Genres             string `csv:"genres"`
	ImageLink          string `csv:"image_link"`
	FacebookLink       string `csv:"facebook_link"`
	Website            string `csv:"website"`
	SeekingVenue       bool   `csv:"seeking_venue"`
	SeekingDescription string `csv:"seeking_description"`
}

func (r ArtistRow) Form() forms.ArtistForm {
	return forms.ArtistForm{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Address:            r.Address,
		Phone:              r.Phone,
		Genres:             splitGenres(r.Genres),
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		Website:            r.Website,
		SeekingVenue:       r.SeekingVenue,
		SeekingDescription: r.SeekingDescription,
	}
}

type ShowRow struct {
	Venue     uint   `csv:"venue"`
	Artist    uint   `csv:"artist"`
	StartTime string `csv:"start_time"`
}

func splitGenres(s string) []string {
	out := []string{}
	for _, g := range strings.Split(s, "|") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

type IVenueCreator interface {
	CreateVenue(ctx context.Context, venue *model.Venue) error
}

type IArtistCreator interface {
	CreateArtist(ctx context.Context, artist *model.Artist) error
}

type IShowCreator interface {
	CreateShow(ctx context.Context, show *model.Show) error
}

type Repos struct {
	Venues  IVenueCreator
	Artists IArtistCreator
	Shows   IShowCreator
}

// Result counts the records created per file.
type Result struct {
	Venues  int
	Artists int
	Shows   int
}

type Loader struct {
	repos     Repos
	validator *forms.Validator

	// Debug dumps the decoded rows before they are imported.
	Debug bool
}

func NewLoader(repos Repos) *Loader {
	return &Loader{
		repos:     repos,
		validator: forms.NewValidator(),
	}
}

func Load(ctx context.Context, dir string, repos Repos) (Result, error) {
	return NewLoader(repos).Load(ctx, dir)
}

// LoadDB runs Load against repositories bound to a single transaction on db.
func LoadDB(ctx context.Context, db *gorm.DB, dir string, debug bool) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l := NewLoader(Repos{
			Venues:  repository.NewVenueRepo(tx),
			Artists: repository.NewArtistRepo(tx),
			Shows:   repository.NewShowRepo(tx),
		})
		l.Debug = debug

		var err error
		res, err = l.Load(ctx, dir)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// RowError points at the CSV line that could not be imported.
type RowError struct {
	File string
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// line maps a 0-based data row to its line in the file, after the header.
func line(i int) int {
	return i + 2
}

func (l *Loader) Load(ctx context.Context, dir string) (Result, error) {
	var res Result

	var venueRows []VenueRow
	venuesFound, err := l.read(dir, VenuesFile, &venueRows)
	if err != nil {
		return res, err
	}
	venueIDs := make([]uint, 0, len(venueRows))
	for i, row := range venueRows {
		f := row.Form()
		if err := l.validator.Validate(f); err != nil {
			return res, &RowError{VenuesFile, line(i), err}
		}

		var venue model.Venue
		if err := f.Apply(&venue); err != nil {
			return res, &RowError{VenuesFile, line(i), err}
		}
		if err := l.repos.Venues.CreateVenue(ctx, &venue); err != nil {
			return res, &RowError{VenuesFile, line(i), err}
		}
		venueIDs = append(venueIDs, venue.ID)
		res.Venues++
	}

	var artistRows []ArtistRow
	artistsFound, err := l.read(dir, ArtistsFile, &artistRows)
	if err != nil {
		return res, err
	}
	artistIDs := make([]uint, 0, len(artistRows))
	for i, row := range artistRows {
		f := row.Form()
		if err := l.validator.Validate(f); err != nil {
			return res, &RowError{ArtistsFile, line(i), err}
		}

		var artist model.Artist
		if err := f.Apply(&artist); err != nil {
			return res, &RowError{ArtistsFile, line(i), err}
		}
		if err := l.repos.Artists.CreateArtist(ctx, &artist); err != nil {
			return res, &RowError{ArtistsFile, line(i), err}
		}
		artistIDs = append(artistIDs, artist.ID)
		res.Artists++
	}

	var showRows []ShowRow
	if _, err := l.read(dir, ShowsFile, &showRows); err != nil {
		return res, err
	}
	for i, row := range showRows {
		venueID, err := resolve(row.Venue, venueIDs, venuesFound)
		if err != nil {
			return res, &RowError{ShowsFile, line(i), fmt.Errorf("venue: %w", err)}
		}
		artistID, err := resolve(row.Artist, artistIDs, artistsFound)
		if err != nil {
			return res, &RowError{ShowsFile, line(i), fmt.Errorf("artist: %w", err)}
		}

		f := forms.ShowForm{
			ArtistID:  artistID,
			VenueID:   venueID,
			StartTime: row.StartTime,
		}
		if err := l.validator.Validate(f); err != nil {
			return res, &RowError{ShowsFile, line(i), err}
		}

		show, err := f.Show()
		if err != nil {
			return res, &RowError{ShowsFile, line(i), err}
		}
		if err := l.repos.Shows.CreateShow(ctx, &show); err != nil {
			return res, &RowError{ShowsFile, line(i), err}
		}
		res.Shows++
	}

	return res, nil
}

// read decodes one CSV file into rows. A missing file is not an error.
func (l *Loader) read(dir, name string, rows any) (bool, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	if err := gocsv.Unmarshal(f, rows); err != nil {
		return true, fmt.Errorf("decode %s: %w", name, err)
	}

	if l.Debug {
		godump.Dump(rows)
	}

	return true, nil
}

func resolve(ref uint, ids []uint, fromFile bool) (uint, error) {
	if !fromFile {
		return ref, nil
	}
	if ref == 0 || int(ref) > len(ids) {
		return 0, fmt.Errorf("row %d does not exist", ref)
	}
	return ids[ref-1], nil
}
