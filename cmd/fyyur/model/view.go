package model

import (
	"cmp"
	"slices"
	"time"

	"github.com/gosimple/slug"
)

type VenueSummary struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	FacebookLink       string   `json:"facebook_link"`
}

type ArtistSummary struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	Genres             []string `json:"genres"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
}

type ShowView struct {
	ID        uint           `json:"id"`
	StartTime time.Time      `json:"start_time"`
	Venue     *VenueSummary  `json:"venue,omitempty"`
	Artist    *ArtistSummary `json:"artist,omitempty"`
}

type VenueDetail struct {
	VenueSummary
	UpcomingShows      []ShowView `json:"upcoming_shows"`
	PastShows          []ShowView `json:"past_shows"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
	PastShowsCount     int        `json:"past_shows_count"`
}

type ArtistDetail struct {
	ArtistSummary
	UpcomingShows      []ShowView `json:"upcoming_shows"`
	PastShows          []ShowView `json:"past_shows"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
	PastShowsCount     int        `json:"past_shows_count"`
}

type AreaVenue struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues sharing a city and state.
type Area struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Slug   string      `json:"slug"`
	Venues []AreaVenue `json:"venues"`
}

func genresOf(g []string) []string {
	if g == nil {
		return []string{}
	}
	return g
}

func (m Venue) Summary() VenueSummary {
	return VenueSummary{
		ID:                 m.ID,
		Name:               m.Name,
		Genres:             genresOf(m.Genres),
		City:               m.City,
		State:              m.State,
		Address:            m.Address,
		Phone:              m.Phone,
		ImageLink:          m.ImageLink,
		Website:            m.Website,
		SeekingTalent:      m.SeekingTalent,
		SeekingDescription: m.SeekingDescription,
		FacebookLink:       m.FacebookLink,
	}
}

func (m Artist) Summary() ArtistSummary {
	return ArtistSummary{
		ID:                 m.ID,
		Name:               m.Name,
		City:               m.City,
		State:              m.State,
		Phone:              m.Phone,
		ImageLink:          m.ImageLink,
		Genres:             genresOf(m.Genres),
		SeekingVenue:       m.SeekingVenue,
		SeekingDescription: m.SeekingDescription,
		FacebookLink:       m.FacebookLink,
		Website:            m.Website,
	}
}

// View serializes the show with whichever of its venue and artist are loaded.
func (m Show) View() ShowView {
	v := ShowView{
		ID:        m.ID,
		StartTime: m.StartTime,
	}
	if m.Venue != nil {
		s := m.Venue.Summary()
		v.Venue = &s
	}
	if m.Artist != nil {
		s := m.Artist.Summary()
		v.Artist = &s
	}
	return v
}

func IsUpcoming(s Show, now time.Time) bool {
	return s.StartTime.After(now)
}

// SplitShows partitions shows around now. A show starting exactly at now is
// past. Both results are ordered by start time.
func SplitShows(shows []Show, now time.Time) (upcoming, past []ShowView) {
	upcoming = []ShowView{}
	past = []ShowView{}

	sorted := slices.Clone(shows)
	slices.SortStableFunc(sorted, func(a, b Show) int {
		return a.StartTime.Compare(b.StartTime)
	})

	for _, s := range sorted {
		if IsUpcoming(s, now) {
			upcoming = append(upcoming, s.View())
		} else {
			past = append(past, s.View())
		}
	}
	return upcoming, past
}

func NewVenueDetail(v Venue, now time.Time) VenueDetail {
	upcoming, past := SplitShows(v.Shows, now)
	return VenueDetail{
		VenueSummary:       v.Summary(),
		UpcomingShows:      upcoming,
		PastShows:          past,
		UpcomingShowsCount: len(upcoming),
		PastShowsCount:     len(past),
	}
}

func NewArtistDetail(a Artist, now time.Time) ArtistDetail {
	upcoming, past := SplitShows(a.Shows, now)
	return ArtistDetail{
		ArtistSummary:      a.Summary(),
		UpcomingShows:      upcoming,
		PastShows:          past,
		UpcomingShowsCount: len(upcoming),
		PastShowsCount:     len(past),
	}
}

func countUpcoming(shows []Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if IsUpcoming(s, now) {
			n++
		}
	}
	return n
}

// GroupAreas buckets venues by (city, state). Areas are ordered by state then
// city, venues inside an area by name.
func GroupAreas(venues []Venue, now time.Time) []Area {
	type key struct{ city, state string }

	index := map[key]int{}
	areas := []Area{}

	for _, v := range venues {
		k := key{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{
				City:   v.City,
				State:  v.State,
				Slug:   slug.Make(v.City + " " + v.State),
				Venues: []AreaVenue{},
			})
		}
		areas[i].Venues = append(areas[i].Venues, AreaVenue{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: countUpcoming(v.Shows, now),
		})
	}

	slices.SortFunc(areas, func(a, b Area) int {
		return cmp.Or(cmp.Compare(a.State, b.State), cmp.Compare(a.City, b.City))
	})
	for _, a := range areas {
		slices.SortFunc(a.Venues, func(x, y AreaVenue) int {
			return cmp.Compare(x.Name, y.Name)
		})
	}
	return areas
}

func VenueSummaries(venues []Venue) []VenueSummary {
	out := make([]VenueSummary, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.Summary())
	}
	return out
}

func ArtistSummaries(artists []Artist) []ArtistSummary {
	out := make([]ArtistSummary, 0, len(artists))
	for _, a := range artists {
		out = append(out, a.Summary())
	}
	return out
}

func ShowViews(shows []Show) []ShowView {
	out := make([]ShowView, 0, len(shows))
	for _, s := range shows {
		out = append(out, s.View())
	}
	return out
}
