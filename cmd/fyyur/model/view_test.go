package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

func TestSplitShows_ClassifiesAroundNow(t *testing.T) {
	shows := []Show{
		{ID: 1, StartTime: now.Add(48 * time.Hour)},
		{ID: 2, StartTime: now.Add(-48 * time.Hour)},
		{ID: 3, StartTime: now.Add(time.Hour)},
		{ID: 4, StartTime: now},
	}

	upcoming, past := SplitShows(shows, now)

	require.Len(t, upcoming, 2)
	require.Len(t, past, 2)
	assert.Equal(t, uint(3), upcoming[0].ID)
	assert.Equal(t, uint(1), upcoming[1].ID)
	assert.Equal(t, uint(2), past[0].ID)
	assert.Equal(t, uint(4), past[1].ID)
}

func TestSplitShows_Empty(t *testing.T) {
	upcoming, past := SplitShows(nil, now)
	assert.NotNil(t, upcoming)
	assert.NotNil(t, past)
	assert.Empty(t, upcoming)
	assert.Empty(t, past)
}

func TestNewVenueDetail(t *testing.T) {
	artist := &Artist{ID: 4, Name: "Guns N Petals", Genres: []string{"Rock n Roll"}}
	venue := Venue{
		ID:     1,
		Name:   "The Musical Hop",
		Genres: []string{"Jazz", "Reggae"},
		City:   "San Francisco",
		State:  "CA",
		Shows: []Show{
			{ID: 10, VenueID: 1, ArtistID: 4, StartTime: now.Add(-time.Hour), Artist: artist},
			{ID: 11, VenueID: 1, ArtistID: 4, StartTime: now.Add(time.Hour), Artist: artist},
			{ID: 12, VenueID: 1, ArtistID: 4, StartTime: now.Add(2 * time.Hour), Artist: artist},
		},
	}

	detail := NewVenueDetail(venue, now)

	assert.Equal(t, "The Musical Hop", detail.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, detail.Genres)
	assert.Equal(t, 2, detail.UpcomingShowsCount)
	assert.Equal(t, 1, detail.PastShowsCount)
	require.NotNil(t, detail.PastShows[0].Artist)
	assert.Equal(t, "Guns N Petals", detail.PastShows[0].Artist.Name)
	assert.Nil(t, detail.PastShows[0].Venue)

	for _, s := range detail.UpcomingShows {
		assert.NotEqual(t, uint(10), s.ID)
	}
}

func TestNewArtistDetail(t *testing.T) {
	venue := &Venue{ID: 1, Name: "The Dueling Pianos Bar"}
	artist := Artist{
		ID:   5,
		Name: "Matt Quevedo",
		Shows: []Show{
			{ID: 20, VenueID: 1, ArtistID: 5, StartTime: now.Add(-24 * time.Hour), Venue: venue},
		},
	}

	detail := NewArtistDetail(artist, now)

	assert.Equal(t, 0, detail.UpcomingShowsCount)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, "The Dueling Pianos Bar", detail.PastShows[0].Venue.Name)
	assert.Equal(t, []string{}, detail.Genres)
}

func TestNewVenueDetail_JSONKeys(t *testing.T) {
	detail := NewVenueDetail(Venue{ID: 1, Name: "The Musical Hop"}, now)

	jsonData, err := json.Marshal(detail)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(jsonData, &out))
	for _, k := range []string{"id", "name", "genres", "upcoming_shows", "past_shows", "upcoming_shows_count", "past_shows_count"} {
		assert.Contains(t, out, k)
	}
}

func TestGroupAreas(t *testing.T) {
	venues := []Venue{
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY",
			Shows: []Show{{StartTime: now.Add(time.Hour)}, {StartTime: now.Add(-time.Hour)}}},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA",
			Shows: []Show{{StartTime: now.Add(time.Hour)}}},
	}

	areas := GroupAreas(venues, now)

	require.Len(t, areas, 2)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, "san-francisco-ca", areas[0].Slug)
	require.Len(t, areas[0].Venues, 2)
	assert.Equal(t, "Park Square Live Music & Coffee", areas[0].Venues[0].Name)
	assert.Equal(t, 1, areas[0].Venues[1].NumUpcomingShows)

	assert.Equal(t, "NY", areas[1].State)
	assert.Equal(t, 1, areas[1].Venues[0].NumUpcomingShows)
}

func TestShowViews(t *testing.T) {
	shows := []Show{
		{ID: 1, StartTime: now, Venue: &Venue{ID: 1, Name: "The Musical Hop"}, Artist: &Artist{ID: 4, Name: "Guns N Petals"}},
	}

	views := ShowViews(shows)

	require.Len(t, views, 1)
	assert.Equal(t, "The Musical Hop", views[0].Venue.Name)
	assert.Equal(t, "Guns N Petals", views[0].Artist.Name)
}
