package apis

import (
	"errors"
	"fyyur-backend/cmd/fyyur/forms"
	"fyyur-backend/cmd/fyyur/model"
	"fyyur-backend/cmd/fyyur/repository"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newShowAPI(repo IShowRepo) *ShowAPI {
	api := NewShowAPI(repo)
	api.now = func() time.Time { return fixedNow }
	return api
}

func showForm() url.Values {
	return url.Values{
		"artist_id":  {"4"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	}
}

func TestShowAPI_ListShows(t *testing.T) {
	e, _ := newEcho()
	c, rec := newRequest(e, http.MethodGet, "/shows", nil, true)

	mockRepo := new(MockShowRepo)
	mockRepo.On("ListShows", mock.Anything).Return([]model.Show{
		{
			ID:        1,
			StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
			VenueID:   1,
			ArtistID:  4,
			Venue:     &model.Venue{ID: 1, Name: "The Musical Hop"},
			Artist:    &model.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://example.com/gnp.jpg"},
		},
	}, nil)

	require.NoError(t, newShowAPI(mockRepo).listShows(c))

	var shows []model.ShowView
	decode(t, rec, &shows)
	require.Len(t, shows, 1)
	assert.Equal(t, "The Musical Hop", shows[0].Venue.Name)
	assert.Equal(t, "https://example.com/gnp.jpg", shows[0].Artist.ImageLink)
}

func TestShowAPI_NewShow_DefaultsStartTime(t *testing.T) {
	e, r := newEcho()
	c, _ := newRequest(e, http.MethodGet, "/shows/create", nil, false)

	require.NoError(t, newShowAPI(new(MockShowRepo)).newShow(c))

	f := r.data.(Page).Data.(formView).Form.(forms.ShowForm)
	assert.Equal(t, "2024-06-01 12:00:00", f.StartTime)
}

func TestShowAPI_CreateShow(t *testing.T) {
	e, _ := newEcho()
	c, rec := newRequest(e, http.MethodPost, "/shows/create", showForm(), true)

	mockRepo := new(MockShowRepo)
	mockRepo.On("CreateShow", mock.Anything, mock.MatchedBy(func(s *model.Show) bool {
		return s.ArtistID == 4 && s.VenueID == 1 && s.StartTime.Equal(time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC))
	})).Return(nil)

	require.NoError(t, newShowAPI(mockRepo).createShow(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Show was successfully listed!", decode(t, rec, nil).Message)

	mockRepo.AssertExpectations(t)
}

func TestShowAPI_CreateShow_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		repoErr error
		field   string
	}{
		{
			name:    "Unknown venue",
			values:  showForm(),
			repoErr: repository.ErrVenueNotFound,
			field:   "venue_id",
		},
		{
			name:    "Unknown artist",
			values:  showForm(),
			repoErr: repository.ErrArtistNotFound,
			field:   "artist_id",
		},
		{
			name:   "Bad start time",
			values: url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"next friday"}},
			field:  "start_time",
		},
		{
			name:   "Missing artist",
			values: url.Values{"venue_id": {"1"}, "start_time": {"2035-04-01 20:00:00"}},
			field:  "artist_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEcho()
			c, rec := newRequest(e, http.MethodPost, "/shows/create", tt.values, true)

			mockRepo := new(MockShowRepo)
			if tt.repoErr != nil {
				mockRepo.On("CreateShow", mock.Anything, mock.Anything).Return(tt.repoErr)
			}

			require.NoError(t, newShowAPI(mockRepo).createShow(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var view struct {
				Errors forms.FieldErrors `json:"errors"`
			}
			decode(t, rec, &view)
			assert.NotEmpty(t, view.Errors.For(tt.field))

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestShowAPI_CreateShow_RepositoryError(t *testing.T) {
	e, _ := newEcho()
	c, rec := newRequest(e, http.MethodPost, "/shows/create", showForm(), true)

	mockRepo := new(MockShowRepo)
	mockRepo.On("CreateShow", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	require.NoError(t, newShowAPI(mockRepo).createShow(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "An error occurred. Show could not be listed.", decode(t, rec, nil).Message)
}
