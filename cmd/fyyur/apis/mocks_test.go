package apis

import (
	"context"
	"encoding/json"
	"fyyur-backend/cmd/fyyur/forms"
	"fyyur-backend/cmd/fyyur/model"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVenueRepo struct {
	mock.Mock
}

func (m *MockVenueRepo) ListVenues(ctx context.Context) ([]model.Venue, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Venue), args.Error(1)
}

func (m *MockVenueRepo) GetVenue(ctx context.Context, id uint) (model.Venue, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Venue), args.Error(1)
}

func (m *MockVenueRepo) SearchVenues(ctx context.Context, term string) ([]model.Venue, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]model.Venue), args.Error(1)
}

func (m *MockVenueRepo) CreateVenue(ctx context.Context, venue *model.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepo) UpdateVenue(ctx context.Context, venue model.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepo) DeleteVenue(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockArtistRepo struct {
	mock.Mock
}

func (m *MockArtistRepo) ListArtists(ctx context.Context) ([]model.Artist, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Artist), args.Error(1)
}

func (m *MockArtistRepo) GetArtist(ctx context.Context, id uint) (model.Artist, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Artist), args.Error(1)
}

func (m *MockArtistRepo) SearchArtists(ctx context.Context, term string) ([]model.Artist, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]model.Artist), args.Error(1)
}

func (m *MockArtistRepo) CreateArtist(ctx context.Context, artist *model.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepo) UpdateArtist(ctx context.Context, artist model.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepo) DeleteArtist(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockShowRepo struct {
	mock.Mock
}

func (m *MockShowRepo) ListShows(ctx context.Context) ([]model.Show, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Show), args.Error(1)
}

func (m *MockShowRepo) CreateShow(ctx context.Context, show *model.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

// stubRenderer records the last template it was asked for.
type stubRenderer struct {
	name string
	data any
}

func (r *stubRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	r.name = name
	r.data = data
	_, err := io.WriteString(w, name)
	return err
}

func newEcho() (*echo.Echo, *stubRenderer) {
	e := echo.New()
	r := &stubRenderer{}
	e.Validator = forms.NewValidator()
	e.Renderer = r
	return e, r
}

func newRequest(e *echo.Echo, method, target string, form url.Values, asJSON bool) (echo.Context, *httptest.ResponseRecorder) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if asJSON {
		req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

// decode unpacks a BaseResponse and re-decodes its data into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) model.BaseResponse {
	t.Helper()

	var response model.BaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	if out != nil {
		raw, err := json.Marshal(response.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out))
	}
	return response
}

func musicalHopForm() url.Values {
	return url.Values{
		"name":          {"The Musical Hop"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"address":       {"1015 Folsom Street"},
		"phone":         {"123-123-1234"},
		"genres":        {"Jazz", "Reggae", "Classical", "Folk"},
		"facebook_link": {"https://www.facebook.com/TheMusicalHop"},
	}
}
