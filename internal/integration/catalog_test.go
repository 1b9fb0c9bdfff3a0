package integration_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/metinatakli/ticket-office/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CatalogTestSuite struct {
	BaseSuite
}

func TestCatalogSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestRooms() {
	scenarios := []Scenario{
		{
			Name:             "returns empty list when no rooms exist",
			Method:           http.MethodGet,
			URL:              "/rooms",
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"rooms": []}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetState(t, app)
			},
		},
		{
			Name:             "creates room",
			Method:           http.MethodPost,
			URL:              "/rooms",
			Body:             jsonBody(`{"name": "Blue", "capacity": 30}`),
			ExpectedStatus:   http.StatusCreated,
			ExpectedResponse: `{"id": 1, "name": "Blue", "capacity": 30}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetState(t, app)
			},
		},
		{
			Name:           "rejects room without capacity",
			Method:         http.MethodPost,
			URL:            "/rooms",
			Body:           jsonBody(`{"name": "Blue"}`),
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedResponse: `{
				"message": "One or more fields are invalid",
				"validationErrors": [{"field": "capacity", "issue": "is required"}]
			}`,
		},
		{
			Name:             "returns 404 for unknown room",
			Method:           http.MethodGet,
			URL:              "/rooms/999",
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "room record not found"}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetState(t, app)
			},
		},
		{
			Name:             "updates room and refreshes cached copy",
			Method:           http.MethodPatch,
			URL:              "/rooms/1",
			Body:             jsonBody(`{"capacity": 45}`),
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"id": 1, "name": "Blue", "capacity": 45}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetState(t, app, "testdata/catalog_up.sql")
				// Warm the cache so the update has something to drop.
				_, err := app.RedisClient.Set(context.Background(), domain.RoomCacheKey(1),
					`{"ID":1,"Name":"Blue","Capacity":30}`, 0).Result()
				require.NoError(t, err)
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				exists, err := app.RedisClient.Exists(context.Background(), domain.RoomCacheKey(1)).Result()
				require.NoError(t, err)
				assert.Zero(t, exists)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app, s.handler)
	}
}

func (s *CatalogTestSuite) TestGetRoomReadsThroughCache() {
	resetState(s.T(), s.app, "testdata/catalog_up.sql")

	Scenario{
		Name:             "first read fills cache",
		Method:           http.MethodGet,
		URL:              "/rooms/1",
		ExpectedStatus:   http.StatusOK,
		ExpectedResponse: `{"id": 1, "name": "Blue", "capacity": 30}`,
		AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
			cached, err := app.RedisClient.Get(context.Background(), domain.RoomCacheKey(1)).Result()
			require.NoError(t, err)
			assert.JSONEq(t, `{"ID":1,"Name":"Blue","Capacity":30}`, cached)
		},
	}.Run(s.T(), s.app, s.handler)

	// A write behind the application's back is not seen until the entry expires.
	_, err := s.app.DB.Exec(context.Background(), `UPDATE rooms SET name = 'Green' WHERE id = 1`)
	s.Require().NoError(err)

	Scenario{
		Name:             "second read is served from cache",
		Method:           http.MethodGet,
		URL:              "/rooms/1",
		ExpectedStatus:   http.StatusOK,
		ExpectedResponse: `{"id": 1, "name": "Blue", "capacity": 30}`,
	}.Run(s.T(), s.app, s.handler)
}

func (s *CatalogTestSuite) TestMoviesAndCustomers() {
	scenarios := []Scenario{
		{
			Name:             "creates movie",
			Method:           http.MethodPost,
			URL:              "/movies",
			Body:             jsonBody(`{"title": "Heat", "duration": 90}`),
			ExpectedStatus:   http.StatusCreated,
			ExpectedResponse: `{"id": 1, "title": "Heat", "duration": 90}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetState(t, app)
			},
		},
		{
			Name:             "lists movies",
			Method:           http.MethodGet,
			URL:              "/movies",
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"movies": [{"id": 1, "title": "Heat", "duration": 90}, {"id": 2, "title": "Alien", "duration": 117}]}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetState(t, app, "testdata/catalog_up.sql")
			},
		},
		{
			Name:           "rejects blank movie title",
			Method:         http.MethodPost,
			URL:            "/movies",
			Body:           jsonBody(`{"title": "  ", "duration": 90}`),
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedResponse: `{
				"message": "One or more fields are invalid",
				"validationErrors": [{"field": "title", "issue": "must not be blank"}]
			}`,
		},
		{
			Name:             "renames customer",
			Method:           http.MethodPatch,
			URL:              "/customers/1",
			Body:             jsonBody(`{"name": "Grace"}`),
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"id": 1, "name": "Grace"}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetState(t, app, "testdata/catalog_up.sql")
			},
		},
		{
			Name:           "deletes customer",
			Method:         http.MethodDelete,
			URL:            "/customers/1",
			ExpectedStatus: http.StatusNoContent,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetState(t, app, "testdata/catalog_up.sql")
			},
		},
		{
			Name:             "returns 404 when deleting unknown movie",
			Method:           http.MethodDelete,
			URL:              "/movies/42",
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "movie record not found"}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app, s.handler)
	}
}
