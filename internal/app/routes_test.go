package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/metinatakli/ticket-office/api"
	"github.com/metinatakli/ticket-office/internal/domain"
	"github.com/metinatakli/ticket-office/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routesFixture struct {
	handler http.Handler
	room    api.RoomResponse
	movie   api.MovieResponse
}

func newRoutesFixture(t *testing.T, opts ...func(*Application)) *routesFixture {
	t.Helper()

	app := newTestApplication(MemoryRepositories(repository.NewMemoryStore()), opts...)
	f := &routesFixture{handler: app.Routes()}

	w := f.do(t, http.MethodPost, "/rooms", api.RoomRequest{Name: "Blue", Capacity: 30})
	require.Equal(t, http.StatusCreated, w.Code)
	f.room = decodeResponse[api.RoomResponse](t, w)

	w = f.do(t, http.MethodPost, "/movies", api.MovieRequest{Title: "Heat", Duration: 90})
	require.Equal(t, http.StatusCreated, w.Code)
	f.movie = decodeResponse[api.MovieResponse](t, w)

	return f
}

func (f *routesFixture) do(t *testing.T, method, url string, body any) *httptest.ResponseRecorder {
	w, r := executeRequest(t, method, url, body)
	f.handler.ServeHTTP(w, r)

	return w
}

func (f *routesFixture) schedule(t *testing.T, start time.Time) api.ShowtimeResponse {
	t.Helper()

	w := f.do(t, http.MethodPost, "/showtimes", api.ShowtimeRequest{
		RoomId:    f.room.Id,
		MovieId:   f.movie.Id,
		StartTime: start,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decodeResponse[api.ShowtimeResponse](t, w)
}

func TestRoutesScheduleAndSell(t *testing.T) {
	f := newRoutesFixture(t)

	showtime := f.schedule(t, testStart)
	assert.Equal(t, 30, showtime.Available)
	assert.True(t, showtime.EndTime.Equal(time.Date(2020, 6, 29, 9, 45, 0, 0, time.UTC)))

	w := f.do(t, http.MethodPost, "/showtimes", api.ShowtimeRequest{
		RoomId:    f.room.Id,
		MovieId:   f.movie.Id,
		StartTime: time.Date(2020, 6, 29, 9, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = f.do(t, http.MethodPost, "/tickets", api.TicketRequest{ShowtimeId: showtime.Id, NumSeats: 5})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 25, decodeResponse[api.SaleResponse](t, w).Available)

	w = f.do(t, http.MethodPost, "/tickets/sale", api.TicketRequest{ShowtimeId: showtime.Id, NumSeats: 26})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = f.do(t, http.MethodGet, fmt.Sprintf("/showtimes/%d", showtime.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25, decodeResponse[api.ShowtimeResponse](t, w).Available)

	w = f.do(t, http.MethodGet, fmt.Sprintf("/tickets?showtimeId=%d", showtime.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse[api.TicketListResponse](t, w).Tickets, 1)
}

func TestRoutesPastShowtimeIsNotStored(t *testing.T) {
	f := newRoutesFixture(t)

	w := f.do(t, http.MethodPost, "/showtimes", api.ShowtimeRequest{
		RoomId:    f.room.Id,
		MovieId:   f.movie.Id,
		StartTime: testNow.Add(-24 * time.Hour),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = f.do(t, http.MethodGet, "/showtimes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeResponse[api.ShowtimeListResponse](t, w).Showtimes)
}

func TestRoutesConcurrentSales(t *testing.T) {
	f := newRoutesFixture(t)
	showtime := f.schedule(t, testStart)

	w := f.do(t, http.MethodPost, "/tickets", api.TicketRequest{ShowtimeId: showtime.Id, NumSeats: 5})
	require.Equal(t, http.StatusCreated, w.Code)

	var wg sync.WaitGroup
	codes := make([]int, 2)

	for i := range codes {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w, r := executeRequest(t, http.MethodPost, "/tickets", api.TicketRequest{ShowtimeId: showtime.Id, NumSeats: 20})
			f.handler.ServeHTTP(w, r)
			codes[i] = w.Code
		}()
	}

	wg.Wait()

	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, codes)

	w = f.do(t, http.MethodGet, fmt.Sprintf("/showtimes/%d", showtime.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decodeResponse[api.ShowtimeResponse](t, w).Available)
}

func TestRoutesPlaying(t *testing.T) {
	f := newRoutesFixture(t)
	early := f.schedule(t, testStart)
	late := f.schedule(t, testStart.Add(6*time.Hour))

	w := f.do(t, http.MethodGet, "/rooms_playing", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rooms := decodeResponse[api.RoomsPlayingResponse](t, w).Rooms
	require.Len(t, rooms, 1)
	assert.Equal(t, f.room, rooms[0].Room)
	require.Len(t, rooms[0].Showtimes, 2)
	assert.Equal(t, early.Id, rooms[0].Showtimes[0].Id)
	assert.Equal(t, late.Id, rooms[0].Showtimes[1].Id)

	w = f.do(t, http.MethodGet, "/movies_playing?start=2020-06-29T12:00:00Z", nil)
	require.Equal(t, http.StatusOK, w.Code)

	movies := decodeResponse[api.MoviesPlayingResponse](t, w).Movies
	require.Len(t, movies, 1)
	require.Len(t, movies[0].Showtimes, 1)
	assert.Equal(t, late.Id, movies[0].Showtimes[0].Id)

	w = f.do(t, http.MethodGet, "/rooms_playing?start=2020-07-01T00:00:00Z", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeResponse[api.RoomsPlayingResponse](t, w).Rooms)

	w = f.do(t, http.MethodGet, "/rooms_playing?start=2020-07-01T00:00:00Z&end=2020-06-30T00:00:00Z", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	checkErrorResponse(t, w, http.StatusBadRequest, domain.ErrInvalidTimeRange.Error())
}

func TestRoutesDeleteRoomCascades(t *testing.T) {
	f := newRoutesFixture(t)
	showtime := f.schedule(t, testStart)

	w := f.do(t, http.MethodDelete, fmt.Sprintf("/rooms/%d", f.room.Id), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(t, http.MethodGet, fmt.Sprintf("/showtimes/%d", showtime.Id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutesErrors(t *testing.T) {
	f := newRoutesFixture(t)

	tests := []struct {
		name       string
		method     string
		url        string
		body       any
		wantStatus int
	}{
		{name: "unknown path", method: http.MethodGet, url: "/seats", wantStatus: http.StatusNotFound},
		{name: "unsupported method", method: http.MethodPut, url: "/rooms", wantStatus: http.StatusMethodNotAllowed},
		{name: "non numeric id", method: http.MethodGet, url: "/rooms/blue", wantStatus: http.StatusBadRequest},
		{name: "malformed window", method: http.MethodGet, url: "/rooms_playing?start=today", wantStatus: http.StatusBadRequest},
		{name: "unknown room", method: http.MethodGet, url: "/rooms/999", wantStatus: http.StatusNotFound},
		{name: "empty body", method: http.MethodPost, url: "/movies", wantStatus: http.StatusBadRequest},
		{
			name:       "invalid movie",
			method:     http.MethodPost,
			url:        "/movies",
			body:       api.MovieRequest{Title: "", Duration: 90},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, tt.method, tt.url, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestRoutesHealthAndDocument(t *testing.T) {
	f := newRoutesFixture(t)

	w := f.do(t, http.MethodGet, "/healthcheck", nil)
	require.Equal(t, http.StatusOK, w.Code)

	health := decodeResponse[api.HealthcheckResponse](t, w)
	assert.Equal(t, "UP", health.Status)
	assert.Equal(t, "test", health.SystemInfo.Environment)

	w = f.do(t, http.MethodGet, "/openapi.json", nil)
	require.Equal(t, http.StatusOK, w.Code)

	doc := decodeResponse[map[string]any](t, w)
	assert.Contains(t, doc, "paths")
}

// mapStore is an in-process cache.Store. beforeSet runs ahead of every write
// so a test can slip another request between a load and the cache fill.
type mapStore struct {
	mu        sync.Mutex
	entries   map[string][]byte
	written   []string
	beforeSet func(key string)
}

func newMapStore() *mapStore {
	return &mapStore{entries: make(map[string][]byte)}
}

func (s *mapStore) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.Lock()
	data, ok := s.entries[key]
	s.mu.Unlock()

	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(data, dest)
}

func (s *mapStore) Set(_ context.Context, key string, value any) error {
	if s.beforeSet != nil {
		s.beforeSet(key)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = data
	s.written = append(s.written, key)

	return nil
}

func (s *mapStore) Invalidate(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.entries, key)
	}

	return nil
}

func TestRoutesShowtimeReadSeesSaleThatInterleaves(t *testing.T) {
	store := newMapStore()
	f := newRoutesFixture(t, func(a *Application) { a.cache = store })
	showtime := f.schedule(t, testStart)
	key := domain.ShowtimeCacheKey(showtime.Id)

	sold := false
	sell := func() {
		sold = true
		w := f.do(t, http.MethodPost, "/tickets", api.TicketRequest{ShowtimeId: showtime.Id, NumSeats: 5})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// A sale committing while a read is filling the cache.
	store.beforeSet = func(k string) {
		if k == key && !sold {
			sell()
		}
	}

	w := f.do(t, http.MethodGet, fmt.Sprintf("/showtimes/%d", showtime.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	if !sold {
		sell()
	}

	w = f.do(t, http.MethodGet, fmt.Sprintf("/showtimes/%d", showtime.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25, decodeResponse[api.ShowtimeResponse](t, w).Available)
	assert.False(t, slices.Contains(store.written, key), "showtime snapshot must not be cached")

	// Rooms keep their read-through entry.
	w = f.do(t, http.MethodGet, fmt.Sprintf("/rooms/%d", f.room.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, store.written, domain.RoomCacheKey(f.room.Id))
}

func TestRoutesCustomerNameLength(t *testing.T) {
	f := newRoutesFixture(t)

	tests := []struct {
		name       string
		length     int
		wantStatus int
	}{
		{name: "accepts 150 characters", length: 150, wantStatus: http.StatusCreated},
		{name: "accepts 200 characters", length: 200, wantStatus: http.StatusCreated},
		{name: "rejects 201 characters", length: 201, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, "/customers", api.CustomerRequest{Name: strings.Repeat("a", tt.length)})
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}
