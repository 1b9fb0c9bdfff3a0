package app

import (
	"net/http"
	"time"

	"github.com/metinatakli/ticket-office/api"
	"github.com/metinatakli/ticket-office/internal/booking"
	"github.com/metinatakli/ticket-office/internal/domain"
)

func (app *Application) ListShowtimes(w http.ResponseWriter, r *http.Request, params api.ListShowtimesParams) {
	filter := domain.ShowtimeFilter{
		RoomID:  params.RoomId,
		MovieID: params.MovieId,
	}

	// Unlike the playing views, the listing is unbounded unless asked otherwise.
	if params.Start != nil || params.End != nil {
		window, err := domain.NewTimeWindow(params.Start, params.End, time.Time{})
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}

		filter.Window = &window
	}

	showtimes, err := app.scheduler.List(r.Context(), filter)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{Showtimes: toApiShowtimes(showtimes)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateShowtimeJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime, err := app.scheduler.Create(r.Context(), booking.ShowtimeInput{
		RoomID:    input.RoomId,
		MovieID:   input.MovieId,
		StartTime: input.StartTime,
	}, app.clock())
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	logger.InfoContext(r.Context(), "showtime scheduled",
		"showtime_id", showtime.ID,
		"room_id", showtime.RoomID,
		"start_time", showtime.StartTime,
		"end_time", showtime.EndTime)

	err = app.writeJSON(w, http.StatusCreated, toApiShowtime(*showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtime(w http.ResponseWriter, r *http.Request, showtimeId int) {
	// Served from storage: available changes on every sale.
	showtime, err := app.scheduler.Get(r.Context(), showtimeId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiShowtime(*showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowtime(w http.ResponseWriter, r *http.Request, showtimeId int) {
	var input api.UpdateShowtimeJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime, err := app.scheduler.Update(r.Context(), showtimeId, booking.ShowtimeUpdate{
		RoomID:    input.RoomId,
		MovieID:   input.MovieId,
		StartTime: input.StartTime,
	}, app.clock())
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.invalidate(r, domain.ShowtimeCacheKey(showtimeId))

	err = app.writeJSON(w, http.StatusOK, toApiShowtime(*showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowtime(w http.ResponseWriter, r *http.Request, showtimeId int) {
	err := app.scheduler.Delete(r.Context(), showtimeId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.invalidate(r, domain.ShowtimeCacheKey(showtimeId))

	w.WriteHeader(http.StatusNoContent)
}

func showtimeKeys(showtimes []domain.Showtime) []string {
	keys := make([]string, len(showtimes))
	for i, s := range showtimes {
		keys[i] = domain.ShowtimeCacheKey(s.ID)
	}

	return keys
}

func toApiShowtimes(showtimes []domain.Showtime) []api.ShowtimeResponse {
	resp := make([]api.ShowtimeResponse, len(showtimes))
	for i, s := range showtimes {
		resp[i] = toApiShowtime(s)
	}

	return resp
}

// toApiShowtime reports times in UTC whatever zone storage handed back.
func toApiShowtime(s domain.Showtime) api.ShowtimeResponse {
	return api.ShowtimeResponse{
		Id:        s.ID,
		RoomId:    s.RoomID,
		MovieId:   s.MovieID,
		StartTime: s.StartTime.UTC(),
		EndTime:   s.EndTime.UTC(),
		Capacity:  s.Capacity,
		Available: s.Available,
	}
}
