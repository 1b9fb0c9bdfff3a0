package app

import (
	"net/http"

	"github.com/metinatakli/ticket-office/api"
)

func (app *Application) GetRoomsPlaying(w http.ResponseWriter, r *http.Request, params api.GetRoomsPlayingParams) {
	schedules, err := app.views.RoomsPlaying(r.Context(), params.Start, params.End, app.clock())
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	resp := api.RoomsPlayingResponse{Rooms: make([]api.RoomPlaying, len(schedules))}
	for i, schedule := range schedules {
		resp.Rooms[i] = api.RoomPlaying{
			Room:      toApiRoom(schedule.Room),
			Showtimes: toApiShowtimes(schedule.Showtimes),
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMoviesPlaying(w http.ResponseWriter, r *http.Request, params api.GetMoviesPlayingParams) {
	schedules, err := app.views.MoviesPlaying(r.Context(), params.Start, params.End, app.clock())
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	resp := api.MoviesPlayingResponse{Movies: make([]api.MoviePlaying, len(schedules))}
	for i, schedule := range schedules {
		resp.Movies[i] = api.MoviePlaying{
			Movie:     toApiMovie(schedule.Movie),
			Showtimes: toApiShowtimes(schedule.Showtimes),
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
