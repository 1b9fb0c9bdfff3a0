package app

import (
	"context"
	"net/http"

	"github.com/metinatakli/ticket-office/api"
	"github.com/metinatakli/ticket-office/internal/cache"
	"github.com/metinatakli/ticket-office/internal/domain"
)

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{Movies: toApiMovies(movies)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieJSONRequestBody

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

	movie := domain.Movie{
		Title:    input.Title,
		Duration: input.Duration,
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).InfoContext(r.Context(), "movie created", "movie_id", movie.ID, "movie", movie.String())

	err = app.writeJSON(w, http.StatusCreated, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	movie, err := cache.ReadThrough(r.Context(), app.cache, app.logger, domain.MovieCacheKey(movieId),
		func(ctx context.Context) (*domain.Movie, error) {
			return app.movieRepo.GetById(ctx, movieId)
		})
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(*movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	var input api.UpdateMovieJSONRequestBody

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

	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.invalidate(r, domain.MovieCacheKey(movieId))

	err = app.writeJSON(w, http.StatusOK, toApiMovie(*movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	showtimes, err := app.scheduler.List(r.Context(), domain.ShowtimeFilter{MovieID: &movieId})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), movieId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.invalidate(r, append(showtimeKeys(showtimes), domain.MovieCacheKey(movieId))...)

	w.WriteHeader(http.StatusNoContent)
}

func toApiMovies(movies []domain.Movie) []api.MovieResponse {
	resp := make([]api.MovieResponse, len(movies))
	for i, movie := range movies {
		resp[i] = toApiMovie(movie)
	}

	return resp
}

func toApiMovie(movie domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:       movie.ID,
		Title:    movie.Title,
		Duration: movie.Duration,
	}
}
