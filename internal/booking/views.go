package booking

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/metinatakli/ticket-office/internal/domain"
)

type RoomSchedule struct {
	Room      domain.Room
	Showtimes []domain.Showtime
}

type MovieSchedule struct {
	Movie     domain.Movie
	Showtimes []domain.Showtime
}

type Views struct {
	rooms     domain.RoomRepository
	movies    domain.MovieRepository
	showtimes domain.ShowtimeRepository
}

func NewViews(
	rooms domain.RoomRepository,
	movies domain.MovieRepository,
	showtimes domain.ShowtimeRepository) *Views {

	return &Views{
		rooms:     rooms,
		movies:    movies,
		showtimes: showtimes,
	}
}

// RoomsPlaying lists every room with at least one showtime starting inside
// [start, end]. A nil start means now; a nil end leaves the window open.
func (v *Views) RoomsPlaying(ctx context.Context, start, end *time.Time, now time.Time) ([]RoomSchedule, error) {
	byRoom, err := v.showtimesInWindow(ctx, start, end, now, func(s domain.Showtime) int { return s.RoomID })
	if err != nil {
		return nil, err
	}

	rooms, err := v.rooms.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	schedules := make([]RoomSchedule, 0, len(byRoom))
	for _, room := range rooms {
		if showtimes, ok := byRoom[room.ID]; ok {
			schedules = append(schedules, RoomSchedule{Room: room, Showtimes: showtimes})
		}
	}

	slices.SortFunc(schedules, func(a, b RoomSchedule) int { return cmp.Compare(a.Room.ID, b.Room.ID) })

	return schedules, nil
}

func (v *Views) MoviesPlaying(ctx context.Context, start, end *time.Time, now time.Time) ([]MovieSchedule, error) {
	byMovie, err := v.showtimesInWindow(ctx, start, end, now, func(s domain.Showtime) int { return s.MovieID })
	if err != nil {
		return nil, err
	}

	movies, err := v.movies.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	schedules := make([]MovieSchedule, 0, len(byMovie))
	for _, movie := range movies {
		if showtimes, ok := byMovie[movie.ID]; ok {
			schedules = append(schedules, MovieSchedule{Movie: movie, Showtimes: showtimes})
		}
	}

	slices.SortFunc(schedules, func(a, b MovieSchedule) int { return cmp.Compare(a.Movie.ID, b.Movie.ID) })

	return schedules, nil
}

func (v *Views) showtimesInWindow(
	ctx context.Context,
	start, end *time.Time,
	now time.Time,
	key func(domain.Showtime) int) (map[int][]domain.Showtime, error) {

	window, err := domain.NewTimeWindow(start, end, now)
	if err != nil {
		return nil, err
	}

	showtimes, err := v.showtimes.GetAll(ctx, domain.ShowtimeFilter{Window: &window})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(showtimes, compareShowtimes)

	grouped := make(map[int][]domain.Showtime)
	for _, s := range showtimes {
		if !window.Contains(s.StartTime) {
			continue
		}

		grouped[key(s)] = append(grouped[key(s)], s)
	}

	return grouped, nil
}

func compareShowtimes(a, b domain.Showtime) int {
	if c := a.StartTime.Compare(b.StartTime); c != 0 {
		return c
	}

	return cmp.Compare(a.ID, b.ID)
}
