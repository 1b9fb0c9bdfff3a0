// Package booking holds the reservation core: the showtime scheduler that
// keeps every room's timeline free of overlaps, the ledger that sells seats
// against a showtime's availability and the read-only views over both.
//
// Every operation that depends on the current time takes it as an argument.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/metinatakli/ticket-office/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type ShowtimeInput struct {
	RoomID    int
	MovieID   int
	StartTime time.Time
}

// ShowtimeUpdate carries the fields to change; nil fields keep their value.
type ShowtimeUpdate struct {
	RoomID    *int
	MovieID   *int
	StartTime *time.Time
}

type Scheduler struct {
	rooms     domain.RoomRepository
	movies    domain.MovieRepository
	showtimes domain.ShowtimeRepository
	scheduled metric.Int64Counter
}

func NewScheduler(
	rooms domain.RoomRepository,
	movies domain.MovieRepository,
	showtimes domain.ShowtimeRepository) *Scheduler {

	return &Scheduler{
		rooms:     rooms,
		movies:    movies,
		showtimes: showtimes,
		scheduled: newCounter("showtimes_scheduled", "Number of showtimes written to a room timeline"),
	}
}

func (s *Scheduler) Create(ctx context.Context, input ShowtimeInput, now time.Time) (*domain.Showtime, error) {
	room, err := s.lookupRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	movie, err := s.lookupMovie(ctx, input.MovieID)
	if err != nil {
		return nil, err
	}

	if !input.StartTime.After(now) {
		return nil, domain.ErrPastStartTime
	}

	showtime := domain.NewShowtime(*room, *movie, input.StartTime)

	err = s.showtimes.Create(ctx, &showtime, rejectOverlaps(showtime))
	if err != nil {
		return nil, err
	}

	s.scheduled.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "create")))

	return &showtime, nil
}

// Update moves a showtime to another room, movie or start time. The end time
// follows the (possibly new) movie; the seat counts are left untouched.
func (s *Scheduler) Update(ctx context.Context, id int, input ShowtimeUpdate, now time.Time) (*domain.Showtime, error) {
	showtime, err := s.showtimes.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.RoomID != nil {
		room, err := s.lookupRoom(ctx, *input.RoomID)
		if err != nil {
			return nil, err
		}

		showtime.RoomID = room.ID
	}

	movieID := showtime.MovieID
	if input.MovieID != nil {
		movieID = *input.MovieID
	}

	movie, err := s.lookupMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if input.StartTime != nil {
		if !input.StartTime.After(now) {
			return nil, domain.ErrPastStartTime
		}

		showtime.StartTime = *input.StartTime
	}

	showtime.MovieID = movie.ID
	showtime.EndTime = domain.EndOf(showtime.StartTime, *movie)

	err = s.showtimes.Update(ctx, showtime, rejectOverlaps(*showtime))
	if err != nil {
		return nil, err
	}

	s.scheduled.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "update")))

	return showtime, nil
}

func (s *Scheduler) Delete(ctx context.Context, id int) error {
	return s.showtimes.Delete(ctx, id)
}

func (s *Scheduler) Get(ctx context.Context, id int) (*domain.Showtime, error) {
	return s.showtimes.GetById(ctx, id)
}

func (s *Scheduler) List(ctx context.Context, filter domain.ShowtimeFilter) ([]domain.Showtime, error) {
	return s.showtimes.GetAll(ctx, filter)
}

func (s *Scheduler) lookupRoom(ctx context.Context, id int) (*domain.Room, error) {
	room, err := s.rooms.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}

	return room, nil
}

func (s *Scheduler) lookupMovie(ctx context.Context, id int) (*domain.Movie, error) {
	movie, err := s.movies.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}

		return nil, fmt.Errorf("failed to load movie %d: %w", id, err)
	}

	return movie, nil
}

func rejectOverlaps(candidate domain.Showtime) domain.ScheduleGuard {
	return func(timeline []domain.Showtime) error {
		for _, existing := range timeline {
			if existing.ID == candidate.ID {
				continue
			}

			if existing.Overlaps(candidate.StartTime, candidate.EndTime) {
				return &domain.OverlapError{RoomID: candidate.RoomID, ShowtimeID: existing.ID}
			}
		}

		return nil
	}
}
