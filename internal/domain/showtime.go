package domain

import (
	"context"
	"time"
)

type Showtime struct {
	ID        int
	RoomID    int
	MovieID   int
	StartTime time.Time
	EndTime   time.Time
	// Capacity is the room capacity copied when the showtime was scheduled.
	Capacity  int
	Available int
}

// NewShowtime schedules movie in room at start. The seat count is a snapshot
// of the room capacity; later room edits do not reach it.
func NewShowtime(room Room, movie Movie, start time.Time) Showtime {
	return Showtime{
		RoomID:    room.ID,
		MovieID:   movie.ID,
		StartTime: start,
		EndTime:   EndOf(start, movie),
		Capacity:  room.Capacity,
		Available: room.Capacity,
	}
}

func EndOf(start time.Time, movie Movie) time.Time {
	return start.Add(time.Duration(movie.Duration) * time.Minute)
}

// Overlaps reports whether [start, end] intersects the showtime's interval.
// Both bounds are inclusive, so a showtime ending exactly when another one
// starts is a conflict.
func (s Showtime) Overlaps(start, end time.Time) bool {
	return !start.After(s.EndTime) && !end.Before(s.StartTime)
}

// Sold returns the number of seats already taken.
func (s Showtime) Sold() int {
	return s.Capacity - s.Available
}

// ScheduleGuard inspects the timeline of a room before a showtime is written
// into it. The timeline never contains the showtime being written.
type ScheduleGuard func(timeline []Showtime) error

type ShowtimeFilter struct {
	RoomID  *int
	MovieID *int
	Window  *TimeWindow
}

type ShowtimeRepository interface {
	// Create and Update serialize writers per room: guard runs against a
	// timeline no other writer can change until the write is done.
	Create(ctx context.Context, showtime *Showtime, guard ScheduleGuard) error
	Update(ctx context.Context, showtime *Showtime, guard ScheduleGuard) error
	GetById(ctx context.Context, id int) (*Showtime, error)
	GetAll(ctx context.Context, filter ShowtimeFilter) ([]Showtime, error)
	Delete(ctx context.Context, id int) error
}
