package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrRoomNotFound     = fmt.Errorf("room %w", ErrRecordNotFound)
	ErrMovieNotFound    = fmt.Errorf("movie %w", ErrRecordNotFound)
	ErrShowtimeNotFound = fmt.Errorf("showtime %w", ErrRecordNotFound)
	ErrTicketNotFound   = fmt.Errorf("ticket %w", ErrRecordNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrRecordNotFound)

	ErrValidation       = errors.New("validation failed")
	ErrInvalidSeatCount = fmt.Errorf("%w: number of seats must be a positive integer", ErrValidation)

	ErrPastStartTime            = errors.New("showtime must start in the future")
	ErrShowtimeOverlap          = errors.New("showtime overlaps with an existing showtime in the same room")
	ErrInsufficientAvailability = errors.New("not enough seats available for this showtime")
	ErrInvalidTimeRange         = errors.New("end of the time range must not be before its start")
)

// OverlapError reports the showtime that blocked a schedule change.
type OverlapError struct {
	RoomID     int
	ShowtimeID int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("showtime overlaps with showtime %d in room %d", e.ShowtimeID, e.RoomID)
}

func (e *OverlapError) Unwrap() error {
	return ErrShowtimeOverlap
}
