package domain

import (
	"context"
	"fmt"
)

type Room struct {
	ID       int
	Name     string
	Capacity int
}

func (r Room) String() string {
	return r.Name
}

type Movie struct {
	ID       int
	Title    string
	Duration int
}

func (m Movie) String() string {
	return m.Title
}

type Customer struct {
	ID   int
	Name string
}

func (c Customer) String() string {
	return c.Name
}

// Validate reports whether the room can be stored.
func (r Room) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: room name must not be empty", ErrValidation)
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("%w: room capacity must be positive", ErrValidation)
	}

	return nil
}

func (m Movie) Validate() error {
	if m.Title == "" {
		return fmt.Errorf("%w: movie title must not be empty", ErrValidation)
	}
	if m.Duration <= 0 {
		return fmt.Errorf("%w: movie duration must be positive", ErrValidation)
	}

	return nil
}

func (c Customer) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: customer name must not be empty", ErrValidation)
	}

	return nil
}

type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetById(ctx context.Context, id int) (*Room, error)
	GetAll(ctx context.Context) ([]Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id int) error
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetById(ctx context.Context, id int) (*Movie, error)
	GetAll(ctx context.Context) ([]Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	GetById(ctx context.Context, id int) (*Customer, error)
	GetAll(ctx context.Context) ([]Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id int) error
}
