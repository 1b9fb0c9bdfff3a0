package domain

import (
	"context"
	"time"
)

type Ticket struct {
	ID         int
	ShowtimeID int
	CustomerID *int
	NumSeats   int
	CreatedAt  time.Time
}

type TicketFilter struct {
	ShowtimeID *int
}

type TicketRepository interface {
	// Sell decrements the availability of the ticket's showtime by NumSeats and
	// stores the ticket in one atomic step. It returns the seats left after the sale.
	Sell(ctx context.Context, ticket *Ticket) (int, error)
	GetById(ctx context.Context, id int) (*Ticket, error)
	GetAll(ctx context.Context, filter TicketFilter) ([]Ticket, error)
	// Update rewrites the ticket row only; showtime availability is left as is.
	Update(ctx context.Context, ticket *Ticket) error
	// Delete removes the ticket without giving its seats back.
	Delete(ctx context.Context, id int) error
}
