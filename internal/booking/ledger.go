package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/metinatakli/ticket-office/internal/domain"
	"go.opentelemetry.io/otel/metric"
)

type SaleInput struct {
	ShowtimeID int
	NumSeats   int
	CustomerID *int
}

type Sale struct {
	Ticket    domain.Ticket
	Remaining int
}

type TicketUpdate struct {
	NumSeats   *int
	CustomerID *int
}

type Ledger struct {
	tickets   domain.TicketRepository
	customers domain.CustomerRepository
	sold      metric.Int64Counter
}

func NewLedger(tickets domain.TicketRepository, customers domain.CustomerRepository) *Ledger {
	return &Ledger{
		tickets:   tickets,
		customers: customers,
		sold:      newCounter("tickets_sold_seats", "Number of seats sold"),
	}
}

// Sell takes NumSeats from the showtime and records a ticket for them. The
// request is rejected, never trimmed, when the showtime cannot cover it.
func (l *Ledger) Sell(ctx context.Context, input SaleInput, now time.Time) (*Sale, error) {
	if input.NumSeats <= 0 {
		return nil, domain.ErrInvalidSeatCount
	}

	if input.CustomerID != nil {
		err := l.ensureCustomer(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
	}

	ticket := domain.Ticket{
		ShowtimeID: input.ShowtimeID,
		CustomerID: input.CustomerID,
		NumSeats:   input.NumSeats,
		CreatedAt:  now,
	}

	remaining, err := l.tickets.Sell(ctx, &ticket)
	if err != nil {
		return nil, err
	}

	l.sold.Add(ctx, int64(ticket.NumSeats))

	return &Sale{Ticket: ticket, Remaining: remaining}, nil
}

// Update rewrites a ticket. Availability of its showtime is not reconciled.
func (l *Ledger) Update(ctx context.Context, id int, input TicketUpdate) (*domain.Ticket, error) {
	ticket, err := l.tickets.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.NumSeats != nil {
		if *input.NumSeats <= 0 {
			return nil, domain.ErrInvalidSeatCount
		}

		ticket.NumSeats = *input.NumSeats
	}

	if input.CustomerID != nil {
		err := l.ensureCustomer(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}

		ticket.CustomerID = input.CustomerID
	}

	err = l.tickets.Update(ctx, ticket)
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

func (l *Ledger) Get(ctx context.Context, id int) (*domain.Ticket, error) {
	return l.tickets.GetById(ctx, id)
}

func (l *Ledger) List(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error) {
	return l.tickets.GetAll(ctx, filter)
}

// Delete removes a ticket. Its seats stay sold.
func (l *Ledger) Delete(ctx context.Context, id int) error {
	return l.tickets.Delete(ctx, id)
}

func (l *Ledger) ensureCustomer(ctx context.Context, id int) error {
	_, err := l.customers.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.ErrCustomerNotFound
		}

		return fmt.Errorf("failed to load customer %d: %w", id, err)
	}

	return nil
}
