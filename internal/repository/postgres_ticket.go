package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-office/internal/domain"
)

type PostgresTicketRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTicketRepository(db *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		db: db,
	}
}

// Sell relies on the conditional UPDATE: concurrent sales on one showtime
// queue on its row lock and re-check the predicate against the committed
// availability, so the counter can never go below zero.
func (p *PostgresTicketRepository) Sell(ctx context.Context, ticket *domain.Ticket) (int, error) {
	var remaining int

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE showtimes
			SET available = available - $2
			WHERE id = $1 AND available >= $2
			RETURNING available
		`

		err := tx.QueryRow(ctx, query, ticket.ShowtimeID, ticket.NumSeats).Scan(&remaining)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return explainRejectedSale(ctx, tx, ticket.ShowtimeID)
			}

			if _, ok := pgViolation(err, pgerrcode.CheckViolation); ok {
				return domain.ErrInsufficientAvailability
			}

			return err
		}

		query = `
			INSERT INTO tickets (showtime_id, customer_id, num_seats, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		err = tx.QueryRow(
			ctx,
			query,
			ticket.ShowtimeID,
			ticket.CustomerID,
			ticket.NumSeats,
			ticket.CreatedAt).Scan(&ticket.ID)

		return mapTicketWriteError(err)
	})
	if err != nil {
		return 0, err
	}

	return remaining, nil
}

func explainRejectedSale(ctx context.Context, tx pgx.Tx, showtimeID int) error {
	var exists bool

	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM showtimes WHERE id = $1)`, showtimeID).Scan(&exists)
	if err != nil {
		return err
	}

	if !exists {
		return domain.ErrShowtimeNotFound
	}

	return domain.ErrInsufficientAvailability
}

func mapTicketWriteError(err error) error {
	if err == nil {
		return nil
	}

	if constraint, ok := isForeignKeyViolation(err); ok {
		switch constraint {
		case "tickets_showtime_id_fkey":
			return domain.ErrShowtimeNotFound
		case "tickets_customer_id_fkey":
			return domain.ErrCustomerNotFound
		}
	}

	return err
}

func (p *PostgresTicketRepository) GetById(ctx context.Context, id int) (*domain.Ticket, error) {
	query := `
		SELECT id, showtime_id, customer_id, num_seats, created_at
		FROM tickets
		WHERE id = $1
	`

	var ticket domain.Ticket

	err := p.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.ShowtimeID,
		&ticket.CustomerID,
		&ticket.NumSeats,
		&ticket.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}

		return nil, err
	}

	return &ticket, nil
}

func (p *PostgresTicketRepository) GetAll(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error) {
	query := `
		SELECT id, showtime_id, customer_id, num_seats, created_at
		FROM tickets
		WHERE ($1::int IS NULL OR showtime_id = $1)
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, filter.ShowtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)

	for rows.Next() {
		var ticket domain.Ticket

		err = rows.Scan(
			&ticket.ID,
			&ticket.ShowtimeID,
			&ticket.CustomerID,
			&ticket.NumSeats,
			&ticket.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (p *PostgresTicketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	query := `UPDATE tickets SET num_seats = $1, customer_id = $2 WHERE id = $3`

	tag, err := p.db.Exec(ctx, query, ticket.NumSeats, ticket.CustomerID, ticket.ID)
	if err != nil {
		return mapTicketWriteError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

func (p *PostgresTicketRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}
