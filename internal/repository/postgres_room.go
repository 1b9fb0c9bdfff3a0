package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-office/internal/domain"
)

type PostgresRoomRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRoomRepository(db *pgxpool.Pool) *PostgresRoomRepository {
	return &PostgresRoomRepository{
		db: db,
	}
}

func (p *PostgresRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (name, capacity)
		VALUES ($1, $2)
		RETURNING id`

	return p.db.QueryRow(ctx, query, room.Name, room.Capacity).Scan(&room.ID)
}

func (p *PostgresRoomRepository) GetById(ctx context.Context, id int) (*domain.Room, error) {
	query := `SELECT id, name, capacity FROM rooms WHERE id = $1`

	var room domain.Room

	err := p.db.QueryRow(ctx, query, id).Scan(&room.ID, &room.Name, &room.Capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, err
	}

	return &room, nil
}

func (p *PostgresRoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT id, name, capacity FROM rooms ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []domain.Room{}

	for rows.Next() {
		var room domain.Room

		err := rows.Scan(&room.ID, &room.Name, &room.Capacity)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// Update changes the room row only. Showtimes keep the capacity they were
// scheduled with.
func (p *PostgresRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `UPDATE rooms SET name = $1, capacity = $2 WHERE id = $3`

	tag, err := p.db.Exec(ctx, query, room.Name, room.Capacity, room.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}

func (p *PostgresRoomRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}
