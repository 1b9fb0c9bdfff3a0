package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-office/internal/domain"
)

// Namespace for pg_advisory_xact_lock(int, int) keys that guard a room timeline.
const roomTimelineLockSpace = 1

const showtimeColumns = `id, room_id, movie_id, start_time, end_time, capacity, available`

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) Create(
	ctx context.Context,
	showtime *domain.Showtime,
	guard domain.ScheduleGuard) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := checkRoomTimeline(ctx, tx, showtime, guard)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO showtimes (room_id, movie_id, start_time, end_time, capacity, available)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		err = tx.QueryRow(
			ctx,
			query,
			showtime.RoomID,
			showtime.MovieID,
			showtime.StartTime,
			showtime.EndTime,
			showtime.Capacity,
			showtime.Available).Scan(&showtime.ID)

		return mapShowtimeWriteError(err)
	})
}

// Update writes room, movie and schedule. Capacity and availability are not
// part of the statement so concurrent sales are never overwritten.
func (p *PostgresShowtimeRepository) Update(
	ctx context.Context,
	showtime *domain.Showtime,
	guard domain.ScheduleGuard) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := checkRoomTimeline(ctx, tx, showtime, guard)
		if err != nil {
			return err
		}

		query := `
			UPDATE showtimes
			SET room_id = $1, movie_id = $2, start_time = $3, end_time = $4
			WHERE id = $5
			RETURNING capacity, available
		`

		err = tx.QueryRow(
			ctx,
			query,
			showtime.RoomID,
			showtime.MovieID,
			showtime.StartTime,
			showtime.EndTime,
			showtime.ID).Scan(&showtime.Capacity, &showtime.Available)

		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrShowtimeNotFound
		}

		return mapShowtimeWriteError(err)
	})
}

// checkRoomTimeline takes the room's advisory lock for the rest of the
// transaction and hands the other showtimes of the room to guard.
func checkRoomTimeline(ctx context.Context, tx pgx.Tx, showtime *domain.Showtime, guard domain.ScheduleGuard) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, roomTimelineLockSpace, showtime.RoomID)
	if err != nil {
		return err
	}

	query := `SELECT ` + showtimeColumns + `
		FROM showtimes
		WHERE room_id = $1 AND id <> $2
		ORDER BY start_time, id`

	rows, err := tx.Query(ctx, query, showtime.RoomID, showtime.ID)
	if err != nil {
		return err
	}

	timeline, err := scanShowtimes(rows)
	if err != nil {
		return err
	}

	return guard(timeline)
}

func mapShowtimeWriteError(err error) error {
	if err == nil {
		return nil
	}

	if constraint, ok := isForeignKeyViolation(err); ok {
		switch constraint {
		case "showtimes_room_id_fkey":
			return domain.ErrRoomNotFound
		case "showtimes_movie_id_fkey":
			return domain.ErrMovieNotFound
		}
	}

	// The exclusion constraint only fires if a writer bypassed the room lock.
	if _, ok := pgViolation(err, pgerrcode.ExclusionViolation); ok {
		return domain.ErrShowtimeOverlap
	}

	return err
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	query := `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = $1`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.RoomID,
		&showtime.MovieID,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Capacity,
		&showtime.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShowtimeNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) GetAll(ctx context.Context, filter domain.ShowtimeFilter) ([]domain.Showtime, error) {
	query := `SELECT ` + showtimeColumns + `
		FROM showtimes
		WHERE ($1::int IS NULL OR room_id = $1)
			AND ($2::int IS NULL OR movie_id = $2)
			AND ($3::timestamptz IS NULL OR start_time >= $3)
			AND ($4::timestamptz IS NULL OR start_time <= $4)
		ORDER BY start_time, id`

	args := []any{filter.RoomID, filter.MovieID, nil, nil}
	if filter.Window != nil {
		args[2] = filter.Window.Start
		args[3] = filter.Window.End
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return scanShowtimes(rows)
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrShowtimeNotFound
	}

	return nil
}

func scanShowtimes(rows pgx.Rows) ([]domain.Showtime, error) {
	defer rows.Close()

	showtimes := []domain.Showtime{}

	for rows.Next() {
		var showtime domain.Showtime

		err := rows.Scan(
			&showtime.ID,
			&showtime.RoomID,
			&showtime.MovieID,
			&showtime.StartTime,
			&showtime.EndTime,
			&showtime.Capacity,
			&showtime.Available,
		)
		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, showtime)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}
