package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-office/internal/domain"
)

type PostgresCustomerRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCustomerRepository(db *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{
		db: db,
	}
}

func (p *PostgresCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `INSERT INTO customers (name) VALUES ($1) RETURNING id`

	return p.db.QueryRow(ctx, query, customer.Name).Scan(&customer.ID)
}

func (p *PostgresCustomerRepository) GetById(ctx context.Context, id int) (*domain.Customer, error) {
	var customer domain.Customer

	err := p.db.QueryRow(ctx, `SELECT id, name FROM customers WHERE id = $1`, id).Scan(&customer.ID, &customer.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}

		return nil, err
	}

	return &customer, nil
}

func (p *PostgresCustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	rows, err := p.db.Query(ctx, `SELECT id, name FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}

	for rows.Next() {
		var customer domain.Customer

		err := rows.Scan(&customer.ID, &customer.Name)
		if err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func (p *PostgresCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	tag, err := p.db.Exec(ctx, `UPDATE customers SET name = $1 WHERE id = $2`, customer.Name, customer.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

// Delete removes the customer; tickets bought by it stay and lose the reference.
func (p *PostgresCustomerRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}
