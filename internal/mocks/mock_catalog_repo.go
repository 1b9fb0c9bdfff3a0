package mocks

import (
	"context"

	"github.com/metinatakli/ticket-office/internal/domain"
)

type MockRoomRepo struct {
	domain.RoomRepository
	CreateFunc  func(ctx context.Context, room *domain.Room) error
	GetByIdFunc func(ctx context.Context, id int) (*domain.Room, error)
	GetAllFunc  func(ctx context.Context) ([]domain.Room, error)
	UpdateFunc  func(ctx context.Context, room *domain.Room) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	return m.CreateFunc(ctx, room)
}

func (m *MockRoomRepo) GetById(ctx context.Context, id int) (*domain.Room, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockRoomRepo) GetAll(ctx context.Context) ([]domain.Room, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	return m.UpdateFunc(ctx, room)
}

func (m *MockRoomRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

type MockMovieRepo struct {
	domain.MovieRepository
	CreateFunc  func(ctx context.Context, movie *domain.Movie) error
	GetByIdFunc func(ctx context.Context, id int) (*domain.Movie, error)
	GetAllFunc  func(ctx context.Context) ([]domain.Movie, error)
	UpdateFunc  func(ctx context.Context, movie *domain.Movie) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

type MockCustomerRepo struct {
	domain.CustomerRepository
	CreateFunc  func(ctx context.Context, customer *domain.Customer) error
	GetByIdFunc func(ctx context.Context, id int) (*domain.Customer, error)
	GetAllFunc  func(ctx context.Context) ([]domain.Customer, error)
	UpdateFunc  func(ctx context.Context, customer *domain.Customer) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	return m.CreateFunc(ctx, customer)
}

func (m *MockCustomerRepo) GetById(ctx context.Context, id int) (*domain.Customer, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockCustomerRepo) GetAll(ctx context.Context) ([]domain.Customer, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	return m.UpdateFunc(ctx, customer)
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
