package mocks

import (
	"context"

	"github.com/metinatakli/ticket-office/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockShowtimeRepo records calls; Create and Update run the guard against
// the timeline given as their third argument (nil for an empty room).
type MockShowtimeRepo struct {
	mock.Mock
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime, guard domain.ScheduleGuard) error {
	args := m.Called(ctx, showtime, guard)
	return runGuard(args, guard)
}

func (m *MockShowtimeRepo) Update(ctx context.Context, showtime *domain.Showtime, guard domain.ScheduleGuard) error {
	args := m.Called(ctx, showtime, guard)
	return runGuard(args, guard)
}

func runGuard(args mock.Arguments, guard domain.ScheduleGuard) error {
	if err := args.Error(0); err != nil {
		return err
	}

	var timeline []domain.Showtime
	if len(args) > 1 && args.Get(1) != nil {
		timeline = args.Get(1).([]domain.Showtime)
	}

	return guard(timeline)
}

func (m *MockShowtimeRepo) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Showtime), args.Error(1)
}

func (m *MockShowtimeRepo) GetAll(ctx context.Context, filter domain.ShowtimeFilter) ([]domain.Showtime, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Showtime), args.Error(1)
}

func (m *MockShowtimeRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTicketRepo struct {
	mock.Mock
}

func (m *MockTicketRepo) Sell(ctx context.Context, ticket *domain.Ticket) (int, error) {
	args := m.Called(ctx, ticket)
	return args.Int(0), args.Error(1)
}

func (m *MockTicketRepo) GetById(ctx context.Context, id int) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepo) GetAll(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepo) Update(ctx context.Context, ticket *domain.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
