package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/metinatakli/ticket-office/internal/domain"
)

// MemoryStore keeps the whole catalog in process memory. It satisfies every
// repository interface of the domain package and follows the same cascade
// rules as the Postgres schema. Schedule writes are serialized per room.
type MemoryStore struct {
	mu        sync.RWMutex
	rooms     map[int]domain.Room
	movies    map[int]domain.Movie
	customers map[int]domain.Customer
	showtimes map[int]domain.Showtime
	tickets   map[int]domain.Ticket
	lastID    int

	roomLocksMu sync.Mutex
	roomLocks   map[int]*sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:     make(map[int]domain.Room),
		movies:    make(map[int]domain.Movie),
		customers: make(map[int]domain.Customer),
		showtimes: make(map[int]domain.Showtime),
		tickets:   make(map[int]domain.Ticket),
		roomLocks: make(map[int]*sync.Mutex),
	}
}

// Rooms, Movies, Customers, Showtimes and Tickets expose the store through
// the narrow repository interfaces.

func (m *MemoryStore) Rooms() domain.RoomRepository {
	return memoryRooms{m}
}

func (m *MemoryStore) Movies() domain.MovieRepository {
	return memoryMovies{m}
}

func (m *MemoryStore) Customers() domain.CustomerRepository {
	return memoryCustomers{m}
}

func (m *MemoryStore) Showtimes() domain.ShowtimeRepository {
	return memoryShowtimes{m}
}

func (m *MemoryStore) Tickets() domain.TicketRepository {
	return memoryTickets{m}
}

// nextID must be called with mu held for writing.
func (m *MemoryStore) nextID() int {
	m.lastID++
	return m.lastID
}

func (m *MemoryStore) lockRoom(roomID int) func() {
	m.roomLocksMu.Lock()
	lock, ok := m.roomLocks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		m.roomLocks[roomID] = lock
	}
	m.roomLocksMu.Unlock()

	lock.Lock()

	return lock.Unlock
}

func sortedValues[T any](items map[int]T, id func(T) int) []T {
	values := make([]T, 0, len(items))
	for _, v := range items {
		values = append(values, v)
	}

	slices.SortFunc(values, func(a, b T) int { return cmp.Compare(id(a), id(b)) })

	return values
}

// deleteShowtimeLocked removes a showtime and its tickets; mu must be held.
func (m *MemoryStore) deleteShowtimeLocked(id int) {
	delete(m.showtimes, id)

	for ticketID, ticket := range m.tickets {
		if ticket.ShowtimeID == id {
			delete(m.tickets, ticketID)
		}
	}
}

type memoryRooms struct{ m *MemoryStore }

func (r memoryRooms) Create(_ context.Context, room *domain.Room) error {
	if err := room.Validate(); err != nil {
		return err
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	room.ID = r.m.nextID()
	r.m.rooms[room.ID] = *room

	return nil
}

func (r memoryRooms) GetById(_ context.Context, id int) (*domain.Room, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	room, ok := r.m.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	return &room, nil
}

func (r memoryRooms) GetAll(_ context.Context) ([]domain.Room, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	return sortedValues(r.m.rooms, func(room domain.Room) int { return room.ID }), nil
}

func (r memoryRooms) Update(_ context.Context, room *domain.Room) error {
	if err := room.Validate(); err != nil {
		return err
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.rooms[room.ID]; !ok {
		return domain.ErrRoomNotFound
	}

	r.m.rooms[room.ID] = *room

	return nil
}

func (r memoryRooms) Delete(_ context.Context, id int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.rooms[id]; !ok {
		return domain.ErrRoomNotFound
	}

	delete(r.m.rooms, id)

	for showtimeID, showtime := range r.m.showtimes {
		if showtime.RoomID == id {
			r.m.deleteShowtimeLocked(showtimeID)
		}
	}

	return nil
}

type memoryMovies struct{ m *MemoryStore }

func (r memoryMovies) Create(_ context.Context, movie *domain.Movie) error {
	if err := movie.Validate(); err != nil {
		return err
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	movie.ID = r.m.nextID()
	r.m.movies[movie.ID] = *movie

	return nil
}

func (r memoryMovies) GetById(_ context.Context, id int) (*domain.Movie, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	movie, ok := r.m.movies[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}

	return &movie, nil
}

func (r memoryMovies) GetAll(_ context.Context) ([]domain.Movie, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	return sortedValues(r.m.movies, func(movie domain.Movie) int { return movie.ID }), nil
}

func (r memoryMovies) Update(_ context.Context, movie *domain.Movie) error {
	if err := movie.Validate(); err != nil {
		return err
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.movies[movie.ID]; !ok {
		return domain.ErrMovieNotFound
	}

	r.m.movies[movie.ID] = *movie

	return nil
}

func (r memoryMovies) Delete(_ context.Context, id int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.movies[id]; !ok {
		return domain.ErrMovieNotFound
	}

	delete(r.m.movies, id)

	for showtimeID, showtime := range r.m.showtimes {
		if showtime.MovieID == id {
			r.m.deleteShowtimeLocked(showtimeID)
		}
	}

	return nil
}

type memoryCustomers struct{ m *MemoryStore }

func (r memoryCustomers) Create(_ context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	customer.ID = r.m.nextID()
	r.m.customers[customer.ID] = *customer

	return nil
}

func (r memoryCustomers) GetById(_ context.Context, id int) (*domain.Customer, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	customer, ok := r.m.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}

	return &customer, nil
}

func (r memoryCustomers) GetAll(_ context.Context) ([]domain.Customer, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	return sortedValues(r.m.customers, func(c domain.Customer) int { return c.ID }), nil
}

func (r memoryCustomers) Update(_ context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.customers[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}

	r.m.customers[customer.ID] = *customer

	return nil
}

func (r memoryCustomers) Delete(_ context.Context, id int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}

	delete(r.m.customers, id)

	for ticketID, ticket := range r.m.tickets {
		if ticket.CustomerID != nil && *ticket.CustomerID == id {
			delete(r.m.tickets, ticketID)
		}
	}

	return nil
}

type memoryShowtimes struct{ m *MemoryStore }

func (r memoryShowtimes) Create(_ context.Context, showtime *domain.Showtime, guard domain.ScheduleGuard) error {
	unlock := r.m.lockRoom(showtime.RoomID)
	defer unlock()

	err := guard(r.timeline(showtime.RoomID, showtime.ID))
	if err != nil {
		return err
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if err := r.checkReferences(showtime); err != nil {
		return err
	}

	showtime.ID = r.m.nextID()
	r.m.showtimes[showtime.ID] = *showtime

	return nil
}

func (r memoryShowtimes) Update(_ context.Context, showtime *domain.Showtime, guard domain.ScheduleGuard) error {
	unlock := r.m.lockRoom(showtime.RoomID)
	defer unlock()

	err := guard(r.timeline(showtime.RoomID, showtime.ID))
	if err != nil {
		return err
	}

	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	current, ok := r.m.showtimes[showtime.ID]
	if !ok {
		return domain.ErrShowtimeNotFound
	}

	if err := r.checkReferences(showtime); err != nil {
		return err
	}

	showtime.Capacity = current.Capacity
	showtime.Available = current.Available
	r.m.showtimes[showtime.ID] = *showtime

	return nil
}

// timeline returns the showtimes of a room other than excludeID.
func (r memoryShowtimes) timeline(roomID, excludeID int) []domain.Showtime {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	var timeline []domain.Showtime
	for _, s := range r.m.showtimes {
		if s.RoomID == roomID && s.ID != excludeID {
			timeline = append(timeline, s)
		}
	}

	return timeline
}

// checkReferences must be called with mu held.
func (r memoryShowtimes) checkReferences(showtime *domain.Showtime) error {
	if _, ok := r.m.rooms[showtime.RoomID]; !ok {
		return domain.ErrRoomNotFound
	}

	if _, ok := r.m.movies[showtime.MovieID]; !ok {
		return domain.ErrMovieNotFound
	}

	return nil
}

func (r memoryShowtimes) GetById(_ context.Context, id int) (*domain.Showtime, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	showtime, ok := r.m.showtimes[id]
	if !ok {
		return nil, domain.ErrShowtimeNotFound
	}

	return &showtime, nil
}

func (r memoryShowtimes) GetAll(_ context.Context, filter domain.ShowtimeFilter) ([]domain.Showtime, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	showtimes := make([]domain.Showtime, 0)
	for _, s := range r.m.showtimes {
		if filter.RoomID != nil && s.RoomID != *filter.RoomID {
			continue
		}
		if filter.MovieID != nil && s.MovieID != *filter.MovieID {
			continue
		}
		if filter.Window != nil && !filter.Window.Contains(s.StartTime) {
			continue
		}

		showtimes = append(showtimes, s)
	}

	slices.SortFunc(showtimes, func(a, b domain.Showtime) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return showtimes, nil
}

func (r memoryShowtimes) Delete(_ context.Context, id int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.showtimes[id]; !ok {
		return domain.ErrShowtimeNotFound
	}

	r.m.deleteShowtimeLocked(id)

	return nil
}

type memoryTickets struct{ m *MemoryStore }

func (r memoryTickets) Sell(_ context.Context, ticket *domain.Ticket) (int, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	showtime, ok := r.m.showtimes[ticket.ShowtimeID]
	if !ok {
		return 0, domain.ErrShowtimeNotFound
	}

	if ticket.CustomerID != nil {
		if _, ok := r.m.customers[*ticket.CustomerID]; !ok {
			return 0, domain.ErrCustomerNotFound
		}
	}

	if showtime.Available-ticket.NumSeats < 0 {
		return 0, domain.ErrInsufficientAvailability
	}

	showtime.Available -= ticket.NumSeats
	r.m.showtimes[showtime.ID] = showtime

	ticket.ID = r.m.nextID()
	r.m.tickets[ticket.ID] = *ticket

	return showtime.Available, nil
}

func (r memoryTickets) GetById(_ context.Context, id int) (*domain.Ticket, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	ticket, ok := r.m.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}

	return &ticket, nil
}

func (r memoryTickets) GetAll(_ context.Context, filter domain.TicketFilter) ([]domain.Ticket, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	tickets := sortedValues(r.m.tickets, func(t domain.Ticket) int { return t.ID })
	if filter.ShowtimeID == nil {
		return tickets, nil
	}

	return slices.DeleteFunc(tickets, func(t domain.Ticket) bool {
		return t.ShowtimeID != *filter.ShowtimeID
	}), nil
}

func (r memoryTickets) Update(_ context.Context, ticket *domain.Ticket) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.tickets[ticket.ID]; !ok {
		return domain.ErrTicketNotFound
	}

	if ticket.CustomerID != nil {
		if _, ok := r.m.customers[*ticket.CustomerID]; !ok {
			return domain.ErrCustomerNotFound
		}
	}

	r.m.tickets[ticket.ID] = *ticket

	return nil
}

func (r memoryTickets) Delete(_ context.Context, id int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.tickets[id]; !ok {
		return domain.ErrTicketNotFound
	}

	delete(r.m.tickets, id)

	return nil
}
