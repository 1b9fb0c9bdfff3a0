package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/ticket-office/api"
	"github.com/metinatakli/ticket-office/internal/domain"
	"github.com/metinatakli/ticket-office/internal/mocks"
	"github.com/metinatakli/ticket-office/internal/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ShowtimeTestSuite struct {
	suite.Suite
	app          *Application
	roomRepo     *mocks.MockRoomRepo
	movieRepo    *mocks.MockMovieRepo
	showtimeRepo *mocks.MockShowtimeRepo
}

func (s *ShowtimeTestSuite) SetupTest() {
	s.roomRepo = &mocks.MockRoomRepo{
		GetByIdFunc: func(_ context.Context, id int) (*domain.Room, error) {
			if id != 1 {
				return nil, domain.ErrRoomNotFound
			}
			return &domain.Room{ID: 1, Name: "Blue", Capacity: 30}, nil
		},
	}
	s.movieRepo = &mocks.MockMovieRepo{
		GetByIdFunc: func(_ context.Context, id int) (*domain.Movie, error) {
			if id != 2 {
				return nil, domain.ErrMovieNotFound
			}
			return &domain.Movie{ID: 2, Title: "Heat", Duration: 90}, nil
		},
	}
	s.showtimeRepo = new(mocks.MockShowtimeRepo)

	s.app = newTestApplication(Repositories{
		Rooms:     s.roomRepo,
		Movies:    s.movieRepo,
		Showtimes: s.showtimeRepo,
	})
}

func TestShowtimeSuite(t *testing.T) {
	suite.Run(t, new(ShowtimeTestSuite))
}

func (s *ShowtimeTestSuite) TestCreateShowtime() {
	conflicting := domain.Showtime{
		ID:        7,
		RoomID:    1,
		StartTime: testStart.Add(-time.Hour),
		EndTime:   testStart.Add(30 * time.Minute),
	}

	tests := []struct {
		name           string
		input          any
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.ShowtimeResponse
	}{
		{
			name:  "should schedule showtime with end time and full availability",
			input: api.ShowtimeRequest{RoomId: 1, MovieId: 2, StartTime: testStart},
			setupMocks: func() {
				s.showtimeRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, []domain.Showtime(nil)).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.Showtime).ID = 11
					}).Once()
			},
			wantStatus: http.StatusCreated,
			wantResponse: &api.ShowtimeResponse{
				Id:        11,
				RoomId:    1,
				MovieId:   2,
				StartTime: testStart,
				EndTime:   time.Date(2020, 6, 29, 9, 45, 0, 0, time.UTC),
				Capacity:  30,
				Available: 30,
			},
		},
		{
			name:  "should reject overlapping showtime",
			input: api.ShowtimeRequest{RoomId: 1, MovieId: 2, StartTime: testStart},
			setupMocks: func() {
				s.showtimeRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, []domain.Showtime{conflicting}).Once()
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: (&domain.OverlapError{RoomID: 1, ShowtimeID: 7}).Error(),
		},
		{
			name:  "should report storage level overlap as conflict",
			input: api.ShowtimeRequest{RoomId: 1, MovieId: 2, StartTime: testStart},
			setupMocks: func() {
				s.showtimeRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(domain.ErrShowtimeOverlap).Once()
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrShowtimeOverlap.Error(),
		},
		{
			name:           "should reject start time in the past",
			input:          api.ShowtimeRequest{RoomId: 1, MovieId: 2, StartTime: testNow.Add(-time.Minute)},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: domain.ErrPastStartTime.Error(),
		},
		{
			name:           "should reject start time equal to now",
			input:          api.ShowtimeRequest{RoomId: 1, MovieId: 2, StartTime: testNow},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: domain.ErrPastStartTime.Error(),
		},
		{
			name:           "should fail when room does not exist",
			input:          api.ShowtimeRequest{RoomId: 4, MovieId: 2, StartTime: testStart},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: domain.ErrRoomNotFound.Error(),
		},
		{
			name:           "should fail when movie does not exist",
			input:          api.ShowtimeRequest{RoomId: 1, MovieId: 4, StartTime: testStart},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: domain.ErrMovieNotFound.Error(),
		},
		{
			name:           "should fail when room id is missing",
			input:          api.ShowtimeRequest{MovieId: 2, StartTime: testStart},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:           "should fail when start time is not a timestamp",
			input:          `{"roomId":1,"movieId":2,"startTime":"tomorrow"}`,
			wantStatus:     http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/showtimes", tt.input)
			s.app.CreateShowtime(w, r)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantResponse != nil {
				got := decodeResponse[api.ShowtimeResponse](s.T(), w)
				if diff := cmp.Diff(*tt.wantResponse, got); diff != "" {
					s.T().Errorf("response mismatch (-want +got):\n%s", diff)
				}
			}

			s.showtimeRepo.AssertExpectations(s.T())
		})
	}
}

func (s *ShowtimeTestSuite) TestUpdateShowtimeKeepsSeats() {
	current := &domain.Showtime{
		ID:        11,
		RoomID:    1,
		MovieID:   2,
		StartTime: testStart,
		EndTime:   testStart.Add(90 * time.Minute),
		Capacity:  30,
		Available: 12,
	}
	moved := testStart.Add(3 * time.Hour)

	s.showtimeRepo.On("GetById", mock.Anything, 11).Return(current, nil).Once()
	s.showtimeRepo.On("Update", mock.Anything, mock.MatchedBy(func(st *domain.Showtime) bool {
		return st.StartTime.Equal(moved)
	}), mock.Anything).Return(nil, []domain.Showtime(nil)).Once()

	w, r := executeRequest(s.T(), http.MethodPatch, "/showtimes/11", api.UpdateShowtimeRequest{StartTime: &moved})
	s.app.UpdateShowtime(w, r, 11)

	s.Equal(http.StatusOK, w.Code)

	got := decodeResponse[api.ShowtimeResponse](s.T(), w)
	s.True(got.EndTime.Equal(moved.Add(90 * time.Minute)))
	s.Equal(12, got.Available)
	s.Equal(30, got.Capacity)
	s.showtimeRepo.AssertExpectations(s.T())
}

func (s *ShowtimeTestSuite) TestUpdateShowtimeNotFound() {
	s.showtimeRepo.On("GetById", mock.Anything, 99).Return(nil, domain.ErrShowtimeNotFound).Once()

	w, r := executeRequest(s.T(), http.MethodPatch, "/showtimes/99", api.UpdateShowtimeRequest{RoomId: ptr(1)})
	s.app.UpdateShowtime(w, r, 99)

	s.Equal(http.StatusNotFound, w.Code)
	checkErrorResponse(s.T(), w, http.StatusNotFound, domain.ErrShowtimeNotFound.Error())
}

func (s *ShowtimeTestSuite) TestListShowtimes() {
	end := testStart.Add(-time.Hour)

	tests := []struct {
		name       string
		params     api.ListShowtimesParams
		wantFilter *domain.ShowtimeFilter
		wantStatus int
	}{
		{
			name:       "should list without window",
			params:     api.ListShowtimesParams{RoomId: ptr(1)},
			wantFilter: &domain.ShowtimeFilter{RoomID: ptr(1)},
			wantStatus: http.StatusOK,
		},
		{
			name:   "should pass window when bounds are given",
			params: api.ListShowtimesParams{Start: ptr(testNow), End: ptr(testStart)},
			wantFilter: &domain.ShowtimeFilter{
				Window: &domain.TimeWindow{Start: testNow, End: ptr(testStart)},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "should reject window ending before it starts",
			params:     api.ListShowtimesParams{Start: ptr(testStart), End: &end},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.wantFilter != nil {
				s.showtimeRepo.On("GetAll", mock.Anything, *tt.wantFilter).
					Return([]domain.Showtime{{ID: 3, RoomID: 1, MovieID: 2, StartTime: testStart}}, nil).Once()
			}

			w, r := executeRequest(s.T(), http.MethodGet, "/showtimes", nil)
			s.app.ListShowtimes(w, r, tt.params)

			s.Equal(tt.wantStatus, w.Code)
			s.showtimeRepo.AssertExpectations(s.T())
		})
	}
}

func (s *ShowtimeTestSuite) TestDeleteShowtime() {
	s.showtimeRepo.On("Delete", mock.Anything, 11).Return(nil).Once()

	w, r := executeRequest(s.T(), http.MethodDelete, "/showtimes/11", nil)
	s.app.DeleteShowtime(w, r, 11)

	s.Equal(http.StatusNoContent, w.Code)
	s.showtimeRepo.AssertExpectations(s.T())
}
