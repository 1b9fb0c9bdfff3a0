package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/ticket-office/api"
	"github.com/metinatakli/ticket-office/internal/cache"
	"github.com/metinatakli/ticket-office/internal/mocks"
	"github.com/metinatakli/ticket-office/internal/validator"
)

var (
	testNow   = time.Date(2020, 6, 28, 12, 0, 0, 0, time.UTC)
	testStart = time.Date(2020, 6, 29, 8, 15, 0, 0, time.UTC)
)

// newTestApplication builds an application over repos with a fixed clock and
// no cache. Repositories left nil in repos fall back to unprogrammed mocks.
func newTestApplication(repos Repositories, opts ...func(*Application)) *Application {
	if repos.Rooms == nil {
		repos.Rooms = &mocks.MockRoomRepo{}
	}
	if repos.Movies == nil {
		repos.Movies = &mocks.MockMovieRepo{}
	}
	if repos.Customers == nil {
		repos.Customers = &mocks.MockCustomerRepo{}
	}
	if repos.Showtimes == nil {
		repos.Showtimes = &mocks.MockShowtimeRepo{}
	}
	if repos.Tickets == nil {
		repos.Tickets = &mocks.MockTicketRepo{}
	}

	app := NewApp(
		Config{Env: "test"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator.NewValidator(),
		cache.Noop{},
		repos,
	)
	app.clock = func() time.Time { return testNow }

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in %+v", wantErrMessage, validationResp.ValidationErrors)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	return resp
}

func ptr[T any](v T) *T {
	return &v
}
