package app

import (
	"net/http"

	"github.com/metinatakli/ticket-office/api"
	"github.com/metinatakli/ticket-office/internal/booking"
	"github.com/metinatakli/ticket-office/internal/domain"
)

func (app *Application) ListTickets(w http.ResponseWriter, r *http.Request, params api.ListTicketsParams) {
	tickets, err := app.ledger.List(r.Context(), domain.TicketFilter{ShowtimeID: params.ShowtimeId})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TicketListResponse{Tickets: make([]api.TicketResponse, len(tickets))}
	for i, ticket := range tickets {
		resp.Tickets[i] = toApiTicket(ticket)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SellTicket(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.SellTicketJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.readTicketErrorResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	// NumSeats carries no tag; the ledger owns the positive count rule.
	sale, err := app.ledger.Sell(r.Context(), booking.SaleInput{
		ShowtimeID: input.ShowtimeId,
		NumSeats:   input.NumSeats,
		CustomerID: input.CustomerId,
	}, app.clock())
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.invalidate(r, domain.ShowtimeCacheKey(input.ShowtimeId))

	logger.InfoContext(r.Context(), "ticket sold",
		"ticket_id", sale.Ticket.ID,
		"showtime_id", sale.Ticket.ShowtimeID,
		"num_seats", sale.Ticket.NumSeats,
		"available", sale.Remaining)

	resp := api.SaleResponse{
		Ticket:    toApiTicket(sale.Ticket),
		Available: sale.Remaining,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTicket(w http.ResponseWriter, r *http.Request, ticketId int) {
	ticket, err := app.ledger.Get(r.Context(), ticketId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiTicket(*ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateTicket(w http.ResponseWriter, r *http.Request, ticketId int) {
	var input api.UpdateTicketJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.readTicketErrorResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	ticket, err := app.ledger.Update(r.Context(), ticketId, booking.TicketUpdate{
		NumSeats:   input.NumSeats,
		CustomerID: input.CustomerId,
	})
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiTicket(*ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteTicket(w http.ResponseWriter, r *http.Request, ticketId int) {
	err := app.ledger.Delete(r.Context(), ticketId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readTicketErrorResponse answers a body that failed to decode. A seat count
// that is not an integer is a seat count error, not a malformed request.
func (app *Application) readTicketErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if isFieldTypeError(err, "numSeats") {
		app.unprocessableEntityResponse(w, r, "numSeats", domain.ErrInvalidSeatCount)
		return
	}

	app.badRequestResponse(w, r, err)
}

func toApiTicket(ticket domain.Ticket) api.TicketResponse {
	return api.TicketResponse{
		Id:         ticket.ID,
		ShowtimeId: ticket.ShowtimeID,
		CustomerId: ticket.CustomerID,
		NumSeats:   ticket.NumSeats,
		CreatedAt:  ticket.CreatedAt.UTC(),
	}
}
