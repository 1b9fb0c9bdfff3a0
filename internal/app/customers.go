package app

import (
	"net/http"

	"github.com/metinatakli/ticket-office/api"
	"github.com/metinatakli/ticket-office/internal/domain"
)

func (app *Application) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := app.customerRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CustomerListResponse{Customers: make([]api.CustomerResponse, len(customers))}
	for i, customer := range customers {
		resp.Customers[i] = toApiCustomer(customer)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var input api.CreateCustomerJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	customer := domain.Customer{Name: input.Name}

	err = app.customerRepo.Create(r.Context(), &customer)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).InfoContext(r.Context(), "customer created", "customer_id", customer.ID, "customer", customer.String())

	err = app.writeJSON(w, http.StatusCreated, toApiCustomer(customer), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCustomer(w http.ResponseWriter, r *http.Request, customerId int) {
	customer, err := app.customerRepo.GetById(r.Context(), customerId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCustomer(*customer), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateCustomer(w http.ResponseWriter, r *http.Request, customerId int) {
	var input api.UpdateCustomerJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	customer, err := app.customerRepo.GetById(r.Context(), customerId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}

	err = app.customerRepo.Update(r.Context(), customer)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCustomer(*customer), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteCustomer removes the customer. Their tickets stay sold and lose the reference.
func (app *Application) DeleteCustomer(w http.ResponseWriter, r *http.Request, customerId int) {
	err := app.customerRepo.Delete(r.Context(), customerId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiCustomer(customer domain.Customer) api.CustomerResponse {
	return api.CustomerResponse{
		Id:   customer.ID,
		Name: customer.Name,
	}
}
