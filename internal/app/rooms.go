package app

import (
	"context"
	"net/http"

	"github.com/metinatakli/ticket-office/api"
	"github.com/metinatakli/ticket-office/internal/cache"
	"github.com/metinatakli/ticket-office/internal/domain"
)

func (app *Application) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := app.roomRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.RoomListResponse{Rooms: make([]api.RoomResponse, len(rooms))}
	for i, room := range rooms {
		resp.Rooms[i] = toApiRoom(room)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var input api.CreateRoomJSONRequestBody

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

	room := domain.Room{
		Name:     input.Name,
		Capacity: input.Capacity,
	}

	err = app.roomRepo.Create(r.Context(), &room)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).InfoContext(r.Context(), "room created", "room_id", room.ID, "room", room.String())

	err = app.writeJSON(w, http.StatusCreated, toApiRoom(room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetRoom(w http.ResponseWriter, r *http.Request, roomId int) {
	room, err := app.cachedRoom(r.Context(), roomId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiRoom(*room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateRoom(w http.ResponseWriter, r *http.Request, roomId int) {
	var input api.UpdateRoomJSONRequestBody

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

	room, err := app.roomRepo.GetById(r.Context(), roomId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	// Existing showtimes keep the capacity they were scheduled with.
	if input.Name != nil {
		room.Name = *input.Name
	}
	if input.Capacity != nil {
		room.Capacity = *input.Capacity
	}

	err = app.roomRepo.Update(r.Context(), room)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.invalidate(r, domain.RoomCacheKey(roomId))

	err = app.writeJSON(w, http.StatusOK, toApiRoom(*room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteRoom(w http.ResponseWriter, r *http.Request, roomId int) {
	// Showtimes of the room go with it, so their cache entries go too.
	showtimes, err := app.scheduler.List(r.Context(), domain.ShowtimeFilter{RoomID: &roomId})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.roomRepo.Delete(r.Context(), roomId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.invalidate(r, append(showtimeKeys(showtimes), domain.RoomCacheKey(roomId))...)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) cachedRoom(ctx context.Context, id int) (*domain.Room, error) {
	return cache.ReadThrough(ctx, app.cache, app.logger, domain.RoomCacheKey(id), func(ctx context.Context) (*domain.Room, error) {
		return app.roomRepo.GetById(ctx, id)
	})
}

// invalidate drops cached entries after a write. The write already
// happened, so a cache failure is only logged.
func (app *Application) invalidate(r *http.Request, keys ...string) {
	err := app.cache.Invalidate(r.Context(), keys...)
	if err != nil {
		app.contextGetLogger(r).WarnContext(r.Context(), "failed to invalidate cache", "keys", keys, "error", err)
	}
}

func toApiRoom(room domain.Room) api.RoomResponse {
	return api.RoomResponse{
		Id:       room.ID,
		Name:     room.Name,
		Capacity: room.Capacity,
	}
}
