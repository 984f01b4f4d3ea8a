package toggle_seat

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avkotov/KNS-SeatService/internal/api/handlers"
	toggleSeat "github.com/avkotov/KNS-SeatService/internal/usecase/toggle_seat"
)

const (
	msgSessionNotFound   = "сессия не найдена или истекла"
	msgSyncInProgress    = "идет синхронизация, попробуйте через мгновение"
	msgNoActivePool      = "сначала выберите дату и временной слот"
	msgUnknownSeat       = "неизвестное место"
	msgSeatAlreadyBooked = "место уже занято"
	msgTooManySeats      = "превышен лимит мест на одно бронирование"
)

type Handler struct {
	useCase ToggleSeatUseCase
	logger  Logger
}

func NewHandler(useCase ToggleSeatUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/seats/{seatId}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	seatID := vars["seatId"]

	result, err := h.useCase.Execute(r.Context(), &toggleSeat.Request{
		SessionID: sessionID,
		SeatID:    seatID,
	})
	if err != nil {
		switch {
		case errors.Is(err, toggleSeat.ErrSessionNotFound):
			h.logger.Warn("POST .../seats/{seatId}/toggle - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, toggleSeat.ErrSyncInProgress):
			h.logger.Info("POST .../seats/{seatId}/toggle - Sync in progress: session_id=%s, seat=%s", sessionID, seatID)
			handlers.RespondError(w, http.StatusTooManyRequests, msgSyncInProgress)

		case errors.Is(err, toggleSeat.ErrNoActivePool):
			h.logger.Warn("POST .../seats/{seatId}/toggle - No active pool: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgNoActivePool)

		case errors.Is(err, toggleSeat.ErrUnknownSeat):
			h.logger.Warn("POST .../seats/{seatId}/toggle - Unknown seat: session_id=%s, seat=%s", sessionID, seatID)
			handlers.RespondBadRequest(w, msgUnknownSeat)

		case errors.Is(err, toggleSeat.ErrSeatAlreadyBooked):
			h.logger.Info("POST .../seats/{seatId}/toggle - Seat already booked: session_id=%s, seat=%s", sessionID, seatID)
			handlers.RespondError(w, http.StatusConflict, msgSeatAlreadyBooked)

		case errors.Is(err, toggleSeat.ErrTooManySeats):
			h.logger.Warn("POST .../seats/{seatId}/toggle - Seat limit reached: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgTooManySeats)

		default:
			h.logger.Error("POST .../seats/{seatId}/toggle - Failed to toggle seat: session_id=%s, seat=%s, error=%v",
				sessionID, seatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
