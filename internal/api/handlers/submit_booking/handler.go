package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avkotov/KNS-SeatService/internal/api/handlers"
	submitBooking "github.com/avkotov/KNS-SeatService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgSyncInProgress     = "идет синхронизация, попробуйте через мгновение"
	msgNoActivePool       = "сначала выберите дату и временной слот"
	msgEmptySelection     = "не выбрано ни одного места"
	msgInvalidName        = "укажите имя (не длиннее 100 символов)"
	msgInvalidEmail       = "некорректный email"
	msgInvalidPhone       = "телефон должен состоять из 10 цифр"
	msgSeatConflict       = "часть выбранных мест уже занята"
	msgStoreUnavailable   = "хранилище бронирований недоступно, попробуйте позже"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST .../booking - Invalid request body: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		var conflict *submitBooking.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST .../booking - Seat conflict: session_id=%s, seats=%v", sessionID, conflict.Seats)
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgSeatConflict, conflict))

		case errors.Is(err, submitBooking.ErrSessionNotFound):
			h.logger.Warn("POST .../booking - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBooking.ErrSyncInProgress):
			h.logger.Info("POST .../booking - Sync in progress: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusTooManyRequests, msgSyncInProgress)

		case errors.Is(err, submitBooking.ErrNoActivePool):
			h.logger.Warn("POST .../booking - No active pool: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgNoActivePool)

		case errors.Is(err, submitBooking.ErrEmptySelection):
			h.logger.Warn("POST .../booking - Empty selection: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgEmptySelection)

		case errors.Is(err, submitBooking.ErrInvalidName):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidName)

		case errors.Is(err, submitBooking.ErrInvalidEmail):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidEmail)

		case errors.Is(err, submitBooking.ErrInvalidPhone):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidPhone)

		case errors.Is(err, submitBooking.ErrStoreUnavailable):
			h.logger.Error("POST .../booking - Remote store unavailable: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST .../booking - Failed to submit booking: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST .../booking - Booking committed: session_id=%s, booking_id=%s, seats=%d",
		sessionID, result.BookingID, result.Count)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
