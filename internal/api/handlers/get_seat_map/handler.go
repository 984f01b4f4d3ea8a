package get_seat_map

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avkotov/KNS-SeatService/internal/api/handlers"
	getSeatMap "github.com/avkotov/KNS-SeatService/internal/usecase/get_seat_map"
)

const (
	msgSessionNotFound = "сессия не найдена или истекла"
)

type Handler struct {
	useCase GetSeatMapUseCase
	logger  Logger
}

func NewHandler(useCase GetSeatMapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/seats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &getSeatMap.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, getSeatMap.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{sessionId}/seats - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{sessionId}/seats - Failed to build seat map: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
