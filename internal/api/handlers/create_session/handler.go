package create_session

import (
	"errors"
	"net/http"

	"github.com/avkotov/KNS-SeatService/internal/api/handlers"
	createSession "github.com/avkotov/KNS-SeatService/internal/usecase/create_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgIncompleteKey      = "дата и временной слот задаются только вместе"
)

type Handler struct {
	useCase CreateSessionUseCase
	logger  Logger
}

func NewHandler(useCase CreateSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createSession.ErrSessionNotFound):
			h.logger.Warn("POST /sessions - Session not found: session_id=%s", req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createSession.ErrIncompleteKey):
			h.logger.Warn("POST /sessions - Incomplete key: date=%q, time_slot=%q", req.Date, req.TimeSlot)
			handlers.RespondBadRequest(w, msgIncompleteKey)

		default:
			h.logger.Error("POST /sessions - Failed to create session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if req.SessionID != "" {
		status = http.StatusOK
	}

	h.logger.Info("POST /sessions - Session ready: session_id=%s, has_pool=%t", result.SessionID, result.HasPool)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
