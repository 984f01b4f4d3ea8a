package refresh_availability

import (
	"errors"
	"net/http"

	"github.com/avkotov/KNS-SeatService/internal/api/handlers"
	"github.com/avkotov/KNS-SeatService/internal/service/availability"
)

const (
	msgSyncInProgress = "синхронизация уже выполняется"
)

type Handler struct {
	availability AvailabilityService
	logger       Logger
}

func NewHandler(availabilitySvc AvailabilityService, logger Logger) *Handler {
	return &Handler{
		availability: availabilitySvc,
		logger:       logger,
	}
}

// Handle POST /api/v1/availability/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.availability.Reconcile(r.Context(), availability.Options{
		Trigger: availability.TriggerManual,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrSyncInProgress):
			h.logger.Info("POST /availability/refresh - Sync already in progress, request dropped")
			handlers.RespondError(w, http.StatusTooManyRequests, msgSyncInProgress)

		default:
			h.logger.Error("POST /availability/refresh - Failed to reconcile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromResult(result))
}
