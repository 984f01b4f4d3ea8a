package sync_status

import (
	"net/http"
	"time"

	"github.com/avkotov/KNS-SeatService/internal/api/handlers"
)

// StatusResponse HTTP response model
type StatusResponse struct {
	Syncing    bool   `json:"syncing"`
	Polling    bool   `json:"polling"`
	LastSyncAt string `json:"lastSyncAt,omitempty"`
	LastSource string `json:"lastSource"`
}

type Handler struct {
	availability AvailabilityService
	scheduler    Scheduler
}

func NewHandler(availabilitySvc AvailabilityService, scheduler Scheduler) *Handler {
	return &Handler{
		availability: availabilitySvc,
		scheduler:    scheduler,
	}
}

// Handle GET /api/v1/availability/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := h.availability.Status()

	lastSyncAt := ""
	if !status.LastSyncAt.IsZero() {
		lastSyncAt = status.LastSyncAt.Format(time.RFC3339)
	}

	handlers.RespondJSON(w, http.StatusOK, StatusResponse{
		Syncing:    status.Syncing,
		Polling:    h.scheduler.Running(),
		LastSyncAt: lastSyncAt,
		LastSource: string(status.LastSource),
	})
}
