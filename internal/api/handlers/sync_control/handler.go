package sync_control

import (
	"net/http"

	"github.com/avkotov/KNS-SeatService/internal/api/handlers"
)

// ControlResponse HTTP response model
type ControlResponse struct {
	Polling bool `json:"polling"`
}

// Handler управляет фоновым опросом занятости. Используется
// клиентом при скрытии и возврате вкладки: скрытая вкладка
// не жжет квоту удаленного хранилища впустую.
type Handler struct {
	scheduler Scheduler
	logger    Logger
}

func NewHandler(scheduler Scheduler, logger Logger) *Handler {
	return &Handler{
		scheduler: scheduler,
		logger:    logger,
	}
}

// HandlePause POST /api/v1/sync/pause
func (h *Handler) HandlePause(w http.ResponseWriter, r *http.Request) {
	h.scheduler.Stop()
	h.logger.Info("POST /sync/pause - Polling paused")
	handlers.RespondJSON(w, http.StatusOK, ControlResponse{Polling: false})
}

// HandleResume POST /api/v1/sync/resume
//
// Возобновление сразу запускает цикл сверки: за время паузы
// занятость могла разъехаться с удаленным журналом.
func (h *Handler) HandleResume(w http.ResponseWriter, r *http.Request) {
	h.scheduler.Start()
	h.logger.Info("POST /sync/resume - Polling resumed")
	handlers.RespondJSON(w, http.StatusOK, ControlResponse{Polling: true})
}
