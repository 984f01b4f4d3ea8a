package refresh_availability

import (
	"time"

	availabilityModels "github.com/avkotov/KNS-SeatService/internal/service/availability/models"
)

// RefreshResponse HTTP response model: итог одного цикла сверки
type RefreshResponse struct {
	Source   string `json:"source"` // remote | snapshot | previous | none
	SyncedAt string `json:"syncedAt"`
	Records  int    `json:"records"`
	Pools    int    `json:"pools"`
	Degraded bool   `json:"degraded"`
}

// FromResult конвертирует результат сверки в HTTP response
func FromResult(result *availabilityModels.Result) *RefreshResponse {
	return &RefreshResponse{
		Source:   string(result.Source),
		SyncedAt: result.SyncedAt.Format(time.RFC3339),
		Records:  result.Records,
		Pools:    result.Pools,
		Degraded: result.Degraded,
	}
}
