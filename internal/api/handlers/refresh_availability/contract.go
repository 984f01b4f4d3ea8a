package refresh_availability

import (
	"context"

	"github.com/avkotov/KNS-SeatService/internal/service/availability"
	availabilityModels "github.com/avkotov/KNS-SeatService/internal/service/availability/models"
)

type AvailabilityService interface {
	Reconcile(ctx context.Context, opts availability.Options) (*availabilityModels.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
