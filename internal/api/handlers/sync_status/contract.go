package sync_status

import (
	availabilityModels "github.com/avkotov/KNS-SeatService/internal/service/availability/models"
)

type AvailabilityService interface {
	Status() availabilityModels.Status
}

type Scheduler interface {
	Running() bool
}
