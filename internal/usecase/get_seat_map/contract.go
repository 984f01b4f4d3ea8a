package get_seat_map

import (
	"github.com/avkotov/KNS-SeatService/internal/domain"
	availabilityModels "github.com/avkotov/KNS-SeatService/internal/service/availability/models"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
)

// AvailabilityService интерфейс движка сверки занятости
type AvailabilityService interface {
	BookedSeats(key domain.SessionKey) domain.SeatSet
	Status() availabilityModels.Status
}

// SessionStore интерфейс хранилища клиентских сессий
type SessionStore interface {
	Get(id string) (*sessions.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
