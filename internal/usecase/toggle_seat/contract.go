package toggle_seat

import (
	"github.com/avkotov/KNS-SeatService/internal/domain"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
)

// AvailabilityService интерфейс движка сверки занятости
type AvailabilityService interface {
	BookedSeats(key domain.SessionKey) domain.SeatSet
	Syncing() bool
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
