package submit_booking

import (
	"context"
	"time"

	"github.com/avkotov/KNS-SeatService/internal/domain"
	"github.com/avkotov/KNS-SeatService/internal/service/availability"
	availabilityModels "github.com/avkotov/KNS-SeatService/internal/service/availability/models"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
)

// AvailabilityService интерфейс движка сверки занятости
type AvailabilityService interface {
	Syncing() bool
	BookedSeats(key domain.SessionKey) domain.SeatSet
	MarkBooked(key domain.SessionKey, seats []domain.SeatID)
	Reconcile(ctx context.Context, opts availability.Options) (*availabilityModels.Result, error)
}

// Gateway интерфейс удаленного журнала бронирований
type Gateway interface {
	AppendBooking(ctx context.Context, record domain.BookingRecord) (string, bool)
}

// SessionStore интерфейс хранилища клиентских сессий
type SessionStore interface {
	Get(id string) (*sessions.Session, error)
}

// Notifier интерфейс публикации события о подтвержденном бронировании
type Notifier interface {
	PublishBookingConfirmed(ctx context.Context, record domain.BookingRecord) error
}

// MetricsRecorder интерфейс для записи бизнес-метрик
type MetricsRecorder interface {
	IncBooking(result string)
	AddConflictSeats(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
