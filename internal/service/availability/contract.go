package availability

import (
	"context"
	"time"

	"github.com/avkotov/KNS-SeatService/internal/domain"
)

// Gateway интерфейс удаленного хранилища бронирований
type Gateway interface {
	ListBookings(ctx context.Context) ([]domain.BookingRecord, error)
}

// SnapshotRepository интерфейс локального снапшота журнала бронирований
type SnapshotRepository interface {
	ReplaceAll(ctx context.Context, records []domain.BookingRecord, fetchedAt time.Time) error
	ListAll(ctx context.Context) ([]domain.BookingRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для записи метрик синхронизации
type MetricsRecorder interface {
	ObserveSyncRun(trigger, result string, duration time.Duration)
	SetLastSyncTime(t time.Time)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
