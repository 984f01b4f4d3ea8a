package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avkotov/KNS-SeatService/internal/domain"
	"github.com/avkotov/KNS-SeatService/internal/service/availability"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
)

// UseCase use case отправки бронирования.
//
// Протокол: валидация -> принудительная сверка занятости -> проверка
// конфликтов -> запись в удаленный журнал. Конфликт - ожидаемый исход
// гонки между клиентами, а не внутренняя ошибка.
type UseCase struct {
	availability AvailabilityService
	gateway      Gateway
	sessionStore SessionStore
	notifier     Notifier
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// notifier и metrics могут быть nil, если соответствующие подсистемы выключены
func NewUseCase(
	availabilitySvc AvailabilityService,
	gateway Gateway,
	sessionStore SessionStore,
	notifier Notifier,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availabilitySvc,
		gateway:      gateway,
		sessionStore: sessionStore,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет протокол отправки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Поиск сессии
	session, err := uc.sessionStore.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	// 2. Валидация входных данных - до любых сетевых вызовов
	if err := validateRequest(req); err != nil {
		uc.incBooking("rejected")
		return nil, err
	}

	key, location := session.Context()
	if key.IsZero() {
		uc.incBooking("rejected")
		return nil, ErrNoActivePool
	}

	if session.Selection.Len() == 0 {
		uc.incBooking("rejected")
		return nil, ErrEmptySelection
	}

	if uc.availability.Syncing() {
		uc.logger.Info("SubmitBooking: session %s rejected, sync in progress", session.ID)
		return nil, ErrSyncInProgress
	}

	// Снимок выбора до сверки: Preserve молча выбрасывает из выбора
	// места, успевшие стать занятыми, а клиенту нужно назвать их явно
	requested := session.Selection.Seats()

	// 3. Принудительная предотправочная сверка
	_, err = uc.availability.Reconcile(ctx, availability.Options{
		Trigger:  availability.TriggerPreSubmit,
		Preserve: session.Selection,
		Key:      key,
	})
	if err != nil {
		// Единственная ошибка сверки - конкурентный цикл
		return nil, ErrSyncInProgress
	}

	// 4. Проверка конфликтов по свежему состоянию
	booked := uc.availability.BookedSeats(key)
	conflicts := make([]domain.SeatID, 0)
	for _, seat := range requested {
		if booked.Contains(seat) {
			conflicts = append(conflicts, seat)
		}
	}
	if len(conflicts) > 0 {
		uc.logger.Warn("SubmitBooking: conflict on key %s, lost seats: %s",
			key.String(), domain.JoinSeats(conflicts))
		if uc.metrics != nil {
			uc.metrics.AddConflictSeats(len(conflicts))
		}
		uc.incBooking("conflict")
		return nil, &ConflictError{Seats: conflicts}
	}

	// 5. Запись в удаленный журнал
	record := domain.BookingRecord{
		Timestamp:     uc.timeProvider.Now(),
		Key:           key,
		Seats:         requested,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Location:      location,
		Status:        domain.StatusConfirmed,
	}

	bookingID, ok := uc.gateway.AppendBooking(ctx, record)
	if !ok {
		// Выбор не трогаем: клиент может повторить попытку
		uc.incBooking("store_unavailable")
		return nil, ErrStoreUnavailable
	}
	if bookingID == "" {
		// Табличный бэкенд идентификатор не присваивает
		bookingID = fmt.Sprintf("BK%d", record.Timestamp.UnixMilli())
	}
	record.BookingID = bookingID

	// 6. Коммит: оптимистичная пометка, очистка выбора
	uc.availability.MarkBooked(key, requested)
	session.Selection.Clear()

	// 7. Пост-коммитная сверка; занятый движок - не ошибка
	if _, err := uc.availability.Reconcile(ctx, availability.Options{
		Trigger: availability.TriggerPostCommit,
	}); err != nil && !errors.Is(err, availability.ErrSyncInProgress) {
		uc.logger.Warn("SubmitBooking: post-commit reconcile failed: %v", err)
	}

	// 8. Событие о подтверждении; сбой публикации бронирование не откатывает
	if uc.notifier != nil {
		if err := uc.notifier.PublishBookingConfirmed(ctx, record); err != nil {
			uc.logger.Warn("SubmitBooking: failed to publish confirmation event: %v", err)
		}
	}

	uc.incBooking("success")
	uc.logger.Info("SubmitBooking: booking %s committed, key=%s, seats=%s",
		bookingID, key.String(), domain.JoinSeats(requested))

	seats := make([]string, len(requested))
	for i, s := range requested {
		seats[i] = string(s)
	}

	return &Response{
		BookingID: bookingID,
		Seats:     seats,
		Count:     len(seats),
		Date:      key.Date,
		TimeSlot:  key.TimeSlot,
		Location:  location,
	}, nil
}

func (uc *UseCase) incBooking(result string) {
	if uc.metrics != nil {
		uc.metrics.IncBooking(result)
	}
}
