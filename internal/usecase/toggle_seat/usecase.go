package toggle_seat

import (
	"context"
	"errors"
	"strings"

	"github.com/avkotov/KNS-SeatService/internal/domain"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
)

// UseCase use case переключения предварительного выбора места
type UseCase struct {
	availability AvailabilityService
	sessionStore SessionStore
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, sessionStore SessionStore, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// Execute переключает место в выборе сессии.
// Во время синхронизации выбор заблокирован: состояние занятости
// в этот момент может быть устаревшим.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Поиск сессии
	session, err := uc.sessionStore.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	// 2. Валидация входных данных
	key, _ := session.Context()
	if key.IsZero() {
		return nil, ErrNoActivePool
	}

	seatID := domain.SeatID(strings.ToUpper(strings.TrimSpace(req.SeatID)))
	if !domain.IsValidSeatID(seatID) {
		return nil, ErrUnknownSeat
	}

	// 3. Проверка блокировок
	if uc.availability.Syncing() {
		uc.logger.Info("ToggleSeat: seat %s rejected, sync in progress", seatID)
		return nil, ErrSyncInProgress
	}

	if uc.availability.BookedSeats(key).Contains(seatID) {
		return nil, ErrSeatAlreadyBooked
	}

	// 4. Переключение
	if !session.Selection.Contains(seatID) && session.Selection.Len() >= domain.MaxSeatsPerBooking {
		return nil, ErrTooManySeats
	}

	selected := session.Selection.Toggle(seatID)

	seats := session.Selection.Seats()
	out := make([]string, len(seats))
	for i, s := range seats {
		out[i] = string(s)
	}

	return &Response{
		SeatID:   string(seatID),
		Selected: selected,
		Seats:    out,
		Count:    len(out),
	}, nil
}
