package submit_booking

import (
	"errors"
	"fmt"

	"github.com/avkotov/KNS-SeatService/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, когда клиентская сессия не найдена или истекла
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrSyncInProgress возвращается, когда отправка отклонена из-за идущей синхронизации
	ErrSyncInProgress = errors.New("submit_booking: sync in progress")

	// ErrNoActivePool возвращается, когда в сессии не выбран пул мест
	ErrNoActivePool = errors.New("submit_booking: no active seat pool")

	// ErrEmptySelection возвращается при отправке без выбранных мест
	ErrEmptySelection = errors.New("submit_booking: empty selection")

	// ErrInvalidName возвращается при пустом или слишком длинном имени клиента
	ErrInvalidName = errors.New("submit_booking: invalid customer name")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("submit_booking: invalid customer email")

	// ErrInvalidPhone возвращается, когда телефон не состоит из 10 цифр
	ErrInvalidPhone = errors.New("submit_booking: invalid customer phone")

	// ErrSeatConflict маркер конфликта мест; проверяется через errors.Is
	ErrSeatConflict = errors.New("submit_booking: seat conflict")

	// ErrStoreUnavailable возвращается, когда удаленное хранилище не приняло запись
	ErrStoreUnavailable = errors.New("submit_booking: remote store unavailable")
)

// ConflictError конфликт мест, обнаруженный предотправочной сверкой:
// часть выбора успела стать занятой. Перечисляет именно потерянные места.
type ConflictError struct {
	Seats []domain.SeatID
}

// Error реализует интерфейс error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("submit_booking: seats no longer available: %s", domain.JoinSeats(e.Seats))
}

// Is позволяет проверять конфликт через errors.Is(err, ErrSeatConflict)
func (e *ConflictError) Is(target error) bool {
	return target == ErrSeatConflict
}
