package toggle_seat

import "errors"

var (
	// ErrSessionNotFound возвращается, когда клиентская сессия не найдена или истекла
	ErrSessionNotFound = errors.New("toggle_seat: session not found")

	// ErrSyncInProgress возвращается, когда идет синхронизация и выбор заблокирован
	ErrSyncInProgress = errors.New("toggle_seat: sync in progress")

	// ErrNoActivePool возвращается, когда в сессии не выбран пул мест
	ErrNoActivePool = errors.New("toggle_seat: no active seat pool")

	// ErrUnknownSeat возвращается, когда идентификатор места вне сетки
	ErrUnknownSeat = errors.New("toggle_seat: unknown seat id")

	// ErrSeatAlreadyBooked возвращается при попытке выбрать занятое место
	ErrSeatAlreadyBooked = errors.New("toggle_seat: seat already booked")

	// ErrTooManySeats возвращается при превышении лимита мест на одно бронирование
	ErrTooManySeats = errors.New("toggle_seat: too many seats selected")
)
