package get_seat_map

import "errors"

var (
	// ErrSessionNotFound возвращается, когда клиентская сессия не найдена или истекла
	ErrSessionNotFound = errors.New("get_seat_map: session not found")
)
