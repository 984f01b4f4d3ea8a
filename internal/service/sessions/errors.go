package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда клиентская сессия не найдена или истекла
	ErrSessionNotFound = errors.New("sessions: session not found")
)
