package create_session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда переключаемая сессия не найдена или истекла
	ErrSessionNotFound = errors.New("create_session: session not found")

	// ErrIncompleteKey возвращается, когда дата и слот заданы не парой
	ErrIncompleteKey = errors.New("create_session: date and time slot must be set together")
)
