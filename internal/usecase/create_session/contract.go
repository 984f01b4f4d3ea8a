package create_session

import (
	"github.com/avkotov/KNS-SeatService/internal/domain"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
)

// SessionStore интерфейс хранилища клиентских сессий
type SessionStore interface {
	Create(key domain.SessionKey, location string) *sessions.Session
	ChangeKey(id string, key domain.SessionKey, location string) (*sessions.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
