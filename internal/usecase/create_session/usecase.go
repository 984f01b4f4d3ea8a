package create_session

import (
	"context"
	"errors"
	"strings"

	"github.com/avkotov/KNS-SeatService/internal/domain"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
)

// UseCase use case создания клиентской сессии и переключения пула мест
type UseCase struct {
	sessionStore SessionStore
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionStore SessionStore, logger Logger) *UseCase {
	return &UseCase{
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// Execute создает сессию или переключает существующую на другой пул.
// Переключение на другой пул очищает предварительный выбор.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	key, err := resolveKey(req)
	if err != nil {
		return nil, err
	}

	// 2. Создание или переключение
	var session *sessions.Session
	if req.SessionID == "" {
		session = uc.sessionStore.Create(key, req.Location)
		uc.logger.Info("CreateSession: session %s created, key=%s", session.ID, key.String())
	} else {
		session, err = uc.sessionStore.ChangeKey(req.SessionID, key, req.Location)
		if err != nil {
			if errors.Is(err, sessions.ErrSessionNotFound) {
				return nil, ErrSessionNotFound
			}
			return nil, err
		}
		uc.logger.Info("CreateSession: session %s switched to key=%s", session.ID, key.String())
	}

	sessionKey, location := session.Context()
	return &Response{
		SessionID:  session.ID,
		Date:       sessionKey.Date,
		TimeSlot:   sessionKey.TimeSlot,
		LocationID: sessionKey.LocationID,
		Location:   location,
		HasPool:    !sessionKey.IsZero(),
	}, nil
}

func resolveKey(req *Request) (domain.SessionKey, error) {
	date := strings.TrimSpace(req.Date)
	timeSlot := strings.TrimSpace(req.TimeSlot)

	// Без пары дата+слот сессия живет без активного пула
	if date == "" && timeSlot == "" {
		return domain.SessionKey{}, nil
	}
	if date == "" || timeSlot == "" {
		return domain.SessionKey{}, ErrIncompleteKey
	}

	return domain.DeriveKey(date, timeSlot, req.LocationID)
}
