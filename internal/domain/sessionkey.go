package domain

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyDate возвращается, когда дата сессии не указана
	ErrEmptyDate = errors.New("domain: session date is required")

	// ErrEmptyTimeSlot возвращается, когда временной слот не указан
	ErrEmptyTimeSlot = errors.New("domain: session time slot is required")
)

// SessionKey составной ключ пула мест: дата, временной слот и локация.
// Два бронирования с равными ключами конкурируют за один и тот же набор мест.
// Пустой LocationID - валидное, отдельное значение компонента
// (используется, когда понятие локации неприменимо).
type SessionKey struct {
	Date       string // YYYY-MM-DD
	TimeSlot   string // например, "09:00-10:00"
	LocationID string // может быть пустым
}

// DeriveKey строит ключ сессии из компонентов.
// Все компоненты обрезаются по пробелам; равенство ключей - строгое
// строковое равенство всех трех компонентов после обрезки.
func DeriveKey(date, timeSlot, locationID string) (SessionKey, error) {
	key := SessionKey{
		Date:       strings.TrimSpace(date),
		TimeSlot:   strings.TrimSpace(timeSlot),
		LocationID: strings.TrimSpace(locationID),
	}

	if key.Date == "" {
		return SessionKey{}, ErrEmptyDate
	}
	if key.TimeSlot == "" {
		return SessionKey{}, ErrEmptyTimeSlot
	}

	return key, nil
}

// IsZero сообщает, что ключ не был установлен
func (k SessionKey) IsZero() bool {
	return k.Date == "" && k.TimeSlot == "" && k.LocationID == ""
}

// String возвращает строковое представление ключа в формате хранилища:
// date_timeSlot или date_timeSlot_locationID
func (k SessionKey) String() string {
	if k.LocationID == "" {
		return k.Date + SessionKeySeparator + k.TimeSlot
	}
	return k.Date + SessionKeySeparator + k.TimeSlot + SessionKeySeparator + k.LocationID
}
