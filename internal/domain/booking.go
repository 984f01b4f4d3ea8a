package domain

import (
	"strings"
	"time"
)

// BookingStatus статус записи о бронировании в удаленном хранилище
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// BookingRecord одна подтвержденная запись о бронировании.
// Создается протоколом отправки, сохраняется через gateway операцией
// append и после этого никогда не изменяется и не удаляется.
type BookingRecord struct {
	Timestamp     time.Time
	Key           SessionKey
	Seats         []SeatID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Location      string // отображаемое название локации (денормализация для писем/отчетов)
	BookingID     string // присваивается бэкендом, пустой до записи
	Status        BookingStatus
}

// IsConfirmed сообщает, учитывается ли запись при расчете занятости
func (r *BookingRecord) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// JoinSeats сериализует список мест в формат хранилища: "A1, A2, B3"
func JoinSeats(seats []SeatID) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// SplitSeats разбирает строку мест формата хранилища.
// Пробелы вокруг идентификаторов обрезаются, пустые элементы отбрасываются.
func SplitSeats(s string) []SeatID {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	seats := make([]SeatID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			seats = append(seats, SeatID(p))
		}
	}
	return seats
}
