package get_seat_map

import "time"

// SeatState визуальное состояние одного места.
// Каждое место находится ровно в одном из четырех состояний.
type SeatState string

const (
	// StateDisabled пул мест не выбран, место недоступно для взаимодействия
	StateDisabled SeatState = "disabled"

	// StateBooked место занято по данным последней синхронизации
	StateBooked SeatState = "booked"

	// StateSelected место предварительно выбрано текущим клиентом
	StateSelected SeatState = "selected"

	// StateAvailable место свободно
	StateAvailable SeatState = "available"
)

// Request модель запроса карты мест
type Request struct {
	SessionID string
}

// Seat состояние одного места сетки
type Seat struct {
	ID    string
	State SeatState
}

// Response модель ответа с картой мест
type Response struct {
	SessionID  string
	Date       string
	TimeSlot   string
	LocationID string
	Location   string
	Seats      []Seat    // все места сетки в порядке рядов
	Selected   []string  // текущий выбор в порядке выбора
	Syncing    bool      // идет ли синхронизация (UI-сигнал)
	LastSyncAt time.Time // время последней синхронизации (zero - еще не было)
	SyncSource string    // источник последнего состояния (remote | snapshot | previous | none)
}
