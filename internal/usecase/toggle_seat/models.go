package toggle_seat

// Request модель запроса переключения места
type Request struct {
	SessionID string
	SeatID    string
}

// Response модель ответа: итоговое состояние выбора
type Response struct {
	SeatID   string
	Selected bool     // выбрано ли место после переключения
	Seats    []string // полный выбор в порядке выбора
	Count    int
}
