package create_session

// Request модель запроса создания или переключения сессии.
// Дата и слот либо заданы оба (активируют пул мест), либо оба пусты.
// SessionID пуст при создании и задан при переключении пула.
type Request struct {
	SessionID  string
	Date       string
	TimeSlot   string
	LocationID string
	Location   string
}

// Response модель ответа с контекстом сессии
type Response struct {
	SessionID  string
	Date       string
	TimeSlot   string
	LocationID string
	Location   string
	HasPool    bool // выбран ли пул мест
}
