package submit_booking

// Request модель запроса отправки бронирования
type Request struct {
	SessionID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// Response модель ответа об успешной отправке
type Response struct {
	BookingID string
	Seats     []string
	Count     int
	Date      string
	TimeSlot  string
	Location  string
}
