package submit_booking

import (
	submitBooking "github.com/avkotov/KNS-SeatService/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID string   `json:"bookingId"`
	Seats     []string `json:"seats"`
	Count     int      `json:"count"`
	Date      string   `json:"date"`
	TimeSlot  string   `json:"timeSlot"`
	Location  string   `json:"location,omitempty"`
}

// ConflictResponse HTTP ответ о конфликте мест: перечисляет именно
// потерянные места, чтобы клиент показал их на карте
type ConflictResponse struct {
	Error         string   `json:"error"`
	ConflictSeats []string `json:"conflictSeats"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest(sessionID string) *submitBooking.Request {
	return &submitBooking.Request{
		SessionID:     sessionID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID: resp.BookingID,
		Seats:     resp.Seats,
		Count:     resp.Count,
		Date:      resp.Date,
		TimeSlot:  resp.TimeSlot,
		Location:  resp.Location,
	}
}

// FromConflictError конвертирует конфликт мест в HTTP response
func FromConflictError(msg string, conflict *submitBooking.ConflictError) *ConflictResponse {
	seats := make([]string, len(conflict.Seats))
	for i, s := range conflict.Seats {
		seats[i] = string(s)
	}
	return &ConflictResponse{Error: msg, ConflictSeats: seats}
}
