package toggle_seat

import (
	toggleSeat "github.com/avkotov/KNS-SeatService/internal/usecase/toggle_seat"
)

// ToggleSeatResponse HTTP response model
type ToggleSeatResponse struct {
	SeatID   string   `json:"seatId"`
	Selected bool     `json:"selected"`
	Seats    []string `json:"seats"`
	Count    int      `json:"count"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *toggleSeat.Response) *ToggleSeatResponse {
	return &ToggleSeatResponse{
		SeatID:   resp.SeatID,
		Selected: resp.Selected,
		Seats:    resp.Seats,
		Count:    resp.Count,
	}
}
