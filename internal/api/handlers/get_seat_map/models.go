package get_seat_map

import (
	"time"

	getSeatMap "github.com/avkotov/KNS-SeatService/internal/usecase/get_seat_map"
)

// SeatResponse состояние одного места в HTTP ответе
type SeatResponse struct {
	ID    string `json:"id"`
	State string `json:"state"` // disabled | booked | selected | available
}

// SeatMapResponse HTTP response model
type SeatMapResponse struct {
	SessionID  string         `json:"sessionId"`
	Date       string         `json:"date,omitempty"`
	TimeSlot   string         `json:"timeSlot,omitempty"`
	LocationID string         `json:"locationId,omitempty"`
	Location   string         `json:"location,omitempty"`
	Seats      []SeatResponse `json:"seats"`
	Selected   []string       `json:"selected"`
	Syncing    bool           `json:"syncing"`
	LastSyncAt string         `json:"lastSyncAt,omitempty"`
	SyncSource string         `json:"syncSource"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSeatMap.Response) *SeatMapResponse {
	seats := make([]SeatResponse, len(resp.Seats))
	for i, seat := range resp.Seats {
		seats[i] = SeatResponse{ID: seat.ID, State: string(seat.State)}
	}

	lastSyncAt := ""
	if !resp.LastSyncAt.IsZero() {
		lastSyncAt = resp.LastSyncAt.Format(time.RFC3339)
	}

	return &SeatMapResponse{
		SessionID:  resp.SessionID,
		Date:       resp.Date,
		TimeSlot:   resp.TimeSlot,
		LocationID: resp.LocationID,
		Location:   resp.Location,
		Seats:      seats,
		Selected:   resp.Selected,
		Syncing:    resp.Syncing,
		LastSyncAt: lastSyncAt,
		SyncSource: resp.SyncSource,
	}
}
