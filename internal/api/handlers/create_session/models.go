package create_session

import (
	createSession "github.com/avkotov/KNS-SeatService/internal/usecase/create_session"
)

// CreateSessionRequest HTTP request model
type CreateSessionRequest struct {
	SessionID  string `json:"sessionId,omitempty"`
	Date       string `json:"date,omitempty"` // "2026-09-12"
	TimeSlot   string `json:"timeSlot,omitempty"`
	LocationID string `json:"locationId,omitempty"`
	Location   string `json:"location,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID  string `json:"sessionId"`
	Date       string `json:"date,omitempty"`
	TimeSlot   string `json:"timeSlot,omitempty"`
	LocationID string `json:"locationId,omitempty"`
	Location   string `json:"location,omitempty"`
	HasPool    bool   `json:"hasPool"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSessionRequest) ToUseCaseRequest() *createSession.Request {
	return &createSession.Request{
		SessionID:  r.SessionID,
		Date:       r.Date,
		TimeSlot:   r.TimeSlot,
		LocationID: r.LocationID,
		Location:   r.Location,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSession.Response) *SessionResponse {
	return &SessionResponse{
		SessionID:  resp.SessionID,
		Date:       resp.Date,
		TimeSlot:   resp.TimeSlot,
		LocationID: resp.LocationID,
		Location:   resp.Location,
		HasPool:    resp.HasPool,
	}
}
