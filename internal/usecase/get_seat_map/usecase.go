package get_seat_map

import (
	"context"
	"errors"

	"github.com/avkotov/KNS-SeatService/internal/domain"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
)

// UseCase use case построения карты мест для клиентской сессии
type UseCase struct {
	availability AvailabilityService
	sessionStore SessionStore
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, sessionStore SessionStore, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// Execute строит карту мест: каждое место сетки ровно в одном из
// состояний disabled | booked | selected | available
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	session, err := uc.sessionStore.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("GetSeatMap: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	key, location := session.Context()

	status := uc.availability.Status()
	response := &Response{
		SessionID:  session.ID,
		Date:       key.Date,
		TimeSlot:   key.TimeSlot,
		LocationID: key.LocationID,
		Location:   location,
		Selected:   seatIDsToStrings(session.Selection.Seats()),
		Syncing:    status.Syncing,
		LastSyncAt: status.LastSyncAt,
		SyncSource: string(status.LastSource),
	}

	// Без активного пула все места disabled
	if key.IsZero() {
		response.Seats = disabledGrid()
		return response, nil
	}

	booked := uc.availability.BookedSeats(key)

	seats := make([]Seat, 0, domain.GridRows*domain.GridSeatsPerRow)
	for _, id := range domain.AllSeatIDs() {
		state := StateAvailable
		switch {
		case booked.Contains(id):
			state = StateBooked
		case session.Selection.Contains(id):
			state = StateSelected
		}
		seats = append(seats, Seat{ID: string(id), State: state})
	}
	response.Seats = seats

	return response, nil
}

func disabledGrid() []Seat {
	seats := make([]Seat, 0, domain.GridRows*domain.GridSeatsPerRow)
	for _, id := range domain.AllSeatIDs() {
		seats = append(seats, Seat{ID: string(id), State: StateDisabled})
	}
	return seats
}

func seatIDsToStrings(ids []domain.SeatID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
