package get_seat_map

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avkotov/KNS-SeatService/internal/domain"
	availabilityModels "github.com/avkotov/KNS-SeatService/internal/service/availability/models"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
)

type fakeAvailability struct {
	booked domain.SeatSet
	status availabilityModels.Status
}

func (f *fakeAvailability) BookedSeats(key domain.SessionKey) domain.SeatSet {
	if f.booked == nil {
		return domain.SeatSet{}
	}
	return f.booked
}

func (f *fakeAvailability) Status() availabilityModels.Status {
	return f.status
}

type fakeSessionStore struct {
	session *sessions.Session
}

func (f *fakeSessionStore) Get(id string) (*sessions.Session, error) {
	if f.session == nil || f.session.ID != id {
		return nil, sessions.ErrSessionNotFound
	}
	return f.session, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}

func mustKey(t *testing.T, date, slot, loc string) domain.SessionKey {
	t.Helper()
	key, err := domain.DeriveKey(date, slot, loc)
	require.NoError(t, err)
	return key
}

func seatState(t *testing.T, seats []Seat, id string) SeatState {
	t.Helper()
	for _, seat := range seats {
		if seat.ID == id {
			return seat.State
		}
	}
	t.Fatalf("seat %s not found in grid", id)
	return ""
}

func TestExecute_EachSeatExactlyOneState(t *testing.T) {
	key := mustKey(t, "2026-09-12", "10:00", "hanoi-1")
	selection := domain.NewSelection()
	selection.Toggle("C3")

	store := &fakeSessionStore{session: &sessions.Session{
		ID:        "sess-1",
		Key:       key,
		Location:  "Hà Nội",
		Selection: selection,
	}}
	availability := &fakeAvailability{
		booked: domain.SeatSet{"A1": {}, "B2": {}},
		status: availabilityModels.Status{
			LastSyncAt: time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC),
			LastSource: availabilityModels.SourceRemote,
		},
	}

	uc := NewUseCase(availability, store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)

	assert.Len(t, resp.Seats, domain.GridRows*domain.GridSeatsPerRow)
	assert.Equal(t, StateBooked, seatState(t, resp.Seats, "A1"))
	assert.Equal(t, StateBooked, seatState(t, resp.Seats, "B2"))
	assert.Equal(t, StateSelected, seatState(t, resp.Seats, "C3"))
	assert.Equal(t, StateAvailable, seatState(t, resp.Seats, "D4"))
	assert.Equal(t, []string{"C3"}, resp.Selected)
	assert.Equal(t, "2026-09-12", resp.Date)
	assert.Equal(t, "10:00", resp.TimeSlot)
	assert.Equal(t, "hanoi-1", resp.LocationID)
	assert.Equal(t, string(availabilityModels.SourceRemote), resp.SyncSource)
	assert.False(t, resp.Syncing)
}

func TestExecute_BookedWinsOverSelected(t *testing.T) {
	// Место может оказаться и занятым, и выбранным, если синхронизация
	// прошла без сохранения выбора; на карте оно показано как занятое.
	key := mustKey(t, "2026-09-12", "10:00", "")
	selection := domain.NewSelection()
	selection.Toggle("A1")

	store := &fakeSessionStore{session: &sessions.Session{
		ID:        "sess-1",
		Key:       key,
		Selection: selection,
	}}
	availability := &fakeAvailability{booked: domain.SeatSet{"A1": {}}}

	uc := NewUseCase(availability, store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)
	assert.Equal(t, StateBooked, seatState(t, resp.Seats, "A1"))
}

func TestExecute_NoActiveKeyAllDisabled(t *testing.T) {
	store := &fakeSessionStore{session: &sessions.Session{
		ID:        "sess-1",
		Selection: domain.NewSelection(),
	}}
	uc := NewUseCase(&fakeAvailability{}, store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)

	assert.Len(t, resp.Seats, domain.GridRows*domain.GridSeatsPerRow)
	for _, seat := range resp.Seats {
		assert.Equal(t, StateDisabled, seat.State)
	}
}

func TestExecute_SessionNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{}, &fakeSessionStore{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
