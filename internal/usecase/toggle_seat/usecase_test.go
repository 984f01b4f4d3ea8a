package toggle_seat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avkotov/KNS-SeatService/internal/domain"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
)

type fakeAvailability struct {
	booked  domain.SeatSet
	syncing bool
}

func (f *fakeAvailability) BookedSeats(key domain.SessionKey) domain.SeatSet {
	if f.booked == nil {
		return domain.SeatSet{}
	}
	return f.booked
}

func (f *fakeAvailability) Syncing() bool { return f.syncing }

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

func newSession(t *testing.T) *sessions.Session {
	t.Helper()
	key, err := domain.DeriveKey("2026-09-12", "10:00", "hanoi-1")
	require.NoError(t, err)
	return &sessions.Session{
		ID:        "sess-1",
		Key:       key,
		Selection: domain.NewSelection(),
	}
}

func TestExecute_SelectAndDeselect(t *testing.T) {
	session := newSession(t)
	uc := NewUseCase(&fakeAvailability{}, &fakeSessionStore{session: session}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", SeatID: "a1"})
	require.NoError(t, err)
	assert.True(t, resp.Selected)
	assert.Equal(t, "A1", resp.SeatID)
	assert.Equal(t, []string{"A1"}, resp.Seats)

	resp, err = uc.Execute(context.Background(), &Request{SessionID: "sess-1", SeatID: "A1"})
	require.NoError(t, err)
	assert.False(t, resp.Selected)
	assert.Empty(t, resp.Seats)
}

func TestExecute_RejectedWhileSyncing(t *testing.T) {
	session := newSession(t)
	availability := &fakeAvailability{syncing: true}
	uc := NewUseCase(availability, &fakeSessionStore{session: session}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", SeatID: "A1"})
	assert.ErrorIs(t, err, ErrSyncInProgress)
	assert.Zero(t, session.Selection.Len())
}

func TestExecute_BookedSeatRejected(t *testing.T) {
	session := newSession(t)
	availability := &fakeAvailability{booked: domain.SeatSet{"A1": {}}}
	uc := NewUseCase(availability, &fakeSessionStore{session: session}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", SeatID: "A1"})
	assert.ErrorIs(t, err, ErrSeatAlreadyBooked)
}

func TestExecute_UnknownSeatRejected(t *testing.T) {
	session := newSession(t)
	uc := NewUseCase(&fakeAvailability{}, &fakeSessionStore{session: session}, nopLogger{})

	for _, id := range []string{"", "Z1", "A11", "A0", "11"} {
		_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", SeatID: id})
		assert.ErrorIs(t, err, ErrUnknownSeat, "seat %q", id)
	}
}

func TestExecute_NoActivePool(t *testing.T) {
	session := &sessions.Session{ID: "sess-1", Selection: domain.NewSelection()}
	uc := NewUseCase(&fakeAvailability{}, &fakeSessionStore{session: session}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", SeatID: "A1"})
	assert.ErrorIs(t, err, ErrNoActivePool)
}

func TestExecute_SeatLimit(t *testing.T) {
	session := newSession(t)
	for _, id := range []domain.SeatID{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10"} {
		session.Selection.Toggle(id)
	}
	uc := NewUseCase(&fakeAvailability{}, &fakeSessionStore{session: session}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", SeatID: "B1"})
	assert.ErrorIs(t, err, ErrTooManySeats)

	// Снятие уже выбранного места лимитом не блокируется
	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", SeatID: "A1"})
	require.NoError(t, err)
	assert.False(t, resp.Selected)
}

func TestExecute_SessionNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{}, &fakeSessionStore{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", SeatID: "A1"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
