package create_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avkotov/KNS-SeatService/internal/domain"
	"github.com/avkotov/KNS-SeatService/internal/service/sessions"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}

func TestExecute_CreateWithPool(t *testing.T) {
	store := sessions.NewStore(time.Hour)
	uc := NewUseCase(store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       "2026-09-12",
		TimeSlot:   "10:00",
		LocationID: "hanoi-1",
		Location:   "Hà Nội",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.True(t, resp.HasPool)
	assert.Equal(t, "2026-09-12", resp.Date)
	assert.Equal(t, "Hà Nội", resp.Location)
	assert.Equal(t, 1, store.Len())
}

func TestExecute_CreateWithoutPool(t *testing.T) {
	store := sessions.NewStore(time.Hour)
	uc := NewUseCase(store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.False(t, resp.HasPool)
}

func TestExecute_SwitchPoolClearsSelection(t *testing.T) {
	store := sessions.NewStore(time.Hour)
	key, err := domain.DeriveKey("2026-09-12", "10:00", "")
	require.NoError(t, err)
	session := store.Create(key, "")
	session.Selection.Toggle("A1")

	uc := NewUseCase(store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		Date:      "2026-09-13",
		TimeSlot:  "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, session.ID, resp.SessionID)
	assert.Equal(t, "2026-09-13", resp.Date)
	assert.Zero(t, session.Selection.Len())
}

func TestExecute_IncompleteKeyRejected(t *testing.T) {
	uc := NewUseCase(sessions.NewStore(time.Hour), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2026-09-12"})
	assert.ErrorIs(t, err, ErrIncompleteKey)

	_, err = uc.Execute(context.Background(), &Request{TimeSlot: "10:00"})
	assert.ErrorIs(t, err, ErrIncompleteKey)
}

func TestExecute_SwitchUnknownSession(t *testing.T) {
	uc := NewUseCase(sessions.NewStore(time.Hour), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
