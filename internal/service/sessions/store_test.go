package sessions

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avkotov/KNS-SeatService/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func testKey(t *testing.T, slot string) domain.SessionKey {
	t.Helper()
	key, err := domain.DeriveKey("2025-10-01", slot, "main-hall")
	require.NoError(t, err)
	return key
}

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)
	session := store.Create(testKey(t, "09:00-10:00"), "Main Concert Hall")

	require.NotEmpty(t, session.ID)
	assert.Zero(t, session.Selection.Len())

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
}

func TestStore_GetUnknownSession(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.Get("deadbeef")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_ChangeKeyClearsSelection(t *testing.T) {
	store := NewStore(time.Hour)
	session := store.Create(testKey(t, "09:00-10:00"), "Main Concert Hall")
	session.Selection.Toggle("A1")

	// Смена слота очищает выбор
	changed, err := store.ChangeKey(session.ID, testKey(t, "14:00-15:00"), "Main Concert Hall")
	require.NoError(t, err)
	assert.Zero(t, changed.Selection.Len())
}

func TestStore_ChangeKeySameKeyKeepsSelection(t *testing.T) {
	store := NewStore(time.Hour)
	key := testKey(t, "09:00-10:00")
	session := store.Create(key, "Main Concert Hall")
	session.Selection.Toggle("A1")

	changed, err := store.ChangeKey(session.ID, key, "Main Concert Hall")
	require.NoError(t, err)
	assert.Equal(t, []domain.SeatID{"A1"}, changed.Selection.Seats())
}

func TestStore_ExpiredSessionIsDropped(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	store := NewStore(30 * time.Minute)
	store.timeProvider = clock

	session := store.Create(testKey(t, "09:00-10:00"), "")

	clock.now = clock.now.Add(31 * time.Minute)
	_, err := store.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_EvictRemovesStaleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	store := NewStore(30 * time.Minute)
	store.timeProvider = clock

	store.Create(testKey(t, "09:00-10:00"), "")
	clock.now = clock.now.Add(20 * time.Minute)
	fresh := store.Create(testKey(t, "14:00-15:00"), "")

	clock.now = clock.now.Add(15 * time.Minute)
	evicted := store.Evict()

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, store.Len())
	_, err := store.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestStore_ConcurrentToggleAndSeatMapRead(t *testing.T) {
	store := NewStore(time.Hour)
	session := store.Create(testKey(t, "09:00-10:00"), "Main Concert Hall")

	// Опрос карты мест, перекрывающийся с переключением места в той же
	// сессии - обычный трафик страницы; выбор не должен портиться
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			got, err := store.Get(session.ID)
			assert.NoError(t, err)
			got.Selection.Toggle("A1")
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			got, err := store.Get(session.ID)
			assert.NoError(t, err)
			for _, seat := range got.Selection.Seats() {
				assert.Equal(t, domain.SeatID("A1"), seat)
			}
			got.Selection.Contains("A1")
		}
	}()

	wg.Wait()
	assert.LessOrEqual(t, session.Selection.Len(), 1)
}

func TestStore_ConcurrentChangeKeyAndContextRead(t *testing.T) {
	store := NewStore(time.Hour)
	keyA := testKey(t, "09:00-10:00")
	keyB := testKey(t, "14:00-15:00")
	session := store.Create(keyA, "Main Concert Hall")

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_, err := store.ChangeKey(session.ID, keyB, "Annex Hall")
			assert.NoError(t, err)
			_, err = store.ChangeKey(session.ID, keyA, "Main Concert Hall")
			assert.NoError(t, err)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			key, location := session.Context()
			// Пара ключ+локация всегда согласована
			switch key {
			case keyA:
				assert.Equal(t, "Main Concert Hall", location)
			case keyB:
				assert.Equal(t, "Annex Hall", location)
			default:
				t.Errorf("unexpected key: %s", key.String())
			}
		}
	}()

	wg.Wait()
}
