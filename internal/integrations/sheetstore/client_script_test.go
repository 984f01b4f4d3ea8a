package sheetstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avkotov/KNS-SeatService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRecord(t *testing.T) domain.BookingRecord {
	t.Helper()
	key, err := domain.DeriveKey("2025-10-01", "09:00-10:00", "main-hall")
	require.NoError(t, err)
	return domain.BookingRecord{
		Timestamp:     time.Date(2025, 9, 30, 12, 0, 0, 0, time.UTC),
		Key:           key,
		Seats:         []domain.SeatID{"A1", "A2"},
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		CustomerPhone: "0123456789",
		Location:      "Main Concert Hall",
		Status:        domain.StatusConfirmed,
	}
}

func TestScriptClient_AppendBooking_Success(t *testing.T) {
	var got appendPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(appendResponse{Success: true, BookingID: "BK123"})
	}))
	defer server.Close()

	client := NewScriptClient(server.URL, time.Second, nopLogger{})
	bookingID, ok := client.AppendBooking(context.Background(), testRecord(t))

	assert.True(t, ok)
	assert.Equal(t, "BK123", bookingID)
	assert.Equal(t, "2025-10-01", got.Date)
	assert.Equal(t, "09:00-10:00", got.TimeSlot)
	assert.Equal(t, "main-hall", got.LocationID)
	assert.Equal(t, "A1, A2", got.Seats)
	assert.Equal(t, 2, got.TotalSeats)
}

func TestScriptClient_AppendBooking_Non2xxReturnsFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewScriptClient(server.URL, time.Second, nopLogger{})
	_, ok := client.AppendBooking(context.Background(), testRecord(t))

	assert.False(t, ok)
}

func TestScriptClient_AppendBooking_RemoteFailureReturnsFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(appendResponse{Success: false, Error: "sheet unavailable"})
	}))
	defer server.Close()

	client := NewScriptClient(server.URL, time.Second, nopLogger{})
	_, ok := client.AppendBooking(context.Background(), testRecord(t))

	assert.False(t, ok)
}

func TestScriptClient_AppendBooking_TransportErrorReturnsFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // соединение заведомо не установится

	client := NewScriptClient(server.URL, time.Second, nopLogger{})
	_, ok := client.AppendBooking(context.Background(), testRecord(t))

	assert.False(t, ok)
}

func TestScriptClient_ListBookings_NormalizesHeaderVariants(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getAllBookings", r.URL.Query().Get("action"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"bookings": []map[string]interface{}{
				{
					"eventdate":     "2025-10-01",
					"timeslot":      "09:00-10:00",
					"locationid":    "main-hall",
					"selectedseats": "A1, A2",
					"status":        "CONFIRMED",
					"customername":  "John Doe",
				},
				{
					// Вариант написания заголовков с пробелами и регистром
					"Event Date":     "2025-10-02",
					"Time Slot":      "14:00-15:00",
					"Selected Seats": " B3 ,B4 ",
					"Status":         "confirmed",
				},
				{
					// Строка без даты - пропускается
					"timeslot": "14:00-15:00",
					"seats":    "C1",
				},
			},
		})
	}))
	defer server.Close()

	client := NewScriptClient(server.URL, time.Second, nopLogger{})
	records, err := client.ListBookings(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "2025-10-01", records[0].Key.Date)
	assert.Equal(t, "main-hall", records[0].Key.LocationID)
	assert.Equal(t, []domain.SeatID{"A1", "A2"}, records[0].Seats)
	assert.Equal(t, domain.StatusConfirmed, records[0].Status)

	assert.Equal(t, "", records[1].Key.LocationID)
	assert.Equal(t, []domain.SeatID{"B3", "B4"}, records[1].Seats)
	// Статус приводится к верхнему регистру на границе
	assert.Equal(t, domain.StatusConfirmed, records[1].Status)
}

func TestScriptClient_ListBookings_FailuresReturnError(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>not json</html>"))
			},
		},
		{
			name: "remote failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(listResponse{Success: false, Error: "boom"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewScriptClient(server.URL, time.Second, nopLogger{})
			_, err := client.ListBookings(context.Background())
			assert.Error(t, err)
		})
	}
}
