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

func TestTabularClient_AppendBooking_PostsHeaderKeyedRow(t *testing.T) {
	var got map[string][]map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewTabularClient(server.URL, time.Second, nopLogger{})
	_, ok := client.AppendBooking(context.Background(), testRecord(t))

	assert.True(t, ok)
	require.Len(t, got["data"], 1)
	row := got["data"][0]
	assert.Equal(t, "2025-10-01", row["Event Date"])
	assert.Equal(t, "09:00-10:00", row["Time Slot"])
	assert.Equal(t, "A1, A2", row["Selected Seats"])
	assert.Equal(t, "CONFIRMED", row["Status"])
}

func TestTabularClient_AppendBooking_Non2xxReturnsFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewTabularClient(server.URL, time.Second, nopLogger{})
	_, ok := client.AppendBooking(context.Background(), testRecord(t))

	assert.False(t, ok)
}

func TestTabularClient_ListBookings_BareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"Event Date":     "2025-10-01",
				"Time Slot":      "09:00-10:00",
				"Selected Seats": "A1",
				"Status":         "CONFIRMED",
			},
		})
	}))
	defer server.Close()

	client := NewTabularClient(server.URL, time.Second, nopLogger{})
	records, err := client.ListBookings(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, []domain.SeatID{"A1"}, records[0].Seats)
}

func TestTabularClient_ListBookings_WrappedData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"Event Date": "2025-10-01",
					"Time Slot":  "09:00-10:00",
					"Status":     "CONFIRMED",
				},
			},
		})
	}))
	defer server.Close()

	client := NewTabularClient(server.URL, time.Second, nopLogger{})
	records, err := client.ListBookings(context.Background())
	require.NoError(t, err)

	assert.Len(t, records, 1)
}

func TestTabularClient_ListBookings_MalformedBodyReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewTabularClient(server.URL, time.Second, nopLogger{})
	_, err := client.ListBookings(context.Background())

	assert.Error(t, err)
}
