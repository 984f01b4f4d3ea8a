package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllSeatIDs_FixedUniverse(t *testing.T) {
	seats := AllSeatIDs()

	assert.Len(t, seats, GridRows*GridSeatsPerRow)
	assert.Equal(t, SeatID("A1"), seats[0])
	assert.Equal(t, SeatID("A10"), seats[9])
	assert.Equal(t, SeatID("B1"), seats[10])
	assert.Equal(t, SeatID("J10"), seats[len(seats)-1])
}

func TestIsValidSeatID(t *testing.T) {
	tests := []struct {
		id    SeatID
		valid bool
	}{
		{"A1", true},
		{"J10", true},
		{"E5", true},
		{"K1", false},  // ряда K нет
		{"A11", false}, // в ряду 10 мест
		{"A0", false},
		{"a1", false}, // регистр значим
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidSeatID(tt.id), "seat %q", tt.id)
	}
}

func TestJoinAndSplitSeats(t *testing.T) {
	assert.Equal(t, "A1, A2, B3", JoinSeats([]SeatID{"A1", "A2", "B3"}))

	assert.Equal(t, []SeatID{"A1", "A2", "B3"}, SplitSeats("A1, A2, B3"))
	assert.Equal(t, []SeatID{"A1", "B3"}, SplitSeats(" A1 ,, B3 "))
	assert.Nil(t, SplitSeats("   "))
	assert.Nil(t, SplitSeats(""))
}
