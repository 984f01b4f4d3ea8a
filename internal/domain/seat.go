package domain

import "fmt"

// SeatID идентификатор места в сетке: буква ряда + номер места ("A1".."J10").
// Множество идентификаторов статично и известно на старте;
// логика бронирования никогда не изобретает новые идентификаторы.
type SeatID string

// AllSeatIDs возвращает полный список мест сетки в порядке рядов:
// A1..A10, B1..B10, ..., J10
func AllSeatIDs() []SeatID {
	seats := make([]SeatID, 0, GridRows*GridSeatsPerRow)
	for row := 1; row <= GridRows; row++ {
		for seat := 1; seat <= GridSeatsPerRow; seat++ {
			seats = append(seats, SeatID(fmt.Sprintf("%c%d", 'A'+row-1, seat)))
		}
	}
	return seats
}

var seatUniverse = buildSeatUniverse()

func buildSeatUniverse() map[SeatID]struct{} {
	universe := make(map[SeatID]struct{}, GridRows*GridSeatsPerRow)
	for _, id := range AllSeatIDs() {
		universe[id] = struct{}{}
	}
	return universe
}

// IsValidSeatID проверяет, что идентификатор принадлежит сетке
func IsValidSeatID(id SeatID) bool {
	_, ok := seatUniverse[id]
	return ok
}
