package domain

// SeatSet множество занятых мест одного пула
type SeatSet map[SeatID]struct{}

// Contains проверяет наличие места в множестве
func (s SeatSet) Contains(id SeatID) bool {
	_, ok := s[id]
	return ok
}

// Availability производное отображение ключа сессии на множество занятых мест.
// Полностью пересчитывается из всех записей о бронированиях при каждой
// синхронизации; инкрементально не патчится, кроме оптимистичной отметки
// после успешной локальной записи (MarkBooked).
type Availability map[SessionKey]SeatSet

// RebuildAvailability строит занятость из записей о бронированиях.
// Учитываются только записи со статусом CONFIRMED; места внутри пула
// дедуплицируются (объединение множеств). Функция чистая и не зависит
// от порядка записей.
func RebuildAvailability(records []BookingRecord) Availability {
	availability := make(Availability)

	for _, record := range records {
		if !record.IsConfirmed() {
			continue
		}

		set, ok := availability[record.Key]
		if !ok {
			set = make(SeatSet)
			availability[record.Key] = set
		}

		for _, seat := range record.Seats {
			set[seat] = struct{}{}
		}
	}

	return availability
}

// BookedSeats возвращает множество занятых мест для ключа.
// Для неизвестного ключа возвращается пустое множество, не ошибка.
func (a Availability) BookedSeats(key SessionKey) SeatSet {
	if set, ok := a[key]; ok {
		return set
	}
	return SeatSet{}
}

// MarkBooked оптимистично помечает места занятыми после успешной записи
// в хранилище, до прихода авторитетного состояния следующей синхронизацией
func (a Availability) MarkBooked(key SessionKey, seats []SeatID) {
	set, ok := a[key]
	if !ok {
		set = make(SeatSet)
		a[key] = set
	}
	for _, seat := range seats {
		set[seat] = struct{}{}
	}
}

// Clone возвращает глубокую копию отображения занятости
func (a Availability) Clone() Availability {
	clone := make(Availability, len(a))
	for key, set := range a {
		setCopy := make(SeatSet, len(set))
		for seat := range set {
			setCopy[seat] = struct{}{}
		}
		clone[key] = setCopy
	}
	return clone
}
