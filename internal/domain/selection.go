package domain

import "sync"

// Selection упорядоченный список предварительно выбранных, но еще
// не закоммиченных мест текущего клиента. Принадлежит исключительно
// клиентской сессии; очищается при смене сессии/даты/локации, при
// успешной отправке, при отмене и (если явно не сохранена) при
// каждой синхронизации.
//
// Потокобезопасен: выбор одновременно мутируют HTTP-обработчики
// и цикл синхронизации (через сохранение выбора).
type Selection struct {
	mu    sync.Mutex
	seats []SeatID
}

// NewSelection создает пустой выбор
func NewSelection() *Selection {
	return &Selection{seats: make([]SeatID, 0)}
}

// Contains проверяет, выбрано ли место
func (s *Selection) Contains(id SeatID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seat := range s.seats {
		if seat == id {
			return true
		}
	}
	return false
}

// Toggle добавляет место в выбор или убирает его, если уже выбрано.
// Возвращает true, если место оказалось выбранным после вызова.
func (s *Selection) Toggle(id SeatID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, seat := range s.seats {
		if seat == id {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return false
		}
	}
	s.seats = append(s.seats, id)
	return true
}

// Drop убирает перечисленные места из выбора, сохраняя порядок остальных
func (s *Selection) Drop(ids []SeatID) {
	if len(ids) == 0 {
		return
	}

	drop := make(map[SeatID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.seats[:0]
	for _, seat := range s.seats {
		if _, ok := drop[seat]; !ok {
			kept = append(kept, seat)
		}
	}
	s.seats = kept
}

// Clear очищает выбор
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seats = s.seats[:0]
}

// Seats возвращает копию списка выбранных мест в порядке выбора
func (s *Selection) Seats() []SeatID {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SeatID, len(s.seats))
	copy(out, s.seats)
	return out
}

// Len возвращает количество выбранных мест
func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seats)
}
