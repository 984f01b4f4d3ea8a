// Package sessions хранит контексты клиентских сессий.
//
// Исходная система держала текущий выбор и ключ сессии в глобальных
// переменных страницы; здесь это явный объект-контекст, передаваемый
// в операции, - без скрытой разделяемой изменяемости.
package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/avkotov/KNS-SeatService/internal/domain"
)

// Session контекст одной клиентской сессии: активный пул мест
// и предварительный выбор. Принадлежит одному клиенту страницы,
// но опрос карты, переключения мест и смена пула приходят
// конкурентными HTTP-запросами.
//
// Key и Location после создания меняются только через Store.ChangeKey;
// конкурентные читатели берут согласованную пару через Context().
// Selection синхронизирован сам, UpdatedAt трогает только Store
// под своим мьютексом.
type Session struct {
	ID        string
	Selection *domain.Selection
	CreatedAt time.Time
	UpdatedAt time.Time

	mu       sync.Mutex
	Key      domain.SessionKey
	Location string // отображаемое название локации
}

// Context возвращает согласованную пару активного ключа и названия локации
func (s *Session) Context() (domain.SessionKey, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Key, s.Location
}

func (s *Session) setContext(key domain.SessionKey, location string) {
	s.mu.Lock()
	s.Key = key
	s.Location = location
	s.mu.Unlock()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// Store потокобезопасное хранилище клиентских сессий с TTL по неактивности
type Store struct {
	ttl          time.Duration
	timeProvider TimeProvider

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore создает новое хранилище сессий
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:          ttl,
		timeProvider: realTimeProvider{},
		sessions:     make(map[string]*Session),
	}
}

// Create создает новую сессию с пустым выбором для заданного пула мест
func (s *Store) Create(key domain.SessionKey, location string) *Session {
	now := s.timeProvider.Now()
	session := &Session{
		ID:        newSessionID(),
		Key:       key,
		Location:  location,
		Selection: domain.NewSelection(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get возвращает сессию по идентификатору и продлевает её жизнь
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := s.timeProvider.Now()
	if now.Sub(session.UpdatedAt) > s.ttl {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}

	session.UpdatedAt = now
	return session, nil
}

// ChangeKey переключает сессию на другой пул мест.
// Выбор при смене даты/слота/локации всегда очищается.
func (s *Store) ChangeKey(id string, key domain.SessionKey, location string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	currentKey, _ := session.Context()
	if currentKey != key {
		session.Selection.Clear()
	}
	session.setContext(key, location)
	session.UpdatedAt = s.timeProvider.Now()

	return session, nil
}

// Evict удаляет сессии, неактивные дольше TTL. Возвращает число удаленных.
func (s *Store) Evict() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	evicted := 0
	for id, session := range s.sessions {
		if now.Sub(session.UpdatedAt) > s.ttl {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len возвращает количество живых сессий
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand на поддерживаемых платформах не возвращает ошибок
		panic(err)
	}
	return hex.EncodeToString(buf)
}
