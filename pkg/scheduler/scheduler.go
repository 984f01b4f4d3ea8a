// Package scheduler периодический запуск фоновой задачи с явным
// контрактом start/stop (пауза при скрытой вкладке, возобновление при видимой).
package scheduler

import (
	"context"
	"sync"
	"time"
)

// Task фоновая задача, запускаемая по расписанию
type Task func(ctx context.Context)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Scheduler отменяемый обработчик периодической задачи.
// Start запускает задачу немедленно и далее по интервалу,
// Stop останавливает тики без отмены уже запущенного вызова.
// Повторные Start/Stop безопасны.
type Scheduler struct {
	interval time.Duration
	task     Task
	logger   Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// New создает новый планировщик. Задача не запускается до вызова Start.
func New(interval time.Duration, task Task, logger Logger) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
		logger:   logger,
	}
}

// Start запускает периодическое выполнение задачи.
// Первый запуск происходит сразу же, чтобы после возобновления
// не показывать устаревшее состояние. Повторный Start - no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})

	stopCh := s.stopCh
	s.wg.Add(1)
	go s.loop(stopCh)

	s.logger.Info("scheduler: started, interval=%s", s.interval)
}

// Stop останавливает периодическое выполнение. Повторный Stop - no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("scheduler: stopped")
}

// Running сообщает, активен ли планировщик
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) loop(stopCh <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Немедленный запуск при старте
	s.runTask(stopCh)

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.runTask(stopCh)
		}
	}
}

func (s *Scheduler) runTask(stopCh <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.task(ctx)
	}()

	select {
	case <-done:
	case <-stopCh:
		// Планировщик останавливают - отменяем текущий запуск и ждем его завершения
		cancel()
		<-done
	}
}
