package availability

import (
	"context"
	"sync"
	"time"

	"github.com/avkotov/KNS-SeatService/internal/domain"
	"github.com/avkotov/KNS-SeatService/internal/service/availability/models"
)

// Триггеры синхронизации (для логов и метрик)
const (
	TriggerManual     = "manual"
	TriggerPolling    = "polling"
	TriggerPreSubmit  = "pre_submit"
	TriggerPostCommit = "post_commit"
	TriggerStartup    = "startup"
)

// Options параметры одного цикла синхронизации
type Options struct {
	// Trigger источник запуска (manual | polling | pre_submit | post_commit | startup)
	Trigger string

	// Preserve локальный выбор мест, который нужно сохранить через обновление.
	// Места, успевшие стать занятыми для ключа Key, молча выбрасываются из
	// выбора - окончательно конфликт ловится на коммите, это защита в глубину.
	Preserve *domain.Selection
	Key      domain.SessionKey
}

// Service движок сверки занятости: перестраивает локальное состояние
// из удаленного журнала бронирований. Два состояния - IDLE и SYNCING;
// одновременно выполняется не более одного цикла, конкурентный триггер
// отбрасывается без постановки в очередь.
type Service struct {
	gateway      Gateway
	snapshots    SnapshotRepository
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger

	mu         sync.Mutex
	syncing    bool
	store      domain.Availability
	lastSyncAt time.Time
	lastSource models.Source
}

// NewService создает новый экземпляр движка сверки
// metrics может быть nil, если сбор метрик выключен
func NewService(
	gateway Gateway,
	snapshots SnapshotRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		gateway:      gateway,
		snapshots:    snapshots,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		store:        make(domain.Availability),
		lastSource:   models.SourceNone,
	}
}

// Syncing сообщает, выполняется ли синхронизация прямо сейчас
func (s *Service) Syncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncing
}

// Status возвращает состояние движка для UI-сигнала
func (s *Service) Status() models.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Status{
		Syncing:    s.syncing,
		LastSyncAt: s.lastSyncAt,
		LastSource: s.lastSource,
	}
}

// BookedSeats возвращает копию множества занятых мест для ключа.
// Для неизвестного ключа возвращается пустое множество.
func (s *Service) BookedSeats(key domain.SessionKey) domain.SeatSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	booked := s.store.BookedSeats(key)
	out := make(domain.SeatSet, len(booked))
	for seat := range booked {
		out[seat] = struct{}{}
	}
	return out
}

// MarkBooked оптимистично помечает места занятыми после успешной записи
// бронирования, до прихода авторитетного состояния следующим циклом
func (s *Service) MarkBooked(key domain.SessionKey, seats []domain.SeatID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.MarkBooked(key, seats)
}

// WarmUp загружает локальный снапшот в качестве стартового состояния.
// Вызывается один раз до первого цикла синхронизации, чтобы после
// рестарта не показывать пустой зал, пока удаленное хранилище не ответило.
func (s *Service) WarmUp(ctx context.Context) error {
	records, err := s.snapshots.ListAll(ctx)
	if err != nil {
		s.logger.Warn("WarmUp: failed to load snapshot: %v", err)
		return err
	}

	store := domain.RebuildAvailability(records)

	s.mu.Lock()
	s.store = store
	s.lastSource = models.SourceSnapshot
	s.mu.Unlock()

	s.logger.Info("WarmUp: loaded %d snapshot records, %d pools", len(records), len(store))
	return nil
}

// Reconcile выполняет один цикл сверки занятости.
//
// Возвращает ErrSyncInProgress, если цикл уже идет (единственная
// возвращаемая ошибка - все остальные исходы выражены полем Source
// результата, сбой удаленного хранилища не исключение, а деградация).
func (s *Service) Reconcile(ctx context.Context, opts Options) (*models.Result, error) {
	// 1. Guard: не более одного цикла одновременно
	s.mu.Lock()
	if s.syncing {
		s.mu.Unlock()
		s.logger.Info("Reconcile: sync already in progress, trigger=%s dropped", opts.Trigger)
		return nil, ErrSyncInProgress
	}
	s.syncing = true
	s.mu.Unlock()

	started := s.timeProvider.Now()
	s.logger.Info("Reconcile: started, trigger=%s", opts.Trigger)

	result := s.reconcile(ctx, opts)

	// 2. Выход из SYNCING и фиксация итога
	s.mu.Lock()
	s.syncing = false
	s.lastSyncAt = result.SyncedAt
	s.lastSource = result.Source
	s.mu.Unlock()

	duration := s.timeProvider.Now().Sub(started)
	if s.metrics != nil {
		s.metrics.ObserveSyncRun(opts.Trigger, string(result.Source), duration)
		if result.Source == models.SourceRemote {
			s.metrics.SetLastSyncTime(result.SyncedAt)
		}
	}

	if result.Degraded {
		s.logger.Warn("Reconcile: degraded, trigger=%s, source=%s, pools=%d",
			opts.Trigger, result.Source, result.Pools)
	} else {
		s.logger.Info("Reconcile: completed, trigger=%s, records=%d, pools=%d",
			opts.Trigger, result.Records, result.Pools)
	}

	return result, nil
}

func (s *Service) reconcile(ctx context.Context, opts Options) *models.Result {
	records, err := s.gateway.ListBookings(ctx)
	if err != nil {
		s.logger.Warn("Reconcile: remote list failed: %v", err)
		return s.degrade(ctx, opts)
	}

	// Полная перестройка: состояние заменяется целиком, не патчится
	store := domain.RebuildAvailability(records)

	s.mu.Lock()
	s.store = store
	s.mu.Unlock()

	s.preserveSelection(opts, store)
	s.persistSnapshot(ctx, records)

	return &models.Result{
		Source:   models.SourceRemote,
		SyncedAt: s.timeProvider.Now(),
		Records:  len(records),
		Pools:    len(store),
	}
}

// degrade оставляет предыдущее состояние, а если его еще нет -
// поднимает локальный снапшот. "Не смогли получить" намеренно
// не превращается в "бронирований нет".
func (s *Service) degrade(ctx context.Context, opts Options) *models.Result {
	s.mu.Lock()
	pools := len(s.store)
	hasPrevious := pools > 0 || s.lastSource != models.SourceNone
	s.mu.Unlock()

	if hasPrevious {
		return &models.Result{
			Source:   models.SourcePrevious,
			SyncedAt: s.timeProvider.Now(),
			Pools:    pools,
			Degraded: true,
		}
	}

	records, err := s.snapshots.ListAll(ctx)
	if err != nil {
		s.logger.Error("Reconcile: snapshot fallback failed: %v", err)
		return &models.Result{
			Source:   models.SourceNone,
			SyncedAt: s.timeProvider.Now(),
			Degraded: true,
		}
	}

	store := domain.RebuildAvailability(records)

	s.mu.Lock()
	s.store = store
	s.mu.Unlock()

	s.preserveSelection(opts, store)

	return &models.Result{
		Source:   models.SourceSnapshot,
		SyncedAt: s.timeProvider.Now(),
		Records:  len(records),
		Pools:    len(store),
		Degraded: true,
	}
}

// preserveSelection выбрасывает из сохраняемого выбора места,
// ставшие занятыми после обновления
func (s *Service) preserveSelection(opts Options, store domain.Availability) {
	if opts.Preserve == nil || opts.Key.IsZero() {
		return
	}

	booked := store.BookedSeats(opts.Key)
	var lost []domain.SeatID
	for _, seat := range opts.Preserve.Seats() {
		if booked.Contains(seat) {
			lost = append(lost, seat)
		}
	}

	if len(lost) > 0 {
		opts.Preserve.Drop(lost)
		s.logger.Info("Reconcile: dropped %d newly booked seats from selection, key=%s",
			len(lost), opts.Key.String())
	}
}

// persistSnapshot сохраняет свежий журнал в локальный снапшот.
// Неудача не прерывает синхронизацию: снапшот - вспомогательный fallback.
func (s *Service) persistSnapshot(ctx context.Context, records []domain.BookingRecord) {
	fetchedAt := s.timeProvider.Now()
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.snapshots.ReplaceAll(txCtx, records, fetchedAt)
	})
	if err != nil {
		s.logger.Warn("Reconcile: failed to persist snapshot: %v", err)
	}
}
