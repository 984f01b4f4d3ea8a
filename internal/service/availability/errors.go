package availability

import "errors"

var (
	// ErrSyncInProgress возвращается, когда синхронизация уже выполняется.
	// Это не ошибка, а сигнал управления потоком: повторный триггер
	// не ставится в очередь, а просто отбрасывается.
	ErrSyncInProgress = errors.New("availability: sync already in progress")
)
