package models

import "time"

// Source источник данных, из которого построено текущее состояние занятости.
// Явно различает "получили свежие данные", "живем на устаревшем снапшоте"
// и "данных нет вообще" - вместо неотличимого пустого списка.
type Source string

const (
	// SourceRemote состояние построено из свежего ответа удаленного хранилища
	SourceRemote Source = "remote"

	// SourceSnapshot удаленное хранилище недоступно, состояние из локального снапшота
	SourceSnapshot Source = "snapshot"

	// SourcePrevious удаленное хранилище недоступно, оставлено предыдущее состояние
	SourcePrevious Source = "previous"

	// SourceNone данных нет: ни удаленных, ни снапшота, ни предыдущего состояния
	SourceNone Source = "none"
)

// Result итог одного цикла синхронизации
type Result struct {
	Source   Source    // откуда взято состояние
	SyncedAt time.Time // время завершения цикла
	Records  int       // количество учтенных записей о бронированиях
	Pools    int       // количество пулов мест с занятостью
	Degraded bool      // true, если удаленное хранилище было недоступно
}

// Status текущее состояние движка синхронизации для UI-сигнала
type Status struct {
	Syncing    bool      // идет ли синхронизация прямо сейчас
	LastSyncAt time.Time // время последнего завершенного цикла (zero - еще не было)
	LastSource Source    // источник последнего завершенного цикла
}
