package sync_control

type Scheduler interface {
	Start()
	Stop()
	Running() bool
}

type Logger interface {
	Info(format string, v ...interface{})
}
