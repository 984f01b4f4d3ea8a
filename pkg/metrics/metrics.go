package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
// Регистрируются в default registry, отдаются через promhttp.Handler()
type Metrics struct {
	serviceName string

	// HTTP метрики
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Метрики работы с БД (снапшот-хранилище)
	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbPoolOpenConns *prometheus.GaugeVec
	dbPoolInUse     *prometheus.GaugeVec
	dbPoolIdle      *prometheus.GaugeVec

	// Метрики синхронизации доступности
	syncRunsTotal    *prometheus.CounterVec
	syncDuration     *prometheus.HistogramVec
	syncLastUnixTime *prometheus.GaugeVec

	// Метрики бронирований
	bookingsTotal      *prometheus.CounterVec
	conflictSeatsTotal *prometheus.CounterVec
}

// New создает и регистрирует набор метрик для сервиса
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		dbPoolOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_open_connections",
			Help: "Number of open connections in the pool",
		}, []string{"service"}),

		dbPoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		dbPoolIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Number of idle connections in the pool",
		}, []string{"service"}),

		syncRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_sync_runs_total",
			Help: "Total number of availability reconciliation runs",
		}, []string{"service", "trigger", "result"}),

		syncDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "availability_sync_duration_seconds",
			Help:    "Availability reconciliation duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service"}),

		syncLastUnixTime: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "availability_sync_last_timestamp_seconds",
			Help: "Unix timestamp of the last successful reconciliation",
		}, []string{"service"}),

		bookingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Total number of booking submissions by outcome",
		}, []string{"service", "result"}),

		conflictSeatsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_conflict_seats_total",
			Help: "Total number of seats lost to booking conflicts",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	m.dbQueriesTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.dbPoolOpenConns.WithLabelValues(m.serviceName).Set(float64(open))
	m.dbPoolInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.dbPoolIdle.WithLabelValues(m.serviceName).Set(float64(idle))
}

// ObserveSyncRun фиксирует завершенный цикл синхронизации доступности
// trigger: manual | polling | pre_submit | post_commit
// result: remote | snapshot | previous | error
func (m *Metrics) ObserveSyncRun(trigger, result string, duration time.Duration) {
	m.syncRunsTotal.WithLabelValues(m.serviceName, trigger, result).Inc()
	m.syncDuration.WithLabelValues(m.serviceName).Observe(duration.Seconds())
}

// SetLastSyncTime обновляет время последней успешной синхронизации
func (m *Metrics) SetLastSyncTime(t time.Time) {
	m.syncLastUnixTime.WithLabelValues(m.serviceName).Set(float64(t.Unix()))
}

// IncBooking фиксирует исход отправки бронирования
// result: confirmed | conflict | rejected | failed
func (m *Metrics) IncBooking(result string) {
	m.bookingsTotal.WithLabelValues(m.serviceName, result).Inc()
}

// AddConflictSeats фиксирует количество мест, потерянных из-за конфликта
func (m *Metrics) AddConflictSeats(n int) {
	m.conflictSeatsTotal.WithLabelValues(m.serviceName).Add(float64(n))
}
