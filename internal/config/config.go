package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Database      DatabaseConfig      `toml:"database"`
	SheetStore    SheetStoreConfig    `toml:"sheet_store"`
	Sync          SyncConfig          `toml:"sync"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`  // пустая строка = stdout
	Level string `toml:"level"` // debug | info | warn | error
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки PostgreSQL (локальный снапшот занятости)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строит строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// SheetStoreConfig настройки удаленного табличного хранилища бронирований
type SheetStoreConfig struct {
	// Mode выбирает форму бэкенда:
	// "script"  - RPC-эндпоинт (POST на запись, GET ?action=... на чтение)
	// "tabular" - универсальный табличный REST API (/rows)
	Mode    string `toml:"mode"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды, на один HTTP вызов
}

// SyncConfig настройки синхронизации доступности
type SyncConfig struct {
	PollInterval      int `toml:"poll_interval"`       // секунды, период фонового опроса
	SessionTTLMinutes int `toml:"session_ttl_minutes"` // время жизни неактивной клиентской сессии
}

// NotificationsConfig настройки публикации событий подтверждения
type NotificationsConfig struct {
	Enabled bool   `toml:"enabled"`
	AMQPURL string `toml:"amqp_url"`
	Queue   string `toml:"queue"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "kns-seat-service"
	}
	if cfg.SheetStore.Mode == "" {
		cfg.SheetStore.Mode = "script"
	}
	if cfg.SheetStore.Timeout == 0 {
		// Источник не ограничивал длительность сетевых вызовов;
		// здесь таймаут обязателен, чтобы SYNCING не зависал навсегда
		cfg.SheetStore.Timeout = 10
	}
	if cfg.Sync.PollInterval == 0 {
		cfg.Sync.PollInterval = 30
	}
	if cfg.Sync.SessionTTLMinutes == 0 {
		cfg.Sync.SessionTTLMinutes = 60
	}
	if cfg.Notifications.Queue == "" {
		cfg.Notifications.Queue = "booking.confirmed"
	}
}

func validate(cfg *Config) error {
	if cfg.SheetStore.URL == "" {
		return fmt.Errorf("config: sheet_store.url is required")
	}
	if cfg.SheetStore.Mode != "script" && cfg.SheetStore.Mode != "tabular" {
		return fmt.Errorf("config: sheet_store.mode must be \"script\" or \"tabular\", got %q", cfg.SheetStore.Mode)
	}
	if cfg.Notifications.Enabled && cfg.Notifications.AMQPURL == "" {
		return fmt.Errorf("config: notifications.amqp_url is required when notifications are enabled")
	}
	return nil
}
