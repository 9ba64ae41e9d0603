package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	// EnvConfigPath переменная окружения с путём до файла конфигурации
	EnvConfigPath = "CONFIG_PATH"
	// DefaultConfigPath путь по умолчанию
	DefaultConfigPath = "config.toml"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Booking       BookingConfig       `toml:"booking"`
	Notifications NotificationsConfig `toml:"notifications"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры хранилища
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	MaxTxRetries    int    `toml:"max_tx_retries"`
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры бронирования
type BookingConfig struct {
	SlotGranularityMinutes int    `toml:"slot_granularity_minutes"`
	Timezone               string `toml:"timezone"`
}

// Location часовой пояс, в котором трактуются даты и время бронирований
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(b.Timezone)
}

// NotificationsConfig параметры доставки уведомлений
// Пустой список brokers означает публикацию в лог
type NotificationsConfig struct {
	Brokers        []string `toml:"brokers"`
	Topic          string   `toml:"topic"`
	Workers        int      `toml:"workers"`
	QueueSize      int      `toml:"queue_size"`
	PublishTimeout int      `toml:"publish_timeout"`
}

// RateLimitConfig ограничение запросов на клиента, rps <= 0 выключает лимит
type RateLimitConfig struct {
	RPS   float64 `toml:"rps"`
	Burst int     `toml:"burst"`
}

// Load читает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PathFromEnv путь до конфигурации из CONFIG_PATH или путь по умолчанию
func PathFromEnv() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Driver == "" {
		c.Database.Driver = DriverPostgres
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Database.MaxTxRetries == 0 {
		c.Database.MaxTxRetries = 3
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "beauty-booking"
	}

	if c.Booking.SlotGranularityMinutes == 0 {
		c.Booking.SlotGranularityMinutes = 30
	}

	if c.Notifications.Topic == "" {
		c.Notifications.Topic = "booking-events"
	}
	if c.Notifications.Workers == 0 {
		c.Notifications.Workers = 4
	}
	if c.Notifications.QueueSize == 0 {
		c.Notifications.QueueSize = 256
	}
	if c.Notifications.PublishTimeout == 0 {
		c.Notifications.PublishTimeout = 5
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database host and dbname are required for postgres driver", ErrInvalidConfig)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown database driver %q", ErrInvalidConfig, c.Database.Driver)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Booking.SlotGranularityMinutes <= 0 || 60%c.Booking.SlotGranularityMinutes != 0 {
		return fmt.Errorf("%w: slot_granularity_minutes must divide 60: %d", ErrInvalidConfig, c.Booking.SlotGranularityMinutes)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidConfig, c.Booking.Timezone)
	}
	if c.Notifications.Workers < 1 || c.Notifications.QueueSize < 1 {
		return fmt.Errorf("%w: notification workers and queue_size must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("%w: rate_limit burst must be positive when rps is set", ErrInvalidConfig)
	}
	return nil
}
