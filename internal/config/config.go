package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

var (
	// ErrLoadConfig ошибка чтения или парсинга файла конфигурации
	ErrLoadConfig = errors.New("config: failed to load")

	// ErrInvalidConfig конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid")
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Auth           AuthConfig           `toml:"auth"`
	Redis          RedisConfig          `toml:"redis"`
	Booking        BookingConfig        `toml:"booking"`
	Retry          RetryConfig          `toml:"retry"`
	RateLimit      RateLimitConfig      `toml:"rate_limit"`
	PaymentGateway PaymentGatewayConfig `toml:"payment_gateway"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig проверка JWT, выданных внешним провайдером аутентификации
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

// RedisConfig кэш справочника услуг. Пустой Addr отключает кэш.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// BookingConfig параметры расписания
type BookingConfig struct {
	Timezone           string `toml:"timezone"`
	SlotStepMinutes    int    `toml:"slot_step_minutes"`
	DepositPercent     int    `toml:"deposit_percent"`
	PaymentExpiryHours int    `toml:"payment_expiry_hours"`
}

// Location часовой пояс салона
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// RetryConfig повтор временных ошибок БД, интервалы в миллисекундах
type RetryConfig struct {
	MaxAttempts     int     `toml:"max_attempts"`
	InitialInterval int     `toml:"initial_interval_ms"`
	MaxInterval     int     `toml:"max_interval_ms"`
	Multiplier      float64 `toml:"multiplier"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// PaymentGatewayConfig платежный шлюз PIX. Mode "mock" включает эмуляцию в памяти,
// "http" ходит в REST API шлюза по BaseURL.
type PaymentGatewayConfig struct {
	Mode        string `toml:"mode"`
	BaseURL     string `toml:"base_url"`
	AccessToken string `toml:"access_token"`
	Timeout     int    `toml:"timeout"`
}

func (p PaymentGatewayConfig) IsMock() bool {
	return p.Mode == PaymentModeMock
}

const (
	PaymentModeMock = "mock"
	PaymentModeHTTP = "http"
)

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и проверяет её
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon-booking",
		},
		Redis: RedisConfig{
			TTL: 300,
		},
		Booking: BookingConfig{
			Timezone:           "America/Sao_Paulo",
			SlotStepMinutes:    30,
			DepositPercent:     50,
			PaymentExpiryHours: 24,
		},
		Retry: RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 50,
			MaxInterval:     1000,
			Multiplier:      2,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
		PaymentGateway: PaymentGatewayConfig{
			Mode:    PaymentModeMock,
			Timeout: 10,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns <= 0 || c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("%w: database pool sizes open=%d idle=%d",
			ErrInvalidConfig, c.Database.MaxOpenConns, c.Database.MaxIdleConns)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone=%q: %w", ErrInvalidConfig, c.Booking.Timezone, err)
	}
	if c.Booking.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: booking.slot_step_minutes must be positive", ErrInvalidConfig)
	}
	if c.Booking.DepositPercent < 1 || c.Booking.DepositPercent > 100 {
		return fmt.Errorf("%w: booking.deposit_percent=%d must be within 1..100", ErrInvalidConfig, c.Booking.DepositPercent)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("%w: retry.max_attempts must be at least 1", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	switch c.PaymentGateway.Mode {
	case PaymentModeMock:
	case PaymentModeHTTP:
		if c.PaymentGateway.BaseURL == "" || c.PaymentGateway.AccessToken == "" {
			return fmt.Errorf("%w: payment_gateway.base_url and access_token are required in http mode", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: payment_gateway.mode=%q", ErrInvalidConfig, c.PaymentGateway.Mode)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}
