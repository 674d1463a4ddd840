package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "FITNESS"

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Booking   BookingConfig   `toml:"booking"`
	Notifier  NotifierConfig  `toml:"notifier"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
	MigrationsPath  string `toml:"migrations_path" split_words:"true"`
	AutoMigrate     bool   `toml:"auto_migrate" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" split_words:"true"`
	File  string `toml:"file" split_words:"true"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// CalendarConfig часы работы клуба и праздничное закрытие
type CalendarConfig struct {
	Timezone     string `toml:"timezone" split_words:"true"`
	WeekdayOpen  int    `toml:"weekday_open" split_words:"true"`
	WeekdayClose int    `toml:"weekday_close" split_words:"true"`
	WeekendOpen  int    `toml:"weekend_open" split_words:"true"`
	WeekendClose int    `toml:"weekend_close" split_words:"true"`
	HolidayStart string `toml:"holiday_start" split_words:"true"` // MM-DD
	HolidayEnd   string `toml:"holiday_end" split_words:"true"`     // MM-DD
	HorizonDays  int    `toml:"horizon_days" split_words:"true"`
}

// BookingConfig ограничения транзакции бронирования (миллисекунды)
type BookingConfig struct {
	LockTimeoutMs      int `toml:"lock_timeout_ms" split_words:"true"`
	StatementTimeoutMs int `toml:"statement_timeout_ms" split_words:"true"`
}

// LockTimeout таймаут ожидания блокировок
func (c BookingConfig) LockTimeout() time.Duration {
	return time.Duration(c.LockTimeoutMs) * time.Millisecond
}

// StatementTimeout таймаут одного запроса
func (c BookingConfig) StatementTimeout() time.Duration {
	return time.Duration(c.StatementTimeoutMs) * time.Millisecond
}

// NotifierConfig очередь уведомлений о бронированиях в Redis
type NotifierConfig struct {
	Enabled   bool   `toml:"enabled" split_words:"true"`
	RedisAddr string `toml:"redis_addr" split_words:"true"`
	Password  string `toml:"password" split_words:"true"`
	DB        int    `toml:"db" split_words:"true"`
	Queue     string `toml:"queue" split_words:"true"`
	Timeout   int    `toml:"timeout" split_words:"true"` // секунды
}

// RateLimitConfig ограничение частоты создания бронирований на профиль
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled" split_words:"true"`
	RPS     float64 `toml:"rps" split_words:"true"`
	Burst   int     `toml:"burst" split_words:"true"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "fitness_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MigrationsPath:  "migrations",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "fitness-booking-service",
		},
		Calendar: CalendarConfig{
			Timezone:     domain.DefaultTimezone,
			WeekdayOpen:  domain.DefaultWeekdayOpen,
			WeekdayClose: domain.DefaultWeekdayClose,
			WeekendOpen:  domain.DefaultWeekendOpen,
			WeekendClose: domain.DefaultWeekendClose,
			HolidayStart: domain.DefaultHolidayStart,
			HolidayEnd:   domain.DefaultHolidayEnd,
			HorizonDays:  domain.DefaultHorizonDays,
		},
		Booking: BookingConfig{
			LockTimeoutMs:      2000,
			StatementTimeoutMs: 5000,
		},
		Notifier: NotifierConfig{
			RedisAddr: "localhost:6379",
			Queue:     "booking_notifications",
			Timeout:   3,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     1,
			Burst:   5,
		},
	}
}

// Load читает конфигурацию: значения по умолчанию, затем config.toml,
// затем .env и переменные окружения с префиксом FITNESS (FITNESS_DATABASE_PASSWORD и т.д.)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	// .env не обязателен
	_ = godotenv.Load()

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Booking.LockTimeoutMs < 0 || c.Booking.StatementTimeoutMs < 0 {
		return fmt.Errorf("%w: booking timeouts must not be negative", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: ratelimit.rps and ratelimit.burst must be positive", ErrInvalidConfig)
	}
	if c.Notifier.Enabled && c.Notifier.Queue == "" {
		return fmt.Errorf("%w: notifier.queue is required", ErrInvalidConfig)
	}
	if _, err := c.CalendarPolicy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// CalendarPolicy собирает неизменяемую политику календаря из секции [calendar]
func (c *Config) CalendarPolicy() (domain.CalendarPolicy, error) {
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return domain.CalendarPolicy{}, fmt.Errorf("calendar.timezone %q: %w", c.Calendar.Timezone, err)
	}

	policy := domain.CalendarPolicy{
		Location:    loc,
		Weekday:     domain.OpeningHours{Open: c.Calendar.WeekdayOpen, Close: c.Calendar.WeekdayClose},
		Weekend:     domain.OpeningHours{Open: c.Calendar.WeekendOpen, Close: c.Calendar.WeekendClose},
		HorizonDays: c.Calendar.HorizonDays,
	}

	if c.Calendar.HolidayStart != "" || c.Calendar.HolidayEnd != "" {
		from, err := domain.ParseMonthDay(c.Calendar.HolidayStart)
		if err != nil {
			return domain.CalendarPolicy{}, fmt.Errorf("calendar.holiday_start: %w", err)
		}
		to, err := domain.ParseMonthDay(c.Calendar.HolidayEnd)
		if err != nil {
			return domain.CalendarPolicy{}, fmt.Errorf("calendar.holiday_end: %w", err)
		}
		policy.Holidays = []domain.HolidayWindow{{From: from, To: to}}
	}

	if err := policy.Validate(); err != nil {
		return domain.CalendarPolicy{}, err
	}

	return policy, nil
}
