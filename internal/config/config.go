package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig      `toml:"server"`
	Database       DatabaseConfig    `toml:"database"`
	Logs           LogsConfig        `toml:"logs"`
	Metrics        MetricsConfig     `toml:"metrics"`
	CatalogService IntegrationConfig `toml:"catalog_service"`
	Schedule       ScheduleConfig    `toml:"schedule"`
}

// ServerConfig настройки HTTP-сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig настройки клиента внешнего сервиса (таймаут в секундах)
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ScheduleConfig рабочий график бизнеса
type ScheduleConfig struct {
	OpenTime              string `toml:"open_time"`
	CloseTime             string `toml:"close_time"`
	SlotStepMinutes       int    `toml:"slot_step_minutes"`
	PastSlotMarginMinutes int    `toml:"past_slot_margin_minutes"`
	MinCancelNoticeHours  int    `toml:"min_cancel_notice_hours"`
}

// ToDomain конвертирует конфигурацию графика в доменную модель с валидацией
func (s ScheduleConfig) ToDomain() (domain.Schedule, error) {
	return domain.NewSchedule(
		s.OpenTime,
		s.CloseTime,
		s.SlotStepMinutes,
		s.PastSlotMarginMinutes,
		s.MinCancelNoticeHours,
	)
}

// Load читает конфигурацию из TOML-файла и заполняет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := &Config{
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
			ServiceName: "appointment-service",
		},
		CatalogService: IntegrationConfig{
			Timeout: 5,
		},
		Schedule: ScheduleConfig{
			OpenTime:              domain.DefaultOpenTime,
			CloseTime:             domain.DefaultCloseTime,
			SlotStepMinutes:       domain.DefaultSlotStepMinutes,
			PastSlotMarginMinutes: domain.DefaultPastSlotMarginMinutes,
			MinCancelNoticeHours:  domain.DefaultMinCancelNoticeHours,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if _, err := cfg.Schedule.ToDomain(); err != nil {
		return nil, fmt.Errorf("config: invalid schedule: %w", err)
	}

	return cfg, nil
}
