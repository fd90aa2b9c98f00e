package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	// .env из рабочего каталога подгружается в окружение до чтения переменных
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix - префикс переменных окружения приложения
const EnvPrefix = "ORGSTRUCT_"

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string `koanf:"port" validate:"required,numeric"`
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver          string `koanf:"driver" validate:"oneof=sqlite postgres"`
	Path            string `koanf:"path" validate:"required_if=Driver sqlite"`
	Host            string `koanf:"host" validate:"required_if=Driver postgres"`
	Port            string `koanf:"port" validate:"required_if=Driver postgres"`
	User            string `koanf:"user"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode         string `koanf:"ssl_mode"`
	ConnectAttempts int    `koanf:"connect_attempts" validate:"min=1"`
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// SlogLevel переводит уровень из конфигурации в slog.Level
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

var defaults = map[string]any{
	"server.port":               "8080",
	"database.driver":           "sqlite",
	"database.path":             "orgstructure.db",
	"database.host":             "localhost",
	"database.port":             "5432",
	"database.user":             "postgres",
	"database.password":         "postgres",
	"database.name":             "orgstructure",
	"database.ssl_mode":         "disable",
	"database.connect_attempts": 30,
	"log.level":                 "info",
}

// Load загружает конфигурацию из переменных окружения с префиксом ORGSTRUCT_.
// ORGSTRUCT_DATABASE_SSL_MODE попадает в database.ssl_mode.
func Load() (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// envKey отделяет имя секции первым подчёркиванием
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
