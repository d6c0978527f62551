package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config представляет полную конфигурацию приложения
type Config struct {
	Logs      LogsConfig      `toml:"logs"`
	Server    ServerConfig    `toml:"server"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Practicum PracticumConfig `toml:"practicum"`
	Telegram  TelegramConfig  `toml:"telegram"`
	Worker    WorkerConfig    `toml:"worker"`
}

// LogsConfig содержит настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ServerConfig содержит настройки HTTP сервера (health/metrics)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// MetricsConfig содержит настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PracticumConfig содержит настройки API Практикума.
// Токен принимается только из переменной окружения PRACTICUM_TOKEN,
// чтобы секрет не попадал в конфигурационный файл.
type PracticumConfig struct {
	Token    string `toml:"-"`
	Endpoint string `toml:"endpoint"`
	Timeout  int    `toml:"timeout"` // в секундах
}

// TelegramConfig содержит настройки Telegram Bot.
// Оба значения — секреты, принимаются только из окружения
// (TELEGRAM_TOKEN и TELEGRAM_CHAT_ID).
type TelegramConfig struct {
	BotToken string `toml:"-"`
	ChatID   int64  `toml:"-"`
}

// WorkerConfig содержит настройки цикла опроса
type WorkerConfig struct {
	PollInterval int `toml:"poll_interval"` // интервал опроса API (в секундах)
}

// Имена обязательных переменных окружения
const (
	EnvPracticumToken = "PRACTICUM_TOKEN"
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
)

// DefaultEndpoint эндпоинт API статусов домашних работ
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// Load загружает конфигурацию из TOML файла с поддержкой переменных окружения.
// Отсутствие файла не является ошибкой: в этом случае используются значения
// по умолчанию и переменные окружения.
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to decode TOML config: %w", err)
		}
	}

	// Переопределяем значения из переменных окружения (если они установлены)
	if err := overrideFromEnv(&cfg); err != nil {
		return nil, err
	}

	// Валидация конфигурации
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// overrideFromEnv переопределяет значения из переменных окружения.
// Некорректное значение обязательного секрета — ошибка: молчаливый пропуск
// выглядел бы для оператора как отсутствие переменной.
func overrideFromEnv(cfg *Config) error {
	// Секреты (только из окружения)
	if v := os.Getenv(EnvPracticumToken); v != "" {
		cfg.Practicum.Token = v
	}
	if v := os.Getenv(EnvTelegramToken); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv(EnvTelegramChatID); v != "" {
		chatID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", EnvTelegramChatID, v)
		}
		cfg.Telegram.ChatID = chatID
	}

	// Practicum
	if v := os.Getenv("PRACTICUM_ENDPOINT"); v != "" {
		cfg.Practicum.Endpoint = v
	}
	if v := os.Getenv("PRACTICUM_TIMEOUT"); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			cfg.Practicum.Timeout = timeout
		}
	}

	// Server
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}

	// Logs
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Logs.File = v
	}

	// Metrics
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}
	if v := os.Getenv("METRICS_PATH"); v != "" {
		cfg.Metrics.Path = v
	}
	if v := os.Getenv("METRICS_SERVICE_NAME"); v != "" {
		cfg.Metrics.ServiceName = v
	}

	// Worker
	if v := os.Getenv("WORKER_POLL_INTERVAL"); v != "" {
		if interval, err := strconv.Atoi(v); err == nil {
			cfg.Worker.PollInterval = interval
		}
	}

	return nil
}

// validate проверяет корректность конфигурации и проставляет значения
// по умолчанию. Обязательные секреты здесь НЕ проверяются: их проверяет
// MustCheckTokens, чтобы залогировать каждую отсутствующую переменную отдельно.
func validate(cfg *Config) error {
	// Practicum
	if cfg.Practicum.Endpoint == "" {
		cfg.Practicum.Endpoint = DefaultEndpoint
	}
	if cfg.Practicum.Timeout == 0 {
		cfg.Practicum.Timeout = 10 // 10 seconds default
	}
	if cfg.Practicum.Timeout < 0 {
		return fmt.Errorf("practicum timeout must be positive")
	}

	// Worker
	if cfg.Worker.PollInterval == 0 {
		cfg.Worker.PollInterval = 600 // 10 minutes default
	}
	if cfg.Worker.PollInterval < 0 {
		return fmt.Errorf("worker poll_interval must be positive")
	}

	// Server
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.HTTPPort < 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("HTTP port must be between 1 and 65535")
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

	// Logs
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info" // default
	}
	if cfg.Logs.File == "" {
		cfg.Logs.File = "./logs/app.log" // default
	}

	// Metrics
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "homeworkbot"
	}

	return nil
}

// MissingTokens возвращает имена обязательных переменных окружения,
// которые не были установлены, в фиксированном порядке
func (c *Config) MissingTokens() []string {
	var missing []string
	if c.Practicum.Token == "" {
		missing = append(missing, EnvPracticumToken)
	}
	if c.Telegram.BotToken == "" {
		missing = append(missing, EnvTelegramToken)
	}
	if c.Telegram.ChatID == 0 {
		missing = append(missing, EnvTelegramChatID)
	}
	return missing
}
