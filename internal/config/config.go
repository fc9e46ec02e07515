package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/generator"
	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	DBMaxConns     int    `env:"DB_MAX_CONNS" envDefault:"4"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config. Пустой адрес отключает кэш и очередь вебхуков
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPass       string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	SummaryCacheTTL time.Duration `env:"SUMMARY_CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Dataset Config
	OutputCSV          string `env:"OUTPUT_CSV" envDefault:"riscos_logisticos_2025.csv"`
	OutputXLSX         string `env:"OUTPUT_XLSX"`
	RegenerateSchedule string `env:"REGENERATE_SCHEDULE"`

	// Generator Config
	GeneratorParamsFile string `env:"GENERATOR_PARAMS_FILE"`
	GeneratorSeed       int64  `env:"GENERATOR_SEED"`
	NumIncidents        int    `env:"NUM_INCIDENTS"`
	TotalCostTarget     int64  `env:"TOTAL_COST_TARGET"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DBMaxConns:          getEnvAsInt("DB_MAX_CONNS", 4),
		MigrationsPath:      getEnv("MIGRATIONS_PATH", "file://migrations"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		SummaryCacheTTL:     getEnvAsDuration("SUMMARY_CACHE_TTL", 5*time.Minute),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		OutputCSV:           getEnv("OUTPUT_CSV", "riscos_logisticos_2025.csv"),
		OutputXLSX:          os.Getenv("OUTPUT_XLSX"),
		RegenerateSchedule:  os.Getenv("REGENERATE_SCHEDULE"),
		GeneratorParamsFile: os.Getenv("GENERATOR_PARAMS_FILE"),
		GeneratorSeed:       getEnvAsInt64("GENERATOR_SEED", 0),
		NumIncidents:        getEnvAsInt("NUM_INCIDENTS", 0),
		TotalCostTarget:     getEnvAsInt64("TOTAL_COST_TARGET", 0),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.OutputCSV == "" {
		return nil, fmt.Errorf("OUTPUT_CSV must not be empty")
	}
	if cfg.WebhookMaxRetries < 1 {
		cfg.WebhookMaxRetries = 1
	}

	return cfg, nil
}

// GeneratorParams собирает параметры генерации: значения по умолчанию,
// затем YAML-файл, затем переменные окружения. Нулевые значения из окружения
// не переопределяют параметры.
func (c *Config) GeneratorParams() (generator.Params, error) {
	params := generator.DefaultParams()
	if c.GeneratorParamsFile != "" {
		loaded, err := generator.LoadParams(c.GeneratorParamsFile)
		if err != nil {
			return params, fmt.Errorf("config: %w", err)
		}
		params = loaded
	}

	if c.GeneratorSeed != 0 {
		params.Seed = c.GeneratorSeed
	}
	if c.NumIncidents > 0 {
		params.NumIncidents = c.NumIncidents
	}
	if c.TotalCostTarget > 0 {
		params.TotalCostTarget = c.TotalCostTarget
	}

	if err := params.Validate(); err != nil {
		return params, fmt.Errorf("config: %w", err)
	}
	return params, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
