package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// База внешнего API (тот же префикс используется фронтендом)
	APIBasePath string `env:"API_BASE_PATH" envDefault:"/api"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Translate Config
	TranslateAPIKey    string        `env:"TRANSLATE_API_KEY"`
	TranslateEndpoint  string        `env:"TRANSLATE_ENDPOINT"`
	TranslateTimeout   time.Duration `env:"TRANSLATE_TIMEOUT" envDefault:"10s"`
	TranslateRetries   int           `env:"TRANSLATE_MAX_RETRIES" envDefault:"3"`
	TranslateBaseDelay time.Duration `env:"TRANSLATE_BASE_DELAY" envDefault:"1s"`
	// Языки в формате "en:English,de:German"
	TranslateLanguages map[string]string `env:"TRANSLATE_LANGUAGES"`
	DefaultLanguage    string            `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	// Cache Config
	IncidentsCacheTTL time.Duration `env:"INCIDENTS_CACHE_TTL" envDefault:"1m"`

	// API Keys for admin authentication
	APIKeys []string `env:"API_KEYS"`
}

const defaultTranslateEndpoint = "https://translation.googleapis.com/language/translate/v2"

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		APIBasePath:        getEnv("API_BASE_PATH", "/api"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		TranslateAPIKey:    os.Getenv("TRANSLATE_API_KEY"),
		TranslateEndpoint:  getEnv("TRANSLATE_ENDPOINT", defaultTranslateEndpoint),
		TranslateTimeout:   getEnvAsDuration("TRANSLATE_TIMEOUT", 10*time.Second),
		TranslateRetries:   getEnvAsInt("TRANSLATE_MAX_RETRIES", 3),
		TranslateBaseDelay: getEnvAsDuration("TRANSLATE_BASE_DELAY", time.Second),
		TranslateLanguages: parseLanguages(getEnv("TRANSLATE_LANGUAGES", "en:English,de:German,fr:French")),
		DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", "en"),
		IncidentsCacheTTL:  getEnvAsDuration("INCIDENTS_CACHE_TTL", time.Minute),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// parseLanguages разбирает строку вида "en:English,de:German" в карту код -> название
func parseLanguages(raw string) map[string]string {
	languages := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, name, found := strings.Cut(pair, ":")
		if !found {
			name = code
		}
		languages[strings.TrimSpace(code)] = strings.TrimSpace(name)
	}
	return languages
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
