package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/glucoach/glucoach/internal/logger"
)

type Config struct {
	Server        ServerConfig
	DB            DBConfig
	AI            AIConfig
	TelegramToken string
	Logger        LoggerConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type DBConfig struct {
	Driver   string // "sqlite" or "postgres"
	FilePath string // sqlite only
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type AIConfig struct {
	Provider     string // "openai" or "gemini"
	OpenAIAPIKey string
	GeminiAPIKey string
	Timeout      time.Duration
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func parseOrigins() []string {
	origins := []string{"http://localhost:5173"}
	if frontend := os.Getenv("FRONTEND_ORIGIN"); frontend != "" {
		origins = append(origins, frontend)
	}
	return origins
}

func parseAITimeout() time.Duration {
	seconds, err := strconv.Atoi(getEnvOrDefault("AI_TIMEOUT_SECONDS", "30"))
	if err != nil || seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "3001"),
			AllowedOrigins: parseOrigins(),
		},
		DB: DBConfig{
			Driver:   getEnvOrDefault("DB_DRIVER", "sqlite"),
			FilePath: getEnvOrDefault("DB_FILE_PATH", "data/glucoach.db"),
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "glucoach"),
		},
		AI: AIConfig{
			Provider:     getEnvOrDefault("AI_PROVIDER", "openai"),
			OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			Timeout:      parseAITimeout(),
		},
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}, nil
}
