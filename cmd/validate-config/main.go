package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/glucoach/glucoach/internal/config"
)

func main() {
	fmt.Println("Checking configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("warning: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config validation failed:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration OK")
	fmt.Printf("  - Port: %s\n", cfg.Server.Port)
	fmt.Printf("  - Allowed origins: %v\n", cfg.Server.AllowedOrigins)
	fmt.Printf("  - DB driver: %s\n", cfg.DB.Driver)
	if cfg.DB.Driver == "postgres" {
		fmt.Printf("  - DB host: %s:%s/%s\n", cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName)
	} else {
		fmt.Printf("  - DB file: %s\n", cfg.DB.FilePath)
	}
	fmt.Printf("  - AI provider: %s (timeout %s)\n", cfg.AI.Provider, cfg.AI.Timeout)
	fmt.Printf("  - OpenAI key: %s\n", maskToken(cfg.AI.OpenAIAPIKey))
	fmt.Printf("  - Gemini key: %s\n", maskToken(cfg.AI.GeminiAPIKey))
	fmt.Printf("  - Telegram token: %s\n", maskToken(cfg.TelegramToken))
	fmt.Printf("  - Log level: %v, output: %s, format: %s\n",
		cfg.Logger.Level, cfg.Logger.OutputPath, cfg.Logger.Format)
}

func maskToken(token string) string {
	if token == "" {
		return "<not set>"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
