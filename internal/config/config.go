package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// External services
	OllamaURL   string
	OllamaModel string
	TikaURL     string

	// Directories
	UploadsDir string
	ReportsDir string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Port:        envOr("PORT", "8080"),
		OllamaURL:   envOr("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel: envOr("OLLAMA_MODEL", "llama3"),
		TikaURL:     envOr("TIKA_URL", "http://localhost:9998/tika"),
		UploadsDir:  envOr("UPLOADS_DIR", "./uploads"),
		ReportsDir:  envOr("REPORTS_DIR", "./reports"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
