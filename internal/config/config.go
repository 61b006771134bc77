package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Fetch    FetchConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	// When empty the in-memory record store is used.
	Connection string
}

type AIConfig struct {
	Provider      string // "nvidia" or "ollama"
	NvidiaAPIKey  string
	NvidiaBaseURL string
	NvidiaModel   string
	OllamaBaseURL string
	OllamaModel   string
}

type FetchConfig struct {
	TimeoutSeconds int
	UserAgent      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "nvidia"),
			NvidiaAPIKey:  getEnv("NVIDIA_API_KEY", ""),
			NvidiaBaseURL: getEnv("NVIDIA_API_URL", "https://integrate.api.nvidia.com/v1"),
			NvidiaModel:   getEnv("NVIDIA_MODEL", "nvidia/llama-3.3-nemotron-super-49b-v1.5"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_MODEL", "llama3"),
		},
		Fetch: FetchConfig{
			TimeoutSeconds: getEnvAsInt("PAGE_FETCH_TIMEOUT_SECONDS", 10),
			UserAgent:      getEnv("PAGE_FETCH_USER_AGENT", "CampusAssistantBot/1.0 (+https://github.com/campus-assistant)"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
