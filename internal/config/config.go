package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	JWTSecret     string
	StoreDriver   string
	StoreDSN      string
	StorePath     string
	GeminiAPIKey  string
	AssistTimeout time.Duration
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "supersecretkey"),
		StoreDriver:   getEnv("STORE_DRIVER", "sqlite"),
		StoreDSN:      getEnv("STORE_DSN", ""),
		StorePath:     getEnv("STORE_PATH", ""),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		AssistTimeout: time.Duration(getEnvInt("ASSIST_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	// Token helpers read JWT_SECRET from the environment; make sure the
	// applied default is visible to them too.
	os.Setenv("JWT_SECRET", cfg.JWTSecret)

	return cfg
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultVal
}
