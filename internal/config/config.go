package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TasksFile string
	LogLevel  string
}

// Load reads settings from the environment, after merging a .env file from
// the working directory when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		TasksFile: getEnv("TASKS_FILE", "tasks.csv"),
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
