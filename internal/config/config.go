package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr      string
	DBPath          string
	TariffFile      string
	DefaultCurrency string
	LogLevel        string
	LogFormat       string
	LogFile         string
}

// Load reads the configuration from the environment. Variables found in the
// dotenv file named by ENV_FILE (default .env) fill in anything not already
// set; a missing file is not an error.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		DBPath:          getEnv("DB_PATH", "/data/movecheck.db"),
		TariffFile:      getEnv("TARIFF_FILE", ""),
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "EUR"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		LogFile:         getEnv("LOG_FILE", ""),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
