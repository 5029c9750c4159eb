package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Port            string
	Env             string
	AllowedOrigins  []string
	SeedGames       bool
	ShutdownTimeout time.Duration
	WSWriteTimeout  time.Duration
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "3000")
	env := GetEnv("ENV", EnvLocal)
	seedGames := GetEnvAsBool("SEED_GAMES", true)
	shutdownTimeoutSec := GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 30)
	wsWriteTimeoutSec := GetEnvAsInt("WS_WRITE_TIMEOUT_SECONDS", 10)

	// CSV list, "*" allows any origin
	var allowedOrigins []string
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", "*"), ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return &Config{
		Port:            port,
		Env:             env,
		AllowedOrigins:  allowedOrigins,
		SeedGames:       seedGames,
		ShutdownTimeout: time.Duration(shutdownTimeoutSec) * time.Second,
		WSWriteTimeout:  time.Duration(wsWriteTimeoutSec) * time.Second,
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer env value, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue),
		)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("invalid boolean env value, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue),
		)
		return defaultValue
	}
	return value
}
