package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "ALLOWED_ORIGINS", "SEED_GAMES", "SHUTDOWN_TIMEOUT_SECONDS", "WS_WRITE_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Port != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.Port)
	}
	if cfg.Env != EnvLocal {
		t.Errorf("expected env %s, got %s", EnvLocal, cfg.Env)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"*"}) {
		t.Errorf("expected wildcard origins, got %v", cfg.AllowedOrigins)
	}
	if !cfg.SeedGames {
		t.Error("expected seeding enabled by default")
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected 30s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.WSWriteTimeout != 10*time.Second {
		t.Errorf("expected 10s ws write timeout, got %v", cfg.WSWriteTimeout)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", EnvProd)
	t.Setenv("ALLOWED_ORIGINS", " http://localhost:8081 , ,https://savepoint.app")
	t.Setenv("SEED_GAMES", "false")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")
	t.Setenv("WS_WRITE_TIMEOUT_SECONDS", "not-a-number")

	cfg := LoadConfig()

	if cfg.Port != "8081" || cfg.Env != EnvProd {
		t.Errorf("unexpected port/env: %s/%s", cfg.Port, cfg.Env)
	}
	want := []string{"http://localhost:8081", "https://savepoint.app"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("expected origins %v, got %v", want, cfg.AllowedOrigins)
	}
	if cfg.SeedGames {
		t.Error("expected seeding disabled")
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected 5s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.WSWriteTimeout != 10*time.Second {
		t.Errorf("invalid value should fall back to default, got %v", cfg.WSWriteTimeout)
	}
}

func TestGetEnvAsBoolInvalid(t *testing.T) {
	t.Setenv("SEED_GAMES", "maybe")

	if !GetEnvAsBool("SEED_GAMES", true) {
		t.Error("invalid boolean should fall back to default")
	}
}
