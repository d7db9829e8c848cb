package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "WORKER_COUNT", "SEARCH_DEPTH", "DATABASE_URL", "DATABASE_URI", "KAFKA_BROKERS", "API_JWT_SECRET", "ALLOWED_ORIGINS", "MOVE_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.WorkerCount != 4 || cfg.SearchDepth != 5 {
		t.Fatalf("unexpected engine defaults: %+v", cfg)
	}
	if cfg.MoveTimeout != 10*time.Second {
		t.Fatalf("expected 10s move timeout, got %v", cfg.MoveTimeout)
	}
	if cfg.DatabaseURL != "" || len(cfg.KafkaBrokers) != 0 || cfg.JWTSecret != "" {
		t.Fatalf("optional integrations should be disabled by default: %+v", cfg)
	}
	if AppConfig != cfg {
		t.Fatalf("LoadConfig must publish AppConfig")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("SEARCH_DEPTH", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/moves")

	cfg := LoadConfig()
	if cfg.Port != "9090" || cfg.WorkerCount != 8 {
		t.Fatalf("env values not applied: %+v", cfg)
	}
	if cfg.SearchDepth != 5 {
		t.Fatalf("invalid integer should fall back to default, got %d", cfg.SearchDepth)
	}
	origins := cfg.AllowedOrigins
	if origins[len(origins)-2] != "https://a.example" || origins[len(origins)-1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", origins)
	}
	if len(cfg.KafkaBrokers) != 2 {
		t.Fatalf("expected two brokers, got %v", cfg.KafkaBrokers)
	}
	if cfg.DatabaseURL != "postgres://u:p@localhost:5432/moves?sslmode=disable" {
		t.Fatalf("expected sslmode to be appended, got %s", cfg.DatabaseURL)
	}
}

func TestLoadConfigClampsSearchDepth(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"3", 3},
		{"5", 5},
		{"40", 5},
		{"0", 5},
		{"-2", 5},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("SEARCH_DEPTH", tt.value)
			if got := LoadConfig().SearchDepth; got != tt.want {
				t.Fatalf("SEARCH_DEPTH=%s: got %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}
