package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KromaEnergia/api-atletas/internal/config"
	"github.com/KromaEnergia/api-atletas/internal/utils/db"
	"github.com/rs/zerolog"
)

func configBase() *config.Config {
	return &config.Config{
		Primary:    config.Primary{Env: config.EnvLocal},
		Server:     config.ServerConfig{Port: "0", ReadTimeout: 1, WriteTimeout: 1, IdleTimeout: 1, CORSAllowedOrigins: []string{"*"}},
		Pagination: config.PaginationConfig{DefaultLimit: 50, MaxLimit: 100},
		RateLimit:  config.RateLimitConfig{Burst: 1},
	}
}

func TestRun_SemCredenciais(t *testing.T) {
	cfg := configBase()
	cfg.Database = config.DatabaseConfig{Host: "db.interno", Port: 5432, Name: "atletas", SSLMode: "disable", PingTimeout: 1}

	err := run(context.Background(), cfg, zerolog.Nop())
	if !errors.Is(err, db.ErrSemCredenciais) {
		t.Fatalf("expected ErrSemCredenciais, got %v", err)
	}
}

func TestRun_BancoInacessivel(t *testing.T) {
	cfg := configBase()
	cfg.Database = config.DatabaseConfig{
		URL:         "postgres://u:p@127.0.0.1:1/atletas?sslmode=disable&connect_timeout=1",
		PingTimeout: 1,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := run(ctx, cfg, zerolog.Nop()); err == nil {
		t.Fatalf("expected connection error, got nil")
	}
}
