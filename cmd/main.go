package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KromaEnergia/api-atletas/internal/atleta"
	"github.com/KromaEnergia/api-atletas/internal/config"
	"github.com/KromaEnergia/api-atletas/internal/logger"
	"github.com/KromaEnergia/api-atletas/internal/middleware"
	"github.com/KromaEnergia/api-atletas/internal/router"
	"github.com/KromaEnergia/api-atletas/internal/server"
	"github.com/KromaEnergia/api-atletas/internal/utils/db"
	"github.com/rs/zerolog"
)

const tempoDeEncerramento = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("erro ao carregar configuração")
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("erro ao executar o servidor")
	}
	log.Info().Msg("servidor encerrado")
}

// run sobe o servidor e bloqueia até ctx ser cancelado.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	pool, err := db.GetDB(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("erro ao abrir o pool: %w", err)
	}

	// Cria a tabela atletas se ainda não existir
	if err := atleta.Migrate(pool); err != nil {
		_ = db.Close(pool)
		return fmt.Errorf("erro no AutoMigrate: %w", err)
	}

	var limiter *middleware.LimiterStore
	if cfg.RateLimit.RPS > 0 {
		limiter = middleware.NewLimiterStore(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		limiter.StartJanitor(ctx, 2*time.Minute)
	}

	srv := server.New(cfg, log, pool)
	srv.SetupHTTPServer(router.New(cfg, pool, log, limiter))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		_ = db.Close(pool)
		if err != nil {
			return fmt.Errorf("erro no servidor HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), tempoDeEncerramento)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
