package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KromaEnergia/api-atletas/internal/config"
	"github.com/KromaEnergia/api-atletas/internal/utils/db"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Server struct {
	Config *config.Config
	Logger zerolog.Logger
	DB     *gorm.DB

	httpServer *http.Server
}

func New(cfg *config.Config, log zerolog.Logger, pool *gorm.DB) *Server {
	return &Server{Config: cfg, Logger: log, DB: pool}
}

func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start bloqueia até o servidor parar. Um Shutdown não é tratado como erro.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("servidor HTTP não inicializado")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("servidor iniciado")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown espera as requisições em andamento e fecha o pool.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("erro ao encerrar servidor HTTP: %w", err)
		}
	}

	if s.DB != nil {
		s.Logger.Info().Msg("fechando pool de conexões")
		if err := db.Close(s.DB); err != nil {
			return fmt.Errorf("erro ao fechar conexão com o banco: %w", err)
		}
	}

	return nil
}
