package logger

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/KromaEnergia/api-atletas/internal/config"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// New monta o logger da aplicação: JSON em stdout, ou console colorido no
// ambiente local.
func New(cfg *config.Config) zerolog.Logger {
	var out io.Writer = os.Stdout
	if cfg.IsLocal() {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(out, cfg.Log.Level)
}

func NewWithWriter(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "api-atletas").
		Logger()
}

// NewGormLogger direciona o log do gorm para o zerolog. Só erros e consultas
// lentas são registrados; registro não encontrado não é erro.
func NewGormLogger(l zerolog.Logger, slowThreshold time.Duration) gormlogger.Interface {
	return gormlogger.New(
		log.New(l.With().Str("component", "gorm").Logger(), "", 0),
		gormlogger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)
}
