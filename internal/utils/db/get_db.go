package db

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/KromaEnergia/api-atletas/internal/config"
	"github.com/KromaEnergia/api-atletas/internal/logger"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var ErrSemCredenciais = errors.New("credenciais do banco ausentes: informe usuário e senha ou o ID do segredo")

// GetDB resolve a connection string e abre o pool compartilhado. O pool é
// criado uma vez no início do processo e só é lido pelas requisições.
func GetDB(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	dsn, err := ResolveDSN(ctx, cfg, func(ctx context.Context) (SecretsAPI, error) {
		return NewSecretsClient(ctx)
	})
	if err != nil {
		return nil, err
	}

	gormLog := logger.NewGormLogger(log, time.Duration(cfg.SlowQueryMs)*time.Millisecond)
	database, err := ConnectDataBase(ctx, dsn, gormLog, time.Duration(cfg.PingTimeout)*time.Second)
	if err != nil {
		return nil, err
	}

	log.Info().Str("host", hostDoDSN(cfg)).Msg("conectado ao banco de dados")
	return database, nil
}

// ResolveDSN prefere a URL completa. Sem ela, monta a URL com host, porta e
// nome; as credenciais vêm da configuração ou, na falta delas, do Secrets
// Manager.
func ResolveDSN(ctx context.Context, cfg config.DatabaseConfig, secrets func(context.Context) (SecretsAPI, error)) (string, error) {
	if cfg.URL != "" {
		return cfg.URL, nil
	}

	user, password := cfg.User, cfg.Password
	if user == "" || password == "" {
		if cfg.SecretID == "" {
			return "", ErrSemCredenciais
		}
		client, err := secrets(ctx)
		if err != nil {
			return "", err
		}
		creds, err := retrieveCredentials(ctx, client, cfg.SecretID)
		if err != nil {
			return "", err
		}
		user, password = creds.Username, creds.Password
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return u.String(), nil
}

func hostDoDSN(cfg config.DatabaseConfig) string {
	if cfg.Host != "" {
		return cfg.Host
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
