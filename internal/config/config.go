// Package config carrega a configuração do processo a partir de variáveis de
// ambiente (e de um arquivo .env, quando presente).
//
// As chaves usam o prefixo ATLETAS_ e o primeiro "_" depois do prefixo separa
// a seção do campo: ATLETAS_DATABASE_URL -> database.url,
// ATLETAS_SERVER_READ_TIMEOUT -> server.read_timeout.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const Prefixo = "ATLETAS_"

const (
	EnvLocal = "local"

	PortaPadrao           = "8080"
	LimitePadrao          = 50
	LimiteMaximoPadrao    = 100
	RateLimitBurstPadrao  = 20
	PortaBancoPadrao      = 5432
	SSLModePadrao         = "disable"
	ReadTimeoutPadrao     = 10
	WriteTimeoutPadrao    = 10
	IdleTimeoutPadrao     = 60
	NivelLogPadrao        = "info"
	AmbientePadrao        = "production"
	CORSOrigemPadrao      = "*"
	SlowQueryMsPadrao     = 200
	PingTimeoutSegsPadrao = 5
)

type Config struct {
	Primary    Primary          `koanf:"primary"`
	Log        LogConfig        `koanf:"log"`
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Pagination PaginationConfig `koanf:"pagination"`
	RateLimit  RateLimitConfig  `koanf:"ratelimit"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig aceita uma connection string completa (URL) ou as partes do
// DSN. Sem usuário e senha, as credenciais são lidas do Secrets Manager.
type DatabaseConfig struct {
	URL         string `koanf:"url" validate:"required_without=Host"`
	Host        string `koanf:"host" validate:"required_without=URL"`
	Port        int    `koanf:"port" validate:"min=1,max=65535"`
	Name        string `koanf:"name" validate:"required_with=Host"`
	User        string `koanf:"user"`
	Password    string `koanf:"password"`
	SecretID    string `koanf:"secret_id"`
	SSLMode     string `koanf:"ssl_mode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	SlowQueryMs int    `koanf:"slow_query_ms" validate:"min=0"`
	PingTimeout int    `koanf:"ping_timeout" validate:"min=1"`
}

type PaginationConfig struct {
	DefaultLimit int `koanf:"default_limit" validate:"min=1,ltefield=MaxLimit"`
	MaxLimit     int `koanf:"max_limit" validate:"min=1"`
}

// RateLimitConfig com RPS zero desliga o limitador.
type RateLimitConfig struct {
	RPS      float64 `koanf:"rps" validate:"min=0"`
	Burst    int     `koanf:"burst" validate:"min=1"`
	TrustXFF bool    `koanf:"trust_xff"`
}

// Load lê o ambiente, aplica os valores padrão e valida o resultado.
func Load() (*Config, error) {
	return load(env.ProviderWithValue(Prefixo, ".", chaveValor))
}

func load(provider koanf.Provider) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("erro ao carregar variáveis de ambiente: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}

	aplicarPadroes(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}

	return cfg, nil
}

// chaveValor normaliza ATLETAS_SERVER_READ_TIMEOUT em server.read_timeout e
// quebra listas separadas por vírgula.
func chaveValor(chave, valor string) (string, interface{}) {
	chave = strings.ToLower(strings.TrimPrefix(chave, Prefixo))
	chave = strings.Replace(chave, "_", ".", 1)

	if chave == "server.cors_allowed_origins" {
		var origens []string
		for _, o := range strings.Split(valor, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origens = append(origens, o)
			}
		}
		return chave, origens
	}

	return chave, valor
}

func aplicarPadroes(cfg *Config) {
	if cfg.Primary.Env == "" {
		cfg.Primary.Env = AmbientePadrao
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = NivelLogPadrao
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = PortaPadrao
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = ReadTimeoutPadrao
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = WriteTimeoutPadrao
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = IdleTimeoutPadrao
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{CORSOrigemPadrao}
	}

	if cfg.Database.Port == 0 {
		cfg.Database.Port = PortaBancoPadrao
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = SSLModePadrao
	}
	if cfg.Database.SlowQueryMs == 0 {
		cfg.Database.SlowQueryMs = SlowQueryMsPadrao
	}
	if cfg.Database.PingTimeout == 0 {
		cfg.Database.PingTimeout = PingTimeoutSegsPadrao
	}

	if cfg.Pagination.MaxLimit == 0 {
		cfg.Pagination.MaxLimit = LimiteMaximoPadrao
	}
	if cfg.Pagination.DefaultLimit == 0 {
		cfg.Pagination.DefaultLimit = min(LimitePadrao, cfg.Pagination.MaxLimit)
	}

	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = RateLimitBurstPadrao
	}
}

func (c *Config) IsLocal() bool {
	return c.Primary.Env == EnvLocal
}
