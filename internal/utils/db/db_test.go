package db

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/KromaEnergia/api-atletas/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type fakeSecrets struct {
	secret string
	err    error
	pedido string
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.pedido = aws.ToString(in.SecretId)
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(f.secret)}, nil
}

func semSecrets(t *testing.T) func(context.Context) (SecretsAPI, error) {
	return func(context.Context) (SecretsAPI, error) {
		t.Fatalf("secrets manager should not be called")
		return nil, nil
	}
}

func TestResolveDSN_URLTemPrioridade(t *testing.T) {
	cfg := config.DatabaseConfig{URL: "postgres://a:b@db:5432/atletas", Host: "outro"}

	dsn, err := ResolveDSN(context.Background(), cfg, semSecrets(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dsn != cfg.URL {
		t.Fatalf("expected %q, got %q", cfg.URL, dsn)
	}
}

func TestResolveDSN_Partes(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host: "db.local", Port: 5433, Name: "atletas",
		User: "app", Password: "p@ss word", SSLMode: "require",
	}

	dsn, err := ResolveDSN(context.Background(), cfg, semSecrets(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := url.Parse(dsn)
	if err != nil {
		t.Fatalf("invalid dsn %q: %v", dsn, err)
	}
	if u.Host != "db.local:5433" || u.Path != "/atletas" {
		t.Fatalf("unexpected host/path: %s %s", u.Host, u.Path)
	}
	if pw, _ := u.User.Password(); pw != "p@ss word" {
		t.Fatalf("expected password to round-trip, got %q", pw)
	}
	if u.Query().Get("sslmode") != "require" {
		t.Fatalf("expected sslmode=require, got %q", u.Query().Get("sslmode"))
	}
}

func TestResolveDSN_CredenciaisDoSecretsManager(t *testing.T) {
	fake := &fakeSecrets{secret: `{"username":"svc","password":"segredo"}`}
	cfg := config.DatabaseConfig{Host: "db", Port: 5432, Name: "atletas", SecretID: "prod/atletas", SSLMode: "disable"}

	dsn, err := ResolveDSN(context.Background(), cfg, func(context.Context) (SecretsAPI, error) { return fake, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.pedido != "prod/atletas" {
		t.Fatalf("expected secret prod/atletas, got %q", fake.pedido)
	}

	u, _ := url.Parse(dsn)
	if u.User.Username() != "svc" {
		t.Fatalf("expected user svc, got %q", u.User.Username())
	}
}

func TestResolveDSN_Erros(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "db", Port: 5432, Name: "atletas"}
	if _, err := ResolveDSN(context.Background(), cfg, semSecrets(t)); !errors.Is(err, ErrSemCredenciais) {
		t.Fatalf("expected ErrSemCredenciais, got %v", err)
	}

	cfg.SecretID = "x"
	falha := &fakeSecrets{err: errors.New("AccessDenied")}
	if _, err := ResolveDSN(context.Background(), cfg, func(context.Context) (SecretsAPI, error) { return falha, nil }); err == nil {
		t.Fatalf("expected error when secrets manager fails")
	}

	invalido := &fakeSecrets{secret: "não é json"}
	if _, err := ResolveDSN(context.Background(), cfg, func(context.Context) (SecretsAPI, error) { return invalido, nil }); err == nil {
		t.Fatalf("expected error for malformed secret")
	}
}
