package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"gorm traduzido", gorm.ErrDuplicatedKey, true},
		{"gorm embrulhado", fmt.Errorf("erro ao criar atleta: %w", gorm.ErrDuplicatedKey), true},
		{"pgconn 23505", &pgconn.PgError{Code: "23505", ConstraintName: "atletas_cpf_key"}, true},
		{"pgconn not null", &pgconn.PgError{Code: "23502"}, false},
		{"registro não encontrado", gorm.ErrRecordNotFound, false},
		{"erro qualquer", errors.New("conexão recusada"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestErrCode(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "atletas_cpf_key"})

	if got := ErrCode(err); got != UniqueViolation {
		t.Fatalf("expected %q, got %q", UniqueViolation, got)
	}
	if got := ErrCode(errors.New("x")); got != Other {
		t.Fatalf("expected Other, got %q", got)
	}
}

func TestIsCanceled(t *testing.T) {
	if !IsCanceled(fmt.Errorf("query: %w", context.Canceled)) {
		t.Fatalf("expected context.Canceled to be recognized")
	}
	if IsCanceled(errors.New("boom")) {
		t.Fatalf("expected plain error not to be a cancellation")
	}
}
