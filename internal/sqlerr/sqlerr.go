// Package sqlerr classifica erros do banco sem expor o texto do driver.
package sqlerr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Code string

// SQLSTATE do PostgreSQL.
const (
	UniqueViolation Code = "23505"
	Other           Code = ""
)

// ErrCode devolve o SQLSTATE do erro, ou Other quando ele não veio do
// PostgreSQL.
func ErrCode(err error) Code {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return Code(pgerr.Code)
	}
	return Other
}

// IsUniqueViolation reconhece a violação de unicidade tanto pelo erro
// traduzido do gorm (TranslateError) quanto pelo SQLSTATE bruto.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return ErrCode(err) == UniqueViolation
}

// IsCanceled indica que a requisição foi encerrada antes do banco responder.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
