package db

import (
	"context"

	"gorm.io/gorm"
)

// Sessao abre a sessão de uma requisição sobre o pool compartilhado.
//
// Cada comando pega uma conexão do pool e a devolve ao terminar, com sucesso
// ou erro. Quando o cliente desconecta, o cancelamento de ctx interrompe o
// comando em andamento e libera a conexão.
func Sessao(ctx context.Context, pool *gorm.DB) *gorm.DB {
	return pool.Session(&gorm.Session{NewDB: true, Context: ctx})
}
