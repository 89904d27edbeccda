package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/KromaEnergia/api-atletas/internal/errs"
	"github.com/rs/zerolog"
)

// Recover transforma um panic do handler em 500 e registra a pilha.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			zerolog.Ctx(r.Context()).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recuperado")

			errs.NewInternalServerError().Write(w)
		}()

		next.ServeHTTP(w, r)
	})
}
