package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

type ctxKey string

const CtxRequestID ctxKey = "requestID"

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxRequestID).(string); ok {
		return id
	}
	return ""
}

// ContextLogger coloca no contexto da requisição um logger filho com o
// request id, recuperável com zerolog.Ctx.
func ContextLogger(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := base.With().Str("request_id", GetRequestID(r.Context())).Logger()
			next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
		})
	}
}
