package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// Secure aplica os cabeçalhos de segurança. Fora do ambiente local também
// envia HSTS.
func Secure(isLocal bool) func(http.Handler) http.Handler {
	s := secure.New(secure.Options{
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		ReferrerPolicy:       "no-referrer",
		STSSeconds:           31536000,
		STSIncludeSubdomains: true,
		IsDevelopment:        isLocal,
	})
	return s.Handler
}
