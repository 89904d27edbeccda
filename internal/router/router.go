package router

import (
	"net/http"

	"github.com/KromaEnergia/api-atletas/internal/atleta"
	"github.com/KromaEnergia/api-atletas/internal/config"
	"github.com/KromaEnergia/api-atletas/internal/errs"
	"github.com/KromaEnergia/api-atletas/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// New monta as rotas e a cadeia de middlewares. limiter nil desliga o limite
// de requisições.
func New(cfg *config.Config, pool *gorm.DB, log zerolog.Logger, limiter *middleware.LimiterStore) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		errs.NewNotFoundError("Rota não encontrada").Write(w)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		errs.NewMethodNotAllowedError().Write(w)
	})

	registrarSistema(r, cfg, pool)

	// Rotas de atletas
	atletaHandler := atleta.NewHandler(pool, cfg.Pagination)
	r.HandleFunc("/atletas", atletaHandler.ListarAtletas).Methods(http.MethodGet)
	r.HandleFunc("/atletas/search", atletaHandler.BuscarAtletas).Methods(http.MethodGet)
	r.HandleFunc("/atletas", atletaHandler.CriarAtleta).Methods(http.MethodPost)

	var h http.Handler = r
	if limiter != nil {
		h = middleware.RateLimit(limiter, cfg.RateLimit.TrustXFF)(h)
	}
	h = middleware.CORS(cfg.Server.CORSAllowedOrigins)(h)
	h = middleware.Secure(cfg.IsLocal())(h)
	h = middleware.Recover(h)
	h = middleware.RequestLogger(h)
	h = middleware.ContextLogger(log)(h)
	h = middleware.RequestID(h)

	return h
}
