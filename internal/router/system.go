package router

import (
	"net/http"
	"time"

	"github.com/KromaEnergia/api-atletas/internal/config"
	"github.com/KromaEnergia/api-atletas/internal/errs"
	"github.com/KromaEnergia/api-atletas/internal/utils"
	"github.com/KromaEnergia/api-atletas/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func registrarSistema(r *mux.Router, cfg *config.Config, pool *gorm.DB) {
	timeout := time.Duration(cfg.Database.PingTimeout) * time.Second

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.Ping(req.Context(), pool, timeout); err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).Msg("health check falhou")
			errs.NewServiceUnavailableError("Banco de dados indisponível").Write(w)
			return
		}
		utils.EscreverJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
}
