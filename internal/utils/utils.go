package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KromaEnergia/api-atletas/internal/errs"
	"github.com/KromaEnergia/api-atletas/internal/sqlerr"
	"github.com/rs/zerolog"
)

// EscreverJSON grava v como JSON com o status informado.
func EscreverJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ResponderErro converte err na resposta de erro. Um *errs.HTTPError segue
// como está; qualquer outro erro vira 500 sem o texto original, que fica só
// no log da requisição.
func ResponderErro(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		httpErr.Write(w)
		return
	}

	log := zerolog.Ctx(r.Context())
	if sqlerr.IsCanceled(err) {
		log.Warn().Err(err).Msg("requisição cancelada durante acesso ao banco")
	} else {
		log.Error().Err(err).Msg("erro ao acessar o banco")
	}

	errs.NewInternalServerError().Write(w)
}
