package atleta

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/KromaEnergia/api-atletas/internal/config"
	"github.com/KromaEnergia/api-atletas/internal/errs"
	"github.com/KromaEnergia/api-atletas/internal/paginacao"
	"github.com/KromaEnergia/api-atletas/internal/utils"
	"github.com/KromaEnergia/api-atletas/internal/utils/db"
	"github.com/KromaEnergia/api-atletas/internal/validacao"
	"gorm.io/gorm"
)

const (
	MsgNaoEncontrado = "Atleta não encontrado"
	MsgCPFDuplicado  = "Já existe um atleta cadastrado com este CPF"

	msgMalFormado      = "JSON mal formado"
	tamanhoMaximoCorpo = 1 << 20
)

// Handler encapsula o pool e o repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Paginacao  config.PaginationConfig
}

// NewHandler cria um novo handler de atletas
func NewHandler(pool *gorm.DB, pag config.PaginationConfig) *Handler {
	return &Handler{
		DB:         pool,
		Repository: NewRepository(),
		Paginacao:  pag,
	}
}

// ListarAtletas trata GET /atletas?limit=&offset=
func (h *Handler) ListarAtletas(w http.ResponseWriter, r *http.Request) {
	p, err := paginacao.DaQuery(r.URL.Query(), h.Paginacao.DefaultLimit, h.Paginacao.MaxLimit)
	if err != nil {
		utils.ResponderErro(w, r, err)
		return
	}

	atletas, total, err := h.Repository.ListarPaginado(db.Sessao(r.Context(), h.DB), p)
	if err != nil {
		utils.ResponderErro(w, r, err)
		return
	}

	utils.EscreverJSON(w, http.StatusOK, paginacao.Nova(toResponses(atletas), p, total))
}

// BuscarAtletas trata GET /atletas/search?nome=&cpf=
func (h *Handler) BuscarAtletas(w http.ResponseWriter, r *http.Request) {
	// Os valores vão como vieram: só a string vazia desliga o filtro.
	q := r.URL.Query()
	filtro := Filtro{
		Nome: q.Get("nome"),
		CPF:  q.Get("cpf"),
	}

	atletas, err := h.Repository.Buscar(db.Sessao(r.Context(), h.DB), filtro)
	if err != nil {
		utils.ResponderErro(w, r, err)
		return
	}

	// Nenhum resultado é 404, não lista vazia.
	if len(atletas) == 0 {
		utils.ResponderErro(w, r, errs.NewNotFoundError(MsgNaoEncontrado))
		return
	}

	utils.EscreverJSON(w, http.StatusOK, toResponses(atletas))
}

// CriarAtleta trata POST /atletas
func (h *Handler) CriarAtleta(w http.ResponseWriter, r *http.Request) {
	var req AtletaCreate
	if err := decodificar(w, r, &req); err != nil {
		utils.ResponderErro(w, r, err)
		return
	}

	if err := validacao.Validar(req); err != nil {
		utils.ResponderErro(w, r, err)
		return
	}

	a := req.toModel()
	if err := h.Repository.Criar(db.Sessao(r.Context(), h.DB), &a); err != nil {
		if errors.Is(err, ErrCPFDuplicado) {
			utils.ResponderErro(w, r, errs.NewConflictError(MsgCPFDuplicado))
			return
		}
		utils.ResponderErro(w, r, err)
		return
	}

	utils.EscreverJSON(w, http.StatusCreated, toResponse(a))
}

// decodificar lê o corpo JSON. Falhas de formato e de tipo viram 422 com a
// indicação do campo, quando houver.
func decodificar(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, tamanhoMaximoCorpo)

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err == nil {
		// O corpo tem que ser um único valor JSON.
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return errs.NewValidationError(msgMalFormado, nil)
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var maxErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return errs.NewValidationError("Corpo da requisição vazio", nil)
	case errors.As(err, &typeErr) && typeErr.Field == "":
		return errs.NewValidationError(msgMalFormado, nil)
	case errors.As(err, &typeErr):
		return errs.NewValidationError(validacao.MensagemFalha, []errs.FieldError{{
			Field: typeErr.Field,
			Error: fmt.Sprintf("tipo inválido, esperado %s", nomeTipo(typeErr.Type)),
		}})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return errs.NewValidationError(msgMalFormado, nil)
	case errors.As(err, &maxErr):
		return errs.NewValidationError("Corpo da requisição muito grande", nil)
	default:
		return errs.NewValidationError("JSON inválido", nil)
	}
}

func nomeTipo(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.String {
		return "texto"
	}
	return t.Kind().String()
}
