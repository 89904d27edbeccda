package paginacao

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/KromaEnergia/api-atletas/internal/errs"
)

// Paginacao é a janela pedida pelo cliente: no máximo Limit registros a
// partir da posição Offset (base zero).
type Paginacao struct {
	Limit  int
	Offset int
}

// Numero é a página (base um) em que o Offset cai.
func (p Paginacao) Numero() int {
	return p.Offset/p.Limit + 1
}

// Pagina é o objeto devolvido pelo endpoint de listagem.
type Pagina[T any] struct {
	// Items são os registros da janela, em ordem.
	Items []T `json:"items"`
	// Total é a quantidade de registros que casam com a consulta, sem janela.
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	// Page e Size repetem a janela em termos de página.
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

func Nova[T any](items []T, p Paginacao, total int64) Pagina[T] {
	if items == nil {
		items = []T{}
	}

	return Pagina[T]{
		Items:  items,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
		Page:   p.Numero(),
		Size:   p.Limit,
		// Arredonda para cima quando a última página é parcial.
		Pages: int((total + int64(p.Limit) - 1) / int64(p.Limit)),
	}
}

// DaQuery lê a janela da query string em um de dois formatos: limit e offset,
// ou page (base um) e size. Ausentes, valem limitePadrao e zero. Misturar os
// dois formatos, ou valores fora da faixa, vira erro 400.
func DaQuery(q url.Values, limitePadrao, limiteMaximo int) (Paginacao, error) {
	limit, temLimit, err := inteiro(q, "limit")
	if err != nil {
		return Paginacao{}, err
	}
	offset, temOffset, err := inteiro(q, "offset")
	if err != nil {
		return Paginacao{}, err
	}
	page, temPage, err := inteiro(q, "page")
	if err != nil {
		return Paginacao{}, err
	}
	size, temSize, err := inteiro(q, "size")
	if err != nil {
		return Paginacao{}, err
	}

	if (temLimit || temOffset) && (temPage || temSize) {
		return Paginacao{}, errs.NewBadRequestError("Use limit/offset ou page/size, não os dois")
	}

	if temPage || temSize {
		return porPagina(page, temPage, size, temSize, limitePadrao, limiteMaximo)
	}

	p := Paginacao{Limit: limitePadrao}
	if temLimit {
		if limit < 1 || limit > limiteMaximo {
			return Paginacao{}, errs.NewBadRequestError(
				fmt.Sprintf("Parâmetro 'limit' deve estar entre 1 e %d", limiteMaximo))
		}
		p.Limit = limit
	}
	if temOffset {
		if offset < 0 {
			return Paginacao{}, errs.NewBadRequestError("Parâmetro 'offset' não pode ser negativo")
		}
		p.Offset = offset
	}
	return p, nil
}

func porPagina(page int, temPage bool, size int, temSize bool, limitePadrao, limiteMaximo int) (Paginacao, error) {
	if !temPage {
		page = 1
	}
	if !temSize {
		size = limitePadrao
	}

	if page < 1 {
		return Paginacao{}, errs.NewBadRequestError("Parâmetro 'page' deve ser maior ou igual a 1")
	}
	if size < 1 || size > limiteMaximo {
		return Paginacao{}, errs.NewBadRequestError(
			fmt.Sprintf("Parâmetro 'size' deve estar entre 1 e %d", limiteMaximo))
	}

	return Paginacao{Limit: size, Offset: (page - 1) * size}, nil
}

// inteiro lê o parâmetro nome. Valor vazio conta como ausente.
func inteiro(q url.Values, nome string) (int, bool, error) {
	raw := strings.TrimSpace(q.Get(nome))
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, errs.NewBadRequestError(
			fmt.Sprintf("Parâmetro '%s' deve ser um número inteiro", nome))
	}
	return n, true, nil
}
