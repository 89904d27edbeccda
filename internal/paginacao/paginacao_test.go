package paginacao

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/KromaEnergia/api-atletas/internal/errs"
)

func TestDaQuery_Padroes(t *testing.T) {
	p, err := DaQuery(url.Values{}, 50, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Limit != 50 || p.Offset != 0 {
		t.Fatalf("expected limit=50 offset=0, got limit=%d offset=%d", p.Limit, p.Offset)
	}
}

func TestDaQuery_Validos(t *testing.T) {
	p, err := DaQuery(url.Values{"limit": {"10"}, "offset": {"30"}}, 50, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Limit != 10 || p.Offset != 30 {
		t.Fatalf("expected limit=10 offset=30, got limit=%d offset=%d", p.Limit, p.Offset)
	}
	if p.Numero() != 4 {
		t.Fatalf("expected page 4, got %d", p.Numero())
	}
}

func TestDaQuery_PorPagina(t *testing.T) {
	tests := []struct {
		name       string
		q          url.Values
		limit, off int
	}{
		{"page e size", url.Values{"page": {"3"}, "size": {"10"}}, 10, 20},
		{"só page", url.Values{"page": {"2"}}, 50, 50},
		{"só size", url.Values{"size": {"5"}}, 5, 0},
		{"page vazio", url.Values{"page": {""}, "size": {"1"}}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DaQuery(tt.q, 50, 100)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Limit != tt.limit || p.Offset != tt.off {
				t.Fatalf("expected limit=%d offset=%d, got limit=%d offset=%d", tt.limit, tt.off, p.Limit, p.Offset)
			}
		})
	}
}

func TestDaQuery_Invalidos(t *testing.T) {
	tests := []struct {
		name string
		q    url.Values
	}{
		{"limit não numérico", url.Values{"limit": {"abc"}}},
		{"limit zero", url.Values{"limit": {"0"}}},
		{"limit negativo", url.Values{"limit": {"-5"}}},
		{"limit acima do máximo", url.Values{"limit": {"101"}}},
		{"offset negativo", url.Values{"offset": {"-1"}}},
		{"offset não numérico", url.Values{"offset": {"1.5"}}},
		{"page zero", url.Values{"page": {"0"}}},
		{"page não numérico", url.Values{"page": {"dois"}}},
		{"size zero", url.Values{"size": {"0"}}},
		{"size acima do máximo", url.Values{"size": {"101"}}},
		{"formatos misturados", url.Values{"limit": {"10"}, "page": {"2"}}},
		{"offset com size", url.Values{"offset": {"5"}, "size": {"10"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DaQuery(tt.q, 50, 100)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			var httpErr *errs.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected *errs.HTTPError, got %T", err)
			}
			if httpErr.Status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", httpErr.Status)
			}
			if httpErr.Detail == "" {
				t.Fatalf("expected explanatory detail")
			}
		})
	}
}

func TestNova_Metadados(t *testing.T) {
	pg := Nova([]int{21, 22, 23, 24, 25, 26, 27, 28, 29, 30}, Paginacao{Limit: 10, Offset: 20}, 25)

	if pg.Total != 25 {
		t.Fatalf("expected total 25, got %d", pg.Total)
	}
	if pg.Page != 3 || pg.Size != 10 {
		t.Fatalf("expected page=3 size=10, got page=%d size=%d", pg.Page, pg.Size)
	}
	if pg.Pages != 3 {
		t.Fatalf("expected 3 pages, got %d", pg.Pages)
	}
	if pg.Limit != 10 || pg.Offset != 20 {
		t.Fatalf("expected limit=10 offset=20, got limit=%d offset=%d", pg.Limit, pg.Offset)
	}
}

func TestNova_SemItens(t *testing.T) {
	pg := Nova[string](nil, Paginacao{Limit: 50}, 0)

	if pg.Items == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if pg.Pages != 0 {
		t.Fatalf("expected 0 pages, got %d", pg.Pages)
	}
	if pg.Page != 1 {
		t.Fatalf("expected page 1, got %d", pg.Page)
	}
}
