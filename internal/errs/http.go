// Package errs define o corpo de erro único devolvido pela API.
//
// Todo erro chega ao cliente como JSON:
//
//	{"code": "NOT_FOUND", "detail": "Atleta não encontrado", "status": 404}
//
// com a lista "errors" preenchida quando a falha é de validação de campos.
package errs

import (
	"encoding/json"
	"net/http"
	"strings"
)

// FieldError é a falha de um campo do payload.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type HTTPError struct {
	Code   string       `json:"code"`
	Detail string       `json:"detail"`
	Status int          `json:"status"`
	Errors []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// Write grava o erro como JSON na resposta.
func (e *HTTPError) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
