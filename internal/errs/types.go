package errs

import "net/http"

func newHTTPError(status int, detail string) *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Detail: detail,
		Status: status,
	}
}

func NewBadRequestError(detail string) *HTTPError {
	return newHTTPError(http.StatusBadRequest, detail)
}

func NewNotFoundError(detail string) *HTTPError {
	return newHTTPError(http.StatusNotFound, detail)
}

func NewConflictError(detail string) *HTTPError {
	return newHTTPError(http.StatusConflict, detail)
}

func NewMethodNotAllowedError() *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed, "Método não permitido")
}

func NewTooManyRequestsError() *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, "Muitas requisições, tente novamente em instantes")
}

// NewValidationError é a resposta 422 com o detalhe por campo.
func NewValidationError(detail string, fields []FieldError) *HTTPError {
	e := newHTTPError(http.StatusUnprocessableEntity, detail)
	e.Errors = fields
	return e
}

// NewInternalServerError nunca carrega a mensagem original: o erro de
// armazenamento fica só no log.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, "Erro interno do servidor")
}

func NewServiceUnavailableError(detail string) *HTTPError {
	return newHTTPError(http.StatusServiceUnavailable, detail)
}
