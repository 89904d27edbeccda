package validacao

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/KromaEnergia/api-atletas/internal/errs"
	"github.com/go-playground/validator/v10"
)

const MensagemFalha = "Falha de validação"

var (
	once     sync.Once
	validate *validator.Validate
)

// validador devolve a instância compartilhada; os campos são reportados pelo
// nome da tag json.
func validador() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(fld.Name)
			}
			return name
		})
	})
	return validate
}

// Validar aplica as tags de validação de v. Devolve nil ou um *errs.HTTPError
// 422 com o detalhe de cada campo.
func Validar(v any) error {
	err := validador().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.NewValidationError(MensagemFalha, nil)
	}

	return errs.NewValidationError(MensagemFalha, camposComErro(verrs))
}

func camposComErro(verrs validator.ValidationErrors) []errs.FieldError {
	fields := make([]errs.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, errs.FieldError{
			Field: fe.Field(),
			Error: mensagem(fe),
		})
	}
	return fields
}

func mensagem(fe validator.FieldError) string {
	ehTexto := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "len":
		if ehTexto {
			return fmt.Sprintf("deve ter exatamente %s caracteres", fe.Param())
		}
		return fmt.Sprintf("deve ter tamanho %s", fe.Param())
	case "min":
		if ehTexto {
			return fmt.Sprintf("deve ter pelo menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
	case "max":
		if ehTexto {
			return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("deve ser no máximo %s", fe.Param())
	case "numeric":
		return "deve conter apenas dígitos"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}
}
