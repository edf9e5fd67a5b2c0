package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// BindingErrorMessage converts a binding/validation failure into the
// user-facing message for the 400 response body.
func BindingErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return formatValidationError(validationErrors[0])
	}
	return "Requisição inválida"
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		switch e.Field() {
		case "Title":
			return "Título é obrigatório"
		case "Name":
			return "Nome é obrigatório"
		case "Email":
			return "Email é obrigatório"
		case "Password":
			return "Senha é obrigatória"
		}
		return e.Field() + " é obrigatório"
	case "email":
		return "Email inválido"
	case "min":
		if e.Field() == "Password" {
			return "A senha deve ter no mínimo " + e.Param() + " caracteres"
		}
		return e.Field() + " deve ter no mínimo " + e.Param() + " caracteres"
	default:
		return "Requisição inválida"
	}
}
