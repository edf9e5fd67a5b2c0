package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolapi/internal/app/models/dto"
	"schoolapi/internal/pkg/apperrors"
	"schoolapi/internal/pkg/logger"
)

// HandleAPIError maps domain failures to their HTTP responses. All route
// handlers funnel service errors through here so the status/body contract
// lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		// Not-found responses carry an empty body
		c.Status(http.StatusNotFound)
		return
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Credenciais inválidas"))
		return
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse(apperrors.Message(err, "Requisição inválida")))
		return
	case errors.Is(err, apperrors.ErrCourseTitleExists):
		c.JSON(http.StatusConflict, dto.NewMessageResponse("Já existe um curso com esse título"))
		return
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewMessageResponse("E-mail já cadastrado"))
		return
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		c.JSON(http.StatusConflict, dto.NewMessageResponse("Usuário já matriculado neste curso"))
		return
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewMessageResponse("Acesso negado"))
		return
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewMessageResponse("Erro interno do servidor"))
		return
	}
}
