package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serp-response/serp-backend/internal/pkg/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondServiceError maps the service error taxonomy onto HTTP statuses.
func RespondServiceError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.Status != 0:
		RespondError(c, apiErr.Status, apiErr.Code, err)
	case errors.Is(err, apierr.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apierr.ErrValidation):
		RespondError(c, http.StatusUnprocessableEntity, "validation_error", err)
	case errors.Is(err, apierr.ErrConflict):
		RespondError(c, http.StatusConflict, "conflict", err)
	case errors.Is(err, apierr.ErrGateway):
		RespondError(c, http.StatusBadGateway, "gateway_error", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
