package rest

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-partner-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondAPIError(c, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondAPIError(c, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	respondAPIError(c, apierrors.NewValidationError(message))
}

// respondError responds with the status carried by err.
// Errors that are not APIErrors become internal errors.
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError(message, err.Error())
	}

	if apiErr.Status() >= 500 {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	respondAPIError(c, apiErr)
}

func respondAPIError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.Status(), apiErr)
}
