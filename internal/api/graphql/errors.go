package graphql

import (
	"context"
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-partner-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
)

// ErrorPresenter renders resolver errors with the same codes the REST API uses
func ErrorPresenter(ctx context.Context, err error) *gqlerror.Error {
	var gqlErr *gqlerror.Error
	if !errors.As(err, &gqlErr) {
		gqlErr = &gqlerror.Error{
			Message: err.Error(),
		}
	}

	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		// Query validation errors come from the parser and carry no APIError
		if gqlErr.Rule != "" || gqlErr.Unwrap() == nil {
			return gqlErr
		}
		return handleInternalError(ctx, gqlErr, err)
	}

	switch apiErr.Code {
	case apierrors.ErrCodeInternalError, apierrors.ErrCodeServiceError, apierrors.ErrCodeDatabaseError:
		return handleInternalError(ctx, gqlErr, err)
	}

	gqlErr.Message = apiErr.Message
	gqlErr.Extensions = map[string]interface{}{
		"code":    string(apiErr.Code),
		"message": apiErr.Message,
	}
	if apiErr.Details != "" {
		gqlErr.Extensions["details"] = apiErr.Details
	}
	return gqlErr
}

// handleInternalError logs the cause and hides it from the caller
func handleInternalError(ctx context.Context, gqlErr *gqlerror.Error, err error) *gqlerror.Error {
	logger.ErrorCtx(ctx, err, zap.String("error", "Unhandled GraphQL error"))
	return &gqlerror.Error{
		Message: "Internal server error",
		Path:    gqlErr.Path,
		Extensions: map[string]interface{}{
			"code":    string(apierrors.ErrCodeInternalError),
			"message": "Internal server error",
		},
	}
}

// RecoverFunc handles panics in resolvers
func RecoverFunc(ctx context.Context, err interface{}) error {
	logger.ErrorCtx(ctx, fmt.Errorf("panic: %v", err), zap.Any("panic", err))
	return apierrors.NewInternalError("Internal server error")
}
