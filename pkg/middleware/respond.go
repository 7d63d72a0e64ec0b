package middleware

import (
	"context"
	"net/http"

	apperrors "wanderbook/pkg/errors"
)

func RequestIDFrom(ctx context.Context) string {
	if rid := ctx.Value(RequestIDKey); rid != nil {
		if id, ok := rid.(string); ok {
			return id
		}
	}
	return ""
}

func reject(w http.ResponseWriter, appErr *apperrors.AppError) {
	apperrors.WriteError(w, appErr)
}

func tooLarge() *apperrors.AppError {
	return apperrors.New(apperrors.CodeBadRequest, "Request body too large", http.StatusRequestEntityTooLarge)
}
