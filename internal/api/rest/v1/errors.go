package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, keysets.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, classical.ErrInvalidInput), errors.Is(err, classical.ErrInvalidKey):
		return http.StatusBadRequest
	case errors.Is(err, classical.ErrNoInverse), errors.Is(err, classical.ErrInconsistentKey):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), ErrorResponse{Message: err.Error()})
}

func abortBadRequest(ctx *gin.Context, format string, err error) {
	var errorResponse ErrorResponse
	errorResponse.Message = format + err.Error()
	ctx.JSON(http.StatusBadRequest, errorResponse)
}
