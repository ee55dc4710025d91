package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/keys"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, keys.ErrKeyPairNotFound):
		return http.StatusNotFound
	case errors.Is(err, crypto.ErrMessageTooLarge):
		return http.StatusUnprocessableEntity
	// exhausted resampling is a server fault even though it wraps ErrDomain
	case errors.Is(err, crypto.ErrGenerationFailed):
		return http.StatusInternalServerError
	case errors.Is(err, crypto.ErrEncoding), errors.Is(err, crypto.ErrDomain):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
