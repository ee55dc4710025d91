package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/wba6/secure-signer/internal/domain/keys"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyPairService keys.KeyPairService,
	signingService keys.SigningService) {

	v1 := r.Group(BasePath)

	// Keys Routes
	keyHandler := NewKeyHandler(keyPairService)
	v1.POST("/keys", keyHandler.Generate)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	// Signing Routes
	signingHandler := NewSigningHandler(signingService)
	v1.POST("/keys/:id/sign", signingHandler.Sign)
	v1.POST("/keys/:id/verify", signingHandler.Verify)
	v1.POST("/keys/:id/encrypt", signingHandler.Encrypt)
	v1.POST("/keys/:id/decrypt", signingHandler.Decrypt)
	v1.GET("/keys/:id/signatures", signingHandler.ListSignatures)
}
