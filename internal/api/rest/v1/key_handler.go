package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/keys"
)

// KeyHandler defines the interface for handling key pair operations
type KeyHandler interface {
	Generate(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyPairService keys.KeyPairService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyPairService keys.KeyPairService) KeyHandler {
	return &keyHandler{
		keyPairService: keyPairService,
	}
}

// Generate handles the POST request to generate a textbook RSA key pair
// @Summary Generate a key pair
// @Description Generate distinct primes, derive e and d, store the key files and register the key pair.
// @Tags Key
// @Produce json
// @Success 201 {object} KeyPairMetaResponse
// @Failure 500 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) Generate(ctx *gin.Context) {
	meta, err := handler.keyPairService.Generate(ctx)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error generating key pair: %v", err))
		return
	}

	publicKey, err := handler.keyPairService.LoadPublicKey(ctx, meta.ID)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error loading public key: %v", err))
		return
	}

	ctx.JSON(http.StatusCreated, newKeyPairMetaResponse(meta, publicKey))
}

// ListMetadata handles the GET request to list key pair metadata with optional query parameters
// @Summary List key pair metadata based on query parameters
// @Tags Key
// @Produce json
// @Param bitLength query int false "Prime bit length"
// @Param primalityTest query string false "fermat or miller-rabin"
// @Param dateTimeCreated query string false "Creation date lower bound (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyPairMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeyPairQuery()

	if bitLength := ctx.Query("bitLength"); len(bitLength) > 0 {
		parsed, err := strconv.ParseUint(bitLength, 10, 32)
		if err != nil {
			abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid bitLength: %s", bitLength))
			return
		}
		query.BitLength = uint32(parsed)
	}

	if primalityTest := ctx.Query("primalityTest"); len(primalityTest) > 0 {
		query.PrimalityTest = primalityTest
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err == nil {
			query.DateTimeCreated = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit, _ = strconv.Atoi(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset, _ = strconv.Atoi(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	metas, err := handler.keyPairService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, http.StatusInternalServerError, fmt.Sprintf("list query failed: %v", err))
		return
	}

	listResponse := []KeyPairMetaResponse{}
	for _, meta := range metas {
		listResponse = append(listResponse, *newKeyPairMetaResponse(meta, nil))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve key pair metadata by ID
// @Summary Retrieve key pair metadata and public key by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 200 {object} KeyPairMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	meta, err := handler.keyPairService.GetByID(ctx, keyPairID)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("key pair with id %s not found", keyPairID))
		return
	}

	publicKey, err := handler.keyPairService.LoadPublicKey(ctx, keyPairID)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error loading public key: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, newKeyPairMetaResponse(meta, publicKey))
}

// DeleteByID handles the DELETE request to remove a key pair, its key files and its signature records
// @Summary Delete a key pair by ID
// @Tags Key
// @Param id path string true "Key pair ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	if err := handler.keyPairService.DeleteByID(ctx, keyPairID); err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error deleting key pair %s: %v", keyPairID, err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func newKeyPairMetaResponse(meta *keys.KeyPairMeta, publicKey *crypto.PublicKey) *KeyPairMetaResponse {
	response := &KeyPairMetaResponse{
		ID:              meta.ID,
		Algorithm:       meta.Algorithm,
		BitLength:       meta.BitLength,
		Rounds:          meta.Rounds,
		PrimalityTest:   meta.PrimalityTest,
		ModulusBits:     meta.ModulusBits,
		Fingerprint:     meta.Fingerprint,
		DateTimeCreated: meta.DateTimeCreated,
	}
	if publicKey != nil {
		response.PublicKey = &PublicKeyResponse{
			E: publicKey.E.Text(10),
			N: publicKey.N.Text(10),
		}
	}
	return response
}
