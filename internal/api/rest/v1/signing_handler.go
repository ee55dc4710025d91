package v1

import (
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/keys"
)

// MaxContentSize bounds the content accepted by sign and verify
const MaxContentSize = 32 << 20

// SigningHandler defines the interface for RSA operations on registered key pairs
type SigningHandler interface {
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	ListSignatures(ctx *gin.Context)
}

type signingHandler struct {
	signingService keys.SigningService
}

// NewSigningHandler creates a new SigningHandler
func NewSigningHandler(signingService keys.SigningService) SigningHandler {
	return &signingHandler{
		signingService: signingService,
	}
}

// Sign handles the POST request to sign content with a key pair
// @Summary Sign content
// @Description Returns the content followed by its fixed-width hex signature. The content is read from the multipart field "file" or from the raw body.
// @Tags Signing
// @Accept mpfd,octet-stream
// @Produce octet-stream
// @Param id path string true "Key pair ID"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/{id}/sign [post]
func (handler *signingHandler) Sign(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	fileName, content, err := readContent(ctx)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid content: %v", err))
		return
	}

	signed, err := handler.signingService.Sign(ctx, keyPairID, fileName, content)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error signing content: %v", err))
		return
	}

	if fileName != "" {
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName+crypto.SignedFileExtension))
	}
	ctx.Data(http.StatusOK, "application/octet-stream", signed)
}

// Verify handles the POST request to verify signed content
// @Summary Verify signed content
// @Tags Signing
// @Accept mpfd,octet-stream
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/verify [post]
func (handler *signingHandler) Verify(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	_, signed, err := readContent(ctx)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid content: %v", err))
		return
	}

	valid, err := handler.signingService.Verify(ctx, keyPairID, signed)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error verifying content: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}

// Encrypt handles the POST request to encrypt a hex message representative
// @Summary Encrypt a message
// @Tags Signing
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body EncryptRequest true "Message"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *signingHandler) Encrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	cipher, err := handler.signingService.Encrypt(ctx, keyPairID, request.MessageHex)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error encrypting message: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Cipher: cipher.Text(10)})
}

// Decrypt handles the POST request to decrypt a decimal cipher
// @Summary Decrypt a cipher
// @Tags Signing
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body DecryptRequest true "Cipher"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *signingHandler) Decrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	cipher, ok := new(big.Int).SetString(request.Cipher, 10)
	if !ok {
		abortWithError(ctx, http.StatusBadRequest, "cipher must be a decimal integer")
		return
	}

	messageHex, err := handler.signingService.Decrypt(ctx, keyPairID, cipher)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error decrypting cipher: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{MessageHex: messageHex})
}

// ListSignatures handles the GET request to list the signatures recorded for a key pair
// @Summary List recorded signatures
// @Tags Signing
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 200 {array} SignatureResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/signatures [get]
func (handler *signingHandler) ListSignatures(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	records, err := handler.signingService.ListSignatures(ctx, keyPairID)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error listing signatures: %v", err))
		return
	}

	listResponse := []SignatureResponse{}
	for _, record := range records {
		listResponse = append(listResponse, SignatureResponse{
			ID:              record.ID,
			KeyPairID:       record.KeyPairID,
			FileName:        record.FileName,
			Digest:          record.Digest,
			Signature:       record.Signature,
			DateTimeCreated: record.DateTimeCreated,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// readContent returns the multipart "file" field when present, otherwise the raw body
func readContent(ctx *gin.Context) (string, []byte, error) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxContentSize)

	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			return "", nil, err
		}

		file, err := fileHeader.Open()
		if err != nil {
			return "", nil, err
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			return "", nil, err
		}
		return fileHeader.Filename, content, nil
	}

	content, err := ctx.GetRawData()
	if err != nil {
		return "", nil, err
	}
	return "", content, nil
}
