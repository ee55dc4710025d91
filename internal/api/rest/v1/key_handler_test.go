//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/keys"
)

func testKeyPairMeta() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              "abc-123",
		Algorithm:       "RSA",
		BitLength:       256,
		Rounds:          64,
		PrimalityTest:   "fermat",
		ModulusBits:     512,
		Fingerprint:     "f00d",
		KeyDir:          "keys/abc-123",
		DateTimeCreated: time.Now(),
	}
}

func testPublicKey() *crypto.PublicKey {
	return &crypto.PublicKey{E: big.NewInt(17), N: big.NewInt(3233)}
}

func TestKeyHandler_Generate_Success(t *testing.T) {
	mockKeyPairService := new(MockKeyPairService)
	handler := NewKeyHandler(mockKeyPairService)

	mockKeyPairService.On("Generate", mock.Anything).Return(testKeyPairMeta(), nil)
	mockKeyPairService.On("LoadPublicKey", mock.Anything, "abc-123").Return(testPublicKey(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response KeyPairMetaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "abc-123", response.ID)
	require.NotNil(t, response.PublicKey)
	assert.Equal(t, "17", response.PublicKey.E)
	assert.Equal(t, "3233", response.PublicKey.N)
	assert.NotContains(t, w.Body.String(), "keys/abc-123", "key directory must not leak")
	mockKeyPairService.AssertExpectations(t)
}

func TestKeyHandler_Generate_Failure(t *testing.T) {
	mockKeyPairService := new(MockKeyPairService)
	handler := NewKeyHandler(mockKeyPairService)

	mockKeyPairService.On("Generate", mock.Anything).Return(nil, fmt.Errorf("no prime: %w", crypto.ErrGenerationFailed))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error generating key pair")
}

func TestKeyHandler_ListMetadata_Success(t *testing.T) {
	mockKeyPairService := new(MockKeyPairService)
	handler := NewKeyHandler(mockKeyPairService)

	mockKeyPairService.
		On("List", mock.Anything, mock.MatchedBy(func(q *keys.KeyPairQuery) bool {
			return q.BitLength == 256 && q.Limit == 5 && q.SortBy == "date_time_created"
		})).
		Return([]*keys.KeyPairMeta{testKeyPairMeta()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys?bitLength=256&limit=5&sortBy=date_time_created", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	mockKeyPairService.AssertExpectations(t)
}

func TestKeyHandler_ListMetadata_InvalidQuery(t *testing.T) {
	mockKeyPairService := new(MockKeyPairService)
	handler := NewKeyHandler(mockKeyPairService)

	for _, url := range []string{"/keys?bitLength=abc", "/keys?bitLength=100", "/keys?sortBy=fingerprint", "/keys?primalityTest=aks"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", url, nil)

		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.ListMetadata(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
	mockKeyPairService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestKeyHandler_GetMetadataByID_Success(t *testing.T) {
	mockKeyPairService := new(MockKeyPairService)
	handler := NewKeyHandler(mockKeyPairService)

	mockKeyPairService.On("GetByID", mock.Anything, "abc-123").Return(testKeyPairMeta(), nil)
	mockKeyPairService.On("LoadPublicKey", mock.Anything, "abc-123").Return(testPublicKey(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"n":"3233"`)
	mockKeyPairService.AssertExpectations(t)
}

func TestKeyHandler_GetMetadataByID_NotFound(t *testing.T) {
	mockKeyPairService := new(MockKeyPairService)
	handler := NewKeyHandler(mockKeyPairService)

	mockKeyPairService.On("GetByID", mock.Anything, "missing").Return(nil, fmt.Errorf("lookup: %w", keys.ErrKeyPairNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "key pair with id missing not found")
}

func TestKeyHandler_DeleteByID(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Success", nil, http.StatusNoContent},
		{"NotFound", keys.ErrKeyPairNotFound, http.StatusNotFound},
		{"FilesystemFailure", crypto.ErrIO, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockKeyPairService := new(MockKeyPairService)
			handler := NewKeyHandler(mockKeyPairService)

			mockKeyPairService.On("DeleteByID", mock.Anything, "abc-123").Return(tt.err)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("DELETE", "/keys/abc-123", nil)

			c, _ := gin.CreateTestContext(w)
			c.Request = req
			c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

			handler.DeleteByID(c)

			assert.Equal(t, tt.status, c.Writer.Status())
			mockKeyPairService.AssertExpectations(t)
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{keys.ErrKeyPairNotFound, http.StatusNotFound},
		{crypto.ErrMessageTooLarge, http.StatusUnprocessableEntity},
		{crypto.ErrInvalidEncoding, http.StatusBadRequest},
		{crypto.ErrMalformedSignedContent, http.StatusBadRequest},
		{crypto.ErrInvalidKey, http.StatusBadRequest},
		{crypto.ErrGenerationFailed, http.StatusInternalServerError},
		{crypto.ErrNoModularInverse, http.StatusBadRequest},
		{crypto.ErrIO, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, statusFor(fmt.Errorf("wrapped: %w", tt.err)), tt.err.Error())
	}
}
