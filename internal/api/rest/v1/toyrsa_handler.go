package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"

	"github.com/gin-gonic/gin"
)

// ToyRSAHandler defines the interface for key derivation, encryption and decryption
type ToyRSAHandler interface {
	DeriveKeys(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

// toyRSAHandler struct holds the services. Every request gets its own key session.
type toyRSAHandler struct {
	keyService        toyrsa.KeyService
	encryptionService toyrsa.EncryptionService
	decryptionService toyrsa.DecryptionService
}

// NewToyRSAHandler creates a new ToyRSAHandler
func NewToyRSAHandler(keyService toyrsa.KeyService, encryptionService toyrsa.EncryptionService, decryptionService toyrsa.DecryptionService) ToyRSAHandler {
	return &toyRSAHandler{
		keyService:        keyService,
		encryptionService: encryptionService,
		decryptionService: decryptionService,
	}
}

// DeriveKeys handles the POST request to derive a toy RSA key state
// @Summary Derive n, phi, e and d from p and q
// @Tags ToyRSA
// @Accept json
// @Produce json
// @Param requestBody body DeriveKeysRequest false "Key material"
// @Success 200 {object} KeyStateResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *toyRSAHandler) DeriveKeys(ctx *gin.Context) {
	var request DeriveKeysRequest

	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key data: %v", err.Error())})
			return
		}
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ks, err := handler.keyService.Derive(ctx, request.toKeyRequest())
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error deriving keys: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newKeyStateResponse(ks))
}

// Encrypt handles the POST request to encrypt text
// @Summary Encrypt text byte by byte
// @Tags ToyRSA
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Plaintext and optional key material"
// @Success 201 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *toyRSAHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid encryption request: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	result, err := handler.encryptionService.EncryptText(ctx, request.toKeyRequest(), []byte(request.Text))
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error encrypting text: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, EncryptResponse{
		ID:         result.ArtifactID,
		Ciphertext: result.Ciphertext,
		Artifact:   result.Artifact,
		N:          result.Keys.N,
		E:          result.Keys.E,
	})
}

// Decrypt handles the POST request to decrypt ciphertext
// @Summary Decrypt space separated ciphertext; a trailing public key line is ignored
// @Tags ToyRSA
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Ciphertext and optional key material"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *toyRSAHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid decryption request: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	result, err := handler.decryptionService.DecryptText(ctx, request.toKeyRequest(), request.Ciphertext)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error decrypting text: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{
		ID:   result.ArtifactID,
		Text: string(result.Plaintext),
		N:    result.Keys.N,
		E:    result.Keys.E,
	})
}
