package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a human readable status message
type InfoResponse struct {
	Message string `json:"message"`
}

// KeyMaterial selects p, q and the exponent strategy. Omitted fields use the server configuration.
type KeyMaterial struct {
	P        uint64 `json:"p,omitempty" validate:"omitempty,gt=1"`
	Q        uint64 `json:"q,omitempty" validate:"omitempty,gt=1"`
	Strategy string `json:"strategy,omitempty" validate:"omitempty,oneof=fixed coprime"`
}

func (k KeyMaterial) toKeyRequest() *toyrsa.KeyRequest {
	return &toyrsa.KeyRequest{P: k.P, Q: k.Q, Strategy: k.Strategy}
}

// DeriveKeysRequest is the body of POST /keys
type DeriveKeysRequest struct {
	KeyMaterial
}

// EncryptRequest is the body of POST /encrypt
type EncryptRequest struct {
	KeyMaterial
	Text string `json:"text" validate:"required"`
}

// DecryptRequest is the body of POST /decrypt
type DecryptRequest struct {
	KeyMaterial
	Ciphertext string `json:"ciphertext" validate:"required"`
}

// KeyStateResponse describes a derived key. D is -1 when e has no inverse modulo phi.
type KeyStateResponse struct {
	P         uint64 `json:"p"`
	Q         uint64 `json:"q"`
	N         uint64 `json:"n"`
	Phi       uint64 `json:"phi"`
	E         uint64 `json:"e"`
	D         int64  `json:"d"`
	PublicKey string `json:"public_key"`
}

// EncryptResponse is returned by POST /encrypt
type EncryptResponse struct {
	ID         string `json:"id,omitempty"`
	Ciphertext string `json:"ciphertext"`
	Artifact   string `json:"artifact"`
	N          uint64 `json:"n"`
	E          uint64 `json:"e"`
}

// DecryptResponse is returned by POST /decrypt
type DecryptResponse struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
	N    uint64 `json:"n"`
	E    uint64 `json:"e"`
}

// ArtifactMetaResponse describes one entry of the artifact history
type ArtifactMetaResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"date_time_created"`
	Operation       string    `json:"operation"`
	Source          string    `json:"source"`
	Destination     string    `json:"destination,omitempty"`
	Units           int       `json:"units"`
	Modulus         uint64    `json:"modulus"`
	PublicExponent  uint64    `json:"public_exponent"`
	Strategy        string    `json:"strategy"`
}

func newKeyStateResponse(ks *toyrsa.KeyState) KeyStateResponse {
	return KeyStateResponse{
		P:         ks.P,
		Q:         ks.Q,
		N:         ks.N,
		Phi:       ks.Phi,
		E:         ks.E,
		D:         ks.D,
		PublicKey: ks.PublicKey(),
	}
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// Validate for validating DeriveKeysRequest struct
func (r *DeriveKeysRequest) Validate() error { return validateStruct(r) }

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error { return validateStruct(r) }

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error { return validateStruct(r) }
