package toyrsa

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeyRequest selects key material for one workflow. Zero fields fall back to
// the configured defaults of the serving KeyService.
type KeyRequest struct {
	P        uint64 `json:"p" validate:"omitempty,gt=1"`
	Q        uint64 `json:"q" validate:"omitempty,gt=1"`
	Strategy string `json:"strategy" validate:"omitempty,oneof=fixed coprime"`
}

// Validate for validating KeyRequest struct
func (r *KeyRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// EncryptionResult is the outcome of one encryption run.
type EncryptionResult struct {
	ArtifactID string
	Ciphertext string
	Artifact   string
	Keys       KeyState
	Strategy   ExponentStrategy
	Units      int
}

// DecryptionResult is the outcome of one decryption run.
type DecryptionResult struct {
	ArtifactID string
	Plaintext  []byte
	Keys       KeyState
	Strategy   ExponentStrategy
	Units      int
}

// KeyService derives key states and hands out independent key sessions.
type KeyService interface {
	// Derive returns the key state for req, reusing earlier derivations of the same key material.
	Derive(ctx context.Context, req *KeyRequest) (*KeyState, error)

	// Session returns a new KeySession owned by the caller.
	Session(ctx context.Context, req *KeyRequest) (*KeySession, error)
}

// EncryptionService encrypts plaintext into annotated ciphertext artifacts.
type EncryptionService interface {
	// EncryptFile encrypts inputPath and writes the artifact to outputPath.
	// An empty input file yields ErrEmptyInput and nothing is written.
	EncryptFile(ctx context.Context, req *KeyRequest, inputPath, outputPath string) (*EncryptionResult, error)

	// EncryptText encrypts plaintext held in memory.
	EncryptText(ctx context.Context, req *KeyRequest, plaintext []byte) (*EncryptionResult, error)
}

// DecryptionService decrypts ciphertext artifacts. Keys are always re-derived
// from the request or configuration; the artifact's public key line is ignored.
type DecryptionService interface {
	// DecryptFile decrypts inputPath. The plaintext is written to outputPath unless it is empty.
	DecryptFile(ctx context.Context, req *KeyRequest, inputPath, outputPath string) (*DecryptionResult, error)

	// DecryptText decrypts ciphertext held in memory.
	DecryptText(ctx context.Context, req *KeyRequest, ciphertext string) (*DecryptionResult, error)
}
