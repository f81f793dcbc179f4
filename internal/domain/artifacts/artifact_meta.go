package artifacts

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Operations recorded for an artifact
const (
	OperationEncryption = "encryption"
	OperationDecryption = "decryption"
)

// ArtifactMeta entity
type ArtifactMeta struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	Operation       string    `validate:"required,oneof=encryption decryption"`
	Source          string    `validate:"required,min=1,max=255"`
	Destination     string    `validate:"omitempty,max=255"`
	Units           int       `validate:"min=0"`
	Modulus         uint64    `validate:"required"`
	PublicExponent  uint64    `validate:"required"`
	Strategy        string    `validate:"required,oneof=fixed coprime"`
}

// Validate for validating ArtifactMeta struct
func (a *ArtifactMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
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

// ArtifactQuery filters, sorts and pages artifact history
type ArtifactQuery struct {
	Operation       string    `validate:"omitempty,oneof=encryption decryption"`
	Strategy        string    `validate:"omitempty,oneof=fixed coprime"`
	Source          string    `validate:"omitempty,max=255"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit     int    `validate:"omitempty,gt=0"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created units source operation"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewArtifactQuery returns an unfiltered query
func NewArtifactQuery() *ArtifactQuery {
	return &ArtifactQuery{}
}

// Validate for validating ArtifactQuery struct
func (q *ArtifactQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
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
