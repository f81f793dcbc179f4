package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, artifacts.ErrArtifactNotFound):
		return http.StatusNotFound
	case errors.Is(err, toyrsa.ErrNoPrivateKey):
		return http.StatusUnprocessableEntity
	case errors.Is(err, toyrsa.ErrInvalidKeyMaterial),
		errors.Is(err, toyrsa.ErrDegenerateTotient),
		errors.Is(err, toyrsa.ErrUnknownStrategy),
		errors.Is(err, toyrsa.ErrEmptyInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
