package toyrsa

import "errors"

var (
	// ErrInvalidKeyMaterial is returned when p or q is rejected (not prime, zero or too large).
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrDegenerateTotient is returned when no public exponent can be searched below phi.
	ErrDegenerateTotient = errors.New("degenerate totient")

	// ErrNoPrivateKey is returned by strict decryption when e has no inverse modulo phi.
	ErrNoPrivateKey = errors.New("no private key: e has no inverse modulo phi")

	// ErrUnknownStrategy is returned for an unrecognised exponent strategy name.
	ErrUnknownStrategy = errors.New("unknown exponent strategy")

	// ErrEmptyInput signals that there is nothing to encrypt or decrypt.
	ErrEmptyInput = errors.New("empty input")

	// ErrFileNotFound is returned when an input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrAccessDenied is returned when an input file cannot be read.
	ErrAccessDenied = errors.New("access denied")

	// ErrWriteError is returned when an output file cannot be written.
	ErrWriteError = errors.New("write error")
)
