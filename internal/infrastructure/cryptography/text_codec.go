package cryptography

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
)

// PublicKeyLabel prefixes the public key annotation written below the ciphertext.
const PublicKeyLabel = "Public key: "

type textCodec struct{}

// NewTextCodec creates the space separated decimal codec
func NewTextCodec() toyrsa.TextCodec {
	return &textCodec{}
}

// Encode encrypts each byte of data independently, in order.
func (c *textCodec) Encode(data []byte, cipher toyrsa.UnitCipher) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(cipher.Encrypt(uint64(b)), 10))
	}
	return sb.String()
}

// Decode decrypts whitespace separated decimal units. Reading stops at the first
// character that cannot continue a number; a token such as "12abc" still yields 12.
// Each decrypted unit keeps its low byte.
func (c *textCodec) Decode(text string, cipher toyrsa.UnitCipher) ([]byte, error) {
	fields := strings.Fields(text)
	out := make([]byte, 0, len(fields))
	for i, field := range fields {
		digits := leadingDigits(field)
		unit, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			break
		}
		m, err := cipher.Decrypt(unit)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt unit %d: %w", i, err)
		}
		out = append(out, byte(m))
		if len(digits) < len(field) {
			break
		}
	}
	return out, nil
}

func leadingDigits(token string) string {
	end := strings.IndexFunc(token, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		return token
	}
	return token[:end]
}

// Annotate appends the public key line. The line is documentation only and is
// never read back when decrypting.
func (c *textCodec) Annotate(encoded string, ks toyrsa.KeyState) string {
	return encoded + "\n" + PublicKeyLabel + ks.PublicKey()
}
