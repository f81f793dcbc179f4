//go:build unit
// +build unit

package cryptography

import (
	"errors"
	"strings"
	"testing"

	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextCodec(t *testing.T) {
	codec := NewTextCodec()
	session, err := toyrsa.NewKeySession(setupEngine(t, nil), TestPrimeP, TestPrimeQ)
	require.NoError(t, err)

	t.Run("EncodeAB", func(t *testing.T) {
		encoded := codec.Encode([]byte("AB"), session)
		assert.Equal(t, "2790 524", encoded)

		decoded, err := codec.Decode(encoded, session)
		require.NoError(t, err)
		assert.Equal(t, []byte("AB"), decoded)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Equal(t, "", codec.Encode(nil, session))

		decoded, err := codec.Decode("", session)
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})

	t.Run("AllBytesRoundTrip", func(t *testing.T) {
		data := make([]byte, 256)
		for i := range data {
			data[i] = byte(i)
		}

		decoded, err := codec.Decode(codec.Encode(data, session), session)
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	})

	t.Run("AnnotationIsIgnoredWhenDecoding", func(t *testing.T) {
		artifact := codec.Annotate(codec.Encode([]byte("Hi\n"), session), session.State())
		assert.True(t, strings.HasSuffix(artifact, "\nPublic key: 3233, 17"))

		decoded, err := codec.Decode(artifact, session)
		require.NoError(t, err)
		assert.Equal(t, []byte("Hi\n"), decoded)
	})

	t.Run("StopsAtFirstNonInteger", func(t *testing.T) {
		decoded, err := codec.Decode("2790 garbage 524", session)
		require.NoError(t, err)
		assert.Equal(t, []byte("A"), decoded)
	})

	t.Run("ReadsLeadingDigitsOfMixedToken", func(t *testing.T) {
		decoded, err := codec.Decode("2790 524abc 2790", session)
		require.NoError(t, err)
		assert.Equal(t, []byte("AB"), decoded)
	})

	t.Run("StopsAtSignedToken", func(t *testing.T) {
		decoded, err := codec.Decode("2790 -5 524", session)
		require.NoError(t, err)
		assert.Equal(t, []byte("A"), decoded)
	})

	t.Run("ToleratesExtraWhitespace", func(t *testing.T) {
		decoded, err := codec.Decode("  2790\t\t524 \n", session)
		require.NoError(t, err)
		assert.Equal(t, []byte("AB"), decoded)
	})

	t.Run("StrictDecodeWithoutPrivateKey", func(t *testing.T) {
		strict := setupEngine(t, func(o *EngineOptions) { o.StrictPrivateKey = true })
		broken := toyrsa.NewKeySessionWithState(strict, toyrsa.NewKeyState(3, 5, 4, toyrsa.NoInverse))

		_, err := codec.Decode("7 8", broken)
		assert.True(t, errors.Is(err, toyrsa.ErrNoPrivateKey))
	})
}
