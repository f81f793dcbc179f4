//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"
	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/config"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptFile_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		request  *toyrsa.KeyRequest
		content  string
		modulus  uint64
		exponent uint64
	}{
		{"fixed reference key", nil, "Hello, World!\n", 3233, 17},
		{"smallest coprime", &toyrsa.KeyRequest{Strategy: "coprime"}, "toy rsa", 3233, 7},
		{"other primes", &toyrsa.KeyRequest{P: 11, Q: 13}, "abc", 143, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := SetupTestServices(t, config.SqliteDbType)
			ctx := context.Background()

			input := testutil.WriteTempFile(t, "input.txt", []byte(tt.content))
			encrypted := filepath.Join(t.TempDir(), "encrypted.txt")
			decrypted := filepath.Join(t.TempDir(), "decrypted.txt")

			encResult, err := svc.EncryptionService.EncryptFile(ctx, tt.request, input, encrypted)
			require.NoError(t, err)
			assert.Equal(t, tt.modulus, encResult.Keys.N)
			assert.Equal(t, tt.exponent, encResult.Keys.E)

			_, err = svc.DecryptionService.DecryptFile(ctx, tt.request, encrypted, decrypted)
			require.NoError(t, err)

			got, err := os.ReadFile(decrypted)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(got))

			history, err := svc.ArtifactService.List(ctx, nil)
			require.NoError(t, err)
			require.Len(t, history, 2)
			assert.Equal(t, artifacts.OperationEncryption, history[0].Operation)
			assert.Equal(t, artifacts.OperationDecryption, history[1].Operation)
		})
	}
}

func TestEncryptFile_EmptyInput(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	input := testutil.WriteTempFile(t, "empty.txt", nil)
	output := filepath.Join(t.TempDir(), "encrypted.txt")

	_, err := svc.EncryptionService.EncryptFile(ctx, nil, input, output)
	assert.True(t, errors.Is(err, toyrsa.ErrEmptyInput))

	_, statErr := os.Stat(output)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))

	history, err := svc.ArtifactService.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestArtifactService_GetAndDelete(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	result, err := svc.EncryptionService.EncryptText(ctx, nil, []byte("AB"))
	require.NoError(t, err)

	meta, err := svc.ArtifactService.GetByID(ctx, result.ArtifactID)
	require.NoError(t, err)
	assert.Equal(t, SourceInline, meta.Source)
	assert.Equal(t, 2, meta.Units)

	require.NoError(t, svc.ArtifactService.DeleteByID(ctx, result.ArtifactID))
	_, err = svc.ArtifactService.GetByID(ctx, result.ArtifactID)
	assert.True(t, errors.Is(err, artifacts.ErrArtifactNotFound))
}

func TestKeyService_CachesAcrossWorkflows(t *testing.T) {
	svc := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := svc.EncryptionService.EncryptText(ctx, nil, []byte("A"))
	require.NoError(t, err)
	_, err = svc.DecryptionService.DecryptText(ctx, nil, "2790")
	require.NoError(t, err)

	assert.Equal(t, 1, svc.KeyCache.Len())
}
