//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/toy-rsa/internal/pkg/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes args against a fresh root command and returns what the handler printed
func runCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	handler := newToyRSACommandHandler(strings.NewReader(stdin), &out, testutil.SetupTestLogger(t))

	rootCmd := &cobra.Command{Use: "toy-rsa-cli"}
	registerToyRSACommands(rootCmd, handler)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())

	return out.String()
}

func TestDeriveKeysCmd(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		out := runCLI(t, "", "derive-keys")

		assert.Contains(t, out, "n = 3233\n")
		assert.Contains(t, out, "phi = 3120\n")
		assert.Contains(t, out, "e = 17\n")
		assert.Contains(t, out, "d = 2753\n")
		assert.Contains(t, out, "Public key: 3233, 17")
	})

	t.Run("coprime strategy", func(t *testing.T) {
		out := runCLI(t, "", "derive-keys", "--strategy", "coprime")

		assert.Contains(t, out, "e = 7\n")
		assert.Contains(t, out, "d = 1783\n")
	})

	t.Run("fixed exponent without inverse", func(t *testing.T) {
		out := runCLI(t, "", "derive-keys", "--p", "103")

		assert.Contains(t, out, "n = 5459\n")
		assert.Contains(t, out, "d = -1\n")
	})

	t.Run("composite prime prints nothing", func(t *testing.T) {
		out := runCLI(t, "", "derive-keys", "--p", "60")
		assert.Empty(t, out)
	})

	t.Run("prime above max-prime prints nothing", func(t *testing.T) {
		out := runCLI(t, "", "derive-keys", "--p", "10009")
		assert.Empty(t, out)
	})

	t.Run("max-prime can be lifted", func(t *testing.T) {
		out := runCLI(t, "", "derive-keys", "--p", "10009", "--max-prime", "0")
		assert.Contains(t, out, "n = 530477\n")
	})

	t.Run("unknown strategy prints nothing", func(t *testing.T) {
		out := runCLI(t, "", "derive-keys", "--strategy", "random")
		assert.Empty(t, out)
	})
}

func TestEncryptCmd(t *testing.T) {
	inputFile := testutil.WriteTempFile(t, "plain.txt", []byte("AB"))
	outputFile := filepath.Join(t.TempDir(), "encrypted.txt")

	out := runCLI(t, "", "encrypt", "--input-file", inputFile, "--output-file", outputFile)

	assert.Contains(t, out, "Public key: 3233, 17")
	assert.Contains(t, out, outputFile)

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "2790 524\nPublic key: 3233, 17", string(content))
}

func TestEncryptCmd_PromptsForInput(t *testing.T) {
	inputFile := testutil.WriteTempFile(t, "plain.txt", []byte("AB"))
	outputFile := filepath.Join(t.TempDir(), "encrypted.txt")

	out := runCLI(t, inputFile+"\n", "encrypt", "--output-file", outputFile)

	assert.Contains(t, out, "File to encrypt: ")
	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "2790 524\n"))
}

func TestEncryptCmd_CancelledPrompt(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "encrypted.txt")

	out := runCLI(t, "\n", "encrypt", "--output-file", outputFile)

	assert.Equal(t, "File to encrypt: ", out)
	_, err := os.Stat(outputFile)
	assert.True(t, os.IsNotExist(err))
}

func TestEncryptCmd_EmptyInput(t *testing.T) {
	inputFile := testutil.WriteTempFile(t, "empty.txt", nil)
	outputFile := filepath.Join(t.TempDir(), "encrypted.txt")

	out := runCLI(t, "", "encrypt", "--input-file", inputFile, "--output-file", outputFile)

	assert.Empty(t, out)
	_, err := os.Stat(outputFile)
	assert.True(t, os.IsNotExist(err))
}

func TestEncryptCmd_MissingInput(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "encrypted.txt")

	out := runCLI(t, "", "encrypt", "--input-file", filepath.Join(t.TempDir(), "missing.txt"), "--output-file", outputFile)

	assert.Empty(t, out)
}

func TestDecryptCmd(t *testing.T) {
	t.Run("prints plaintext without output file", func(t *testing.T) {
		inputFile := testutil.WriteTempFile(t, "encrypted.txt", []byte("2790 524\nPublic key: 3233, 17"))

		out := runCLI(t, "", "decrypt", "--input-file", inputFile)

		assert.Contains(t, out, "Public key: 3233, 17")
		assert.Contains(t, out, "Decrypted text: AB\n")
	})

	t.Run("writes output file", func(t *testing.T) {
		inputFile := testutil.WriteTempFile(t, "encrypted.txt", []byte("2790 524\nPublic key: 3233, 17"))
		outputFile := filepath.Join(t.TempDir(), "decrypted.txt")

		out := runCLI(t, "", "decrypt", "--input-file", inputFile, "--output-file", outputFile)

		assert.Contains(t, out, outputFile)
		content, err := os.ReadFile(outputFile)
		require.NoError(t, err)
		assert.Equal(t, "AB", string(content))
	})

	t.Run("coprime round trip", func(t *testing.T) {
		inputFile := testutil.WriteTempFile(t, "encrypted.txt", []byte("1317 2241"))

		out := runCLI(t, "", "decrypt", "--input-file", inputFile, "--strategy", "coprime")

		assert.Contains(t, out, "Public key: 3233, 7")
		assert.Contains(t, out, "Decrypted text: AB\n")
	})

	t.Run("strict mode without private key", func(t *testing.T) {
		inputFile := testutil.WriteTempFile(t, "encrypted.txt", []byte("12 34"))

		out := runCLI(t, "", "decrypt", "--input-file", inputFile, "--p", "103", "--strict")

		assert.Empty(t, out)
	})
}

func TestEncryptThenDecrypt(t *testing.T) {
	dir := t.TempDir()
	inputFile := testutil.WriteTempFile(t, "plain.txt", []byte("Hello, toy RSA!\n"))
	encryptedFile := filepath.Join(dir, "encrypted.txt")
	decryptedFile := filepath.Join(dir, "decrypted.txt")

	runCLI(t, "", "encrypt", "--input-file", inputFile, "--output-file", encryptedFile)
	runCLI(t, "", "decrypt", "--input-file", encryptedFile, "--output-file", decryptedFile)

	content, err := os.ReadFile(decryptedFile)
	require.NoError(t, err)
	assert.Equal(t, "Hello, toy RSA!\n", string(content))
}
