package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MGTheTrain/toy-rsa/internal/app"
	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/toy-rsa/internal/infrastructure/textio"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/config"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DefaultEncryptedFile is written by encrypt when --output-file is not given
const DefaultEncryptedFile = "encrypted.txt"

// ToyRSACommandHandler encapsulates logic for handling toy RSA operations via CLI.
type ToyRSACommandHandler struct {
	prompter toyrsa.PathPrompter
	store    toyrsa.TextStore
	out      io.Writer
	logger   logger.Logger
}

// NewToyRSACommandHandler initializes a handler prompting on stdin and reporting on stdout.
func NewToyRSACommandHandler() (*ToyRSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return newToyRSACommandHandler(os.Stdin, os.Stdout, loggerInstance), nil
}

func newToyRSACommandHandler(in io.Reader, out io.Writer, log logger.Logger) *ToyRSACommandHandler {
	return &ToyRSACommandHandler{
		prompter: textio.NewLinePrompter(in, out),
		store:    textio.NewFileStore(log),
		out:      out,
		logger:   log,
	}
}

// engineSettingsFromFlags reads the key material flags shared by every command
func engineSettingsFromFlags(cmd *cobra.Command) (config.EngineSettings, error) {
	settings := config.DefaultEngineSettings()
	var err error

	if settings.P, err = cmd.Flags().GetUint64("p"); err != nil {
		return settings, fmt.Errorf("invalid p flag: %w", err)
	}
	if settings.Q, err = cmd.Flags().GetUint64("q"); err != nil {
		return settings, fmt.Errorf("invalid q flag: %w", err)
	}
	if settings.Strategy, err = cmd.Flags().GetString("strategy"); err != nil {
		return settings, fmt.Errorf("invalid strategy flag: %w", err)
	}
	if settings.FixedExponent, err = cmd.Flags().GetUint64("exponent"); err != nil {
		return settings, fmt.Errorf("invalid exponent flag: %w", err)
	}
	if settings.MaxPrime, err = cmd.Flags().GetUint64("max-prime"); err != nil {
		return settings, fmt.Errorf("invalid max-prime flag: %w", err)
	}
	if settings.ValidatePrimes, err = cmd.Flags().GetBool("validate-primes"); err != nil {
		return settings, fmt.Errorf("invalid validate-primes flag: %w", err)
	}
	if settings.StrictPrivateKey, err = cmd.Flags().GetBool("strict"); err != nil {
		return settings, fmt.Errorf("invalid strict flag: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// keyService builds a key service with a single engine for the configured strategy
func (commandHandler *ToyRSACommandHandler) keyService(settings config.EngineSettings) (toyrsa.KeyService, error) {
	opts, err := cryptography.EngineOptionsFromSettings(settings)
	if err != nil {
		return nil, err
	}
	engine, err := cryptography.NewToyRSAEngine(opts, commandHandler.logger)
	if err != nil {
		return nil, err
	}
	return app.NewKeyService([]toyrsa.Engine{engine}, settings, nil, nil, commandHandler.logger)
}

// inputPath returns --input-file or asks for it. ok is false when the user cancels.
func (commandHandler *ToyRSACommandHandler) inputPath(cmd *cobra.Command, label string) (string, bool) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return "", false
	}
	if inputFile != "" {
		return inputFile, true
	}

	inputFile, ok, err := commandHandler.prompter.PromptPath(label)
	if err != nil {
		commandHandler.logger.Error(err)
		return "", false
	}
	if !ok {
		commandHandler.logger.Info("No file selected")
	}
	return inputFile, ok
}

// DeriveKeysCmd prints the key state derived from --p and --q
func (commandHandler *ToyRSACommandHandler) DeriveKeysCmd(cmd *cobra.Command, _ []string) {
	settings, err := engineSettingsFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyService, err := commandHandler.keyService(settings)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ks, err := keyService.Derive(context.Background(), nil)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintf(commandHandler.out, "n = %d\nphi = %d\ne = %d\nd = %d\n%s%s\n",
		ks.N, ks.Phi, ks.E, ks.D, cryptography.PublicKeyLabel, ks.PublicKey())
	if !ks.HasPrivateKey() {
		commandHandler.logger.Warn("e=", ks.E, " has no inverse modulo phi=", ks.Phi, ", decryption will not recover the plaintext")
	}
}

// EncryptCmd encrypts a text file into a ciphertext artifact
func (commandHandler *ToyRSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	settings, err := engineSettingsFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	inputFile, ok := commandHandler.inputPath(cmd, "File to encrypt")
	if !ok {
		return
	}

	keyService, err := commandHandler.keyService(settings)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	encryptionService, err := app.NewEncryptionService(keyService, cryptography.NewTextCodec(), commandHandler.store, nil, nil, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := encryptionService.EncryptFile(context.Background(), nil, inputFile, outputFile)
	if errors.Is(err, toyrsa.ErrEmptyInput) {
		commandHandler.logger.Info("Input file is empty, nothing to do")
		return
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintf(commandHandler.out, "%s%s\nEncrypted text saved to file: %s\n",
		cryptography.PublicKeyLabel, result.Keys.PublicKey(), outputFile)
}

// DecryptCmd decrypts a ciphertext artifact. Without --output-file the plaintext is printed.
func (commandHandler *ToyRSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	settings, err := engineSettingsFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	inputFile, ok := commandHandler.inputPath(cmd, "File to decrypt")
	if !ok {
		return
	}

	keyService, err := commandHandler.keyService(settings)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	decryptionService, err := app.NewDecryptionService(keyService, cryptography.NewTextCodec(), commandHandler.store, nil, nil, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := decryptionService.DecryptFile(context.Background(), nil, inputFile, outputFile)
	if errors.Is(err, toyrsa.ErrEmptyInput) {
		commandHandler.logger.Info("Input file is empty, nothing to do")
		return
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintf(commandHandler.out, "%s%s\n", cryptography.PublicKeyLabel, result.Keys.PublicKey())
	if outputFile != "" {
		fmt.Fprintf(commandHandler.out, "Decrypted text saved to file: %s\n", outputFile)
		return
	}
	fmt.Fprintf(commandHandler.out, "Decrypted text: %s\n", result.Plaintext)
}

func addKeyFlags(cmd *cobra.Command) {
	defaults := config.DefaultEngineSettings()
	cmd.Flags().Uint64P("p", "", defaults.P, "First prime")
	cmd.Flags().Uint64P("q", "", defaults.Q, "Second prime")
	cmd.Flags().StringP("strategy", "", defaults.Strategy, "Public exponent strategy (fixed or coprime)")
	cmd.Flags().Uint64P("exponent", "", defaults.FixedExponent, "Public exponent of the fixed strategy")
	cmd.Flags().Uint64P("max-prime", "", defaults.MaxPrime, "Largest accepted prime, 0 for no limit")
	cmd.Flags().BoolP("validate-primes", "", defaults.ValidatePrimes, "Reject p and q that are not prime")
	cmd.Flags().BoolP("strict", "", defaults.StrictPrivateKey, "Fail decryption when e has no inverse modulo phi")
}

// InitToyRSACommands registers derive-keys, encrypt and decrypt on rootCmd
func InitToyRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewToyRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create toy RSA command handler %w", err)
	}
	registerToyRSACommands(rootCmd, handler)
	return nil
}

func registerToyRSACommands(rootCmd *cobra.Command, handler *ToyRSACommandHandler) {
	var deriveKeysCmd = &cobra.Command{
		Use:   "derive-keys",
		Short: "Derive n, phi, e and d from two primes",
		Run:   handler.DeriveKeysCmd,
	}
	addKeyFlags(deriveKeysCmd)
	rootCmd.AddCommand(deriveKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a text file byte by byte",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted (prompted when empty)")
	encryptCmd.Flags().StringP("output-file", "", DefaultEncryptedFile, "Path to encrypted output file")
	addKeyFlags(encryptCmd)
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file written by encrypt",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input-file", "", "", "Path to encrypted file (prompted when empty)")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file, prints the text when empty")
	addKeyFlags(decryptCmd)
	rootCmd.AddCommand(decryptCmd)
}
