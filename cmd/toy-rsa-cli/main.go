// Package main is the entry point for the toy-rsa-cli application.
// It registers the derive-keys, encrypt and decrypt commands and executes the CLI.
package main

import (
	"fmt"
	"log"

	commands "github.com/MGTheTrain/toy-rsa/cmd/toy-rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "toy-rsa-cli",
		Short: "Textbook RSA on small primes",
		Long: `toy-rsa-cli derives textbook RSA keys from two small primes and encrypts
text files one byte at a time into space separated decimal numbers.

The defaults p=61, q=53, e=17 give the public key 3233, 17.
This is a teaching tool and offers no security.`,
	}

	if err := commands.InitToyRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
