// Package main is the entry point for the cryptology-cli application.
// It registers the RSA, Caesar, Vigenère and Polybius sub-commands and executes the CLI.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/QmFkLVBp/cryptology/cmd/cryptology-cli/internal/commands"
	"github.com/QmFkLVBp/cryptology/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "cryptology-cli",
		Short: "Classical cipher workbench",
		Long: `cryptology-cli runs textbook ciphers from the command line.
Supports RSA parameter derivation, encryption and decryption over arbitrary precision integers,
the Caesar and Vigenère ciphers over the English and Ukrainian alphabets, and Polybius squares.

The log level defaults to info and can be changed with CRYPTOLOGY_LOGGER_LOG_LEVEL.`,
		SilenceUsage: true,
	}

	logLevel := os.Getenv(config.EnvPrefix + "_LOGGER_LOG_LEVEL")
	if logLevel == "" {
		logLevel = config.LogLevelInfo
	}

	handler, err := commands.NewCipherCommandHandler(logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}
	commands.InitCommands(rootCmd, handler)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
