package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
	"github.com/QmFkLVBp/cryptology/internal/infrastructure/cryptography"
	"github.com/QmFkLVBp/cryptology/internal/pkg/config"
	"github.com/QmFkLVBp/cryptology/internal/pkg/logger"
)

// CipherCommandHandler runs every cipher sub-command against one CipherEngine.
type CipherCommandHandler struct {
	engine classical.CipherEngine
	logger logger.Logger
}

// NewCipherCommandHandler builds the handler with a console logger at the given level.
func NewCipherCommandHandler(logLevel string) (*CipherCommandHandler, error) {
	loggerInstance, err := setupLogger(logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	engine, err := cryptography.NewCipherEngine(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher engine: %w", err)
	}

	return &CipherCommandHandler{
		engine: engine,
		logger: loggerInstance,
	}, nil
}

// InitCommands registers every sub-command on rootCmd.
func InitCommands(rootCmd *cobra.Command, handler *CipherCommandHandler) {
	InitRSACommands(rootCmd, handler)
	InitCaesarCommands(rootCmd, handler)
	InitVigenereCommands(rootCmd, handler)
	InitPolybiusCommands(rootCmd, handler)
}

// setupLogger logs to stderr so that stdout carries nothing but command results.
func setupLogger(logLevel string) (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: logLevel,
		LogType:  config.LogTypeConsole,
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger.NewConsoleLoggerTo(os.Stderr, settings.LogLevel), nil
}

// readText returns the content of --input-file when set, otherwise --text.
func readText(cmd *cobra.Command) (string, error) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	if inputFile != "" {
		data, err := os.ReadFile(filepath.Clean(inputFile))
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return "", fmt.Errorf("invalid text flag: %w", err)
	}
	return text, nil
}

func addTextFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("text", "t", "", "Input text")
	cmd.Flags().StringP("input-file", "", "", "Read the input text from a file instead of --text")
	cmd.Flags().StringP("alphabet", "a", classical.AlphabetEnglish, "Alphabet: EN or UA")
}

func (h *CipherCommandHandler) fail(err error) error {
	h.logger.Error("%v", err)
	return err
}
