package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
)

// EncryptVigenereCmd encrypts text with the Vigenère cipher
func (h *CipherCommandHandler) EncryptVigenereCmd(cmd *cobra.Command, _ []string) error {
	return h.vigenere(cmd, h.engine.Vigenere().Encrypt)
}

// DecryptVigenereCmd decrypts text with the Vigenère cipher
func (h *CipherCommandHandler) DecryptVigenereCmd(cmd *cobra.Command, _ []string) error {
	return h.vigenere(cmd, h.engine.Vigenere().Decrypt)
}

func (h *CipherCommandHandler) vigenere(cmd *cobra.Command, apply func(text, key, rot, kind string) (string, error)) error {
	text, err := readText(cmd)
	if err != nil {
		return h.fail(err)
	}
	key, _ := cmd.Flags().GetString("key")
	rot, _ := cmd.Flags().GetString("rot")
	alphabet, _ := cmd.Flags().GetString("alphabet")

	result, err := apply(text, key, rot, alphabet)
	if err != nil {
		return h.fail(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// VigenereTableCmd prints the per-character computation as TSV, optionally saving it to a file
func (h *CipherCommandHandler) VigenereTableCmd(cmd *cobra.Command, _ []string) error {
	text, err := readText(cmd)
	if err != nil {
		return h.fail(err)
	}
	key, _ := cmd.Flags().GetString("key")
	rot, _ := cmd.Flags().GetString("rot")
	alphabet, _ := cmd.Flags().GetString("alphabet")
	outputFile, _ := cmd.Flags().GetString("output-file")

	trace, err := h.engine.Vigenere().Trace(text, key, rot, alphabet)
	if err != nil {
		return h.fail(err)
	}

	tsv := classical.FormatTraceTSV(trace.Rows)
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(tsv+"\n"), 0600); err != nil {
			return h.fail(fmt.Errorf("failed to write table: %w", err))
		}
		h.logger.Info("Vigenère table path ", outputFile)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "alphabet: %s (rotation %d)\n%s\n", trace.Alphabet, trace.Rotation, tsv)
	return nil
}

// InitVigenereCommands registers vigenere-encrypt, vigenere-decrypt and vigenere-table
func InitVigenereCommands(rootCmd *cobra.Command, handler *CipherCommandHandler) {
	commands := []*cobra.Command{
		{
			Use:   "vigenere-encrypt",
			Short: "Encrypt text with the Vigenère cipher",
			RunE:  handler.EncryptVigenereCmd,
		},
		{
			Use:   "vigenere-decrypt",
			Short: "Decrypt text with the Vigenère cipher",
			RunE:  handler.DecryptVigenereCmd,
		},
		{
			Use:   "vigenere-table",
			Short: "Show the per-character Vigenère encryption table",
			RunE:  handler.VigenereTableCmd,
		},
	}

	for _, c := range commands {
		addTextFlags(c)
		c.Flags().StringP("key", "k", "", "Key made of alphabet letters")
		c.Flags().StringP("rot", "r", "0", "Alphabet rotation; non-integers mean 0")
		rootCmd.AddCommand(c)
	}
	commands[2].Flags().StringP("output-file", "o", "", "Also write the table as TSV to this file")
}
