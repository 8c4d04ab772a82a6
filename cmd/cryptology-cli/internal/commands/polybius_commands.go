package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// EncodePolybiusCmd encodes text into coordinate tokens
func (h *CipherCommandHandler) EncodePolybiusCmd(cmd *cobra.Command, _ []string) error {
	return h.polybius(cmd, h.engine.Polybius().Encode)
}

// DecodePolybiusCmd decodes coordinate tokens into text
func (h *CipherCommandHandler) DecodePolybiusCmd(cmd *cobra.Command, _ []string) error {
	return h.polybius(cmd, h.engine.Polybius().Decode)
}

func (h *CipherCommandHandler) polybius(cmd *cobra.Command, apply func(text, kind string) (string, error)) error {
	text, err := readText(cmd)
	if err != nil {
		return h.fail(err)
	}
	alphabet, _ := cmd.Flags().GetString("alphabet")

	result, err := apply(text, alphabet)
	if err != nil {
		return h.fail(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// InitPolybiusCommands registers polybius-encode and polybius-decode
func InitPolybiusCommands(rootCmd *cobra.Command, handler *CipherCommandHandler) {
	var encodeCmd = &cobra.Command{
		Use:   "polybius-encode",
		Short: "Encode text with the Polybius square",
		RunE:  handler.EncodePolybiusCmd,
	}
	addTextFlags(encodeCmd)
	rootCmd.AddCommand(encodeCmd)

	var decodeCmd = &cobra.Command{
		Use:   "polybius-decode",
		Short: "Decode whitespace separated Polybius tokens",
		RunE:  handler.DecodePolybiusCmd,
	}
	addTextFlags(decodeCmd)
	rootCmd.AddCommand(decodeCmd)
}
