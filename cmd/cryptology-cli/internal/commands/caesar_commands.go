package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// EncryptCaesarCmd shifts text forward
func (h *CipherCommandHandler) EncryptCaesarCmd(cmd *cobra.Command, _ []string) error {
	return h.caesar(cmd, h.engine.Caesar().Encrypt)
}

// DecryptCaesarCmd shifts text backward
func (h *CipherCommandHandler) DecryptCaesarCmd(cmd *cobra.Command, _ []string) error {
	return h.caesar(cmd, h.engine.Caesar().Decrypt)
}

func (h *CipherCommandHandler) caesar(cmd *cobra.Command, apply func(text, shift, kind string) (string, error)) error {
	text, err := readText(cmd)
	if err != nil {
		return h.fail(err)
	}
	shift, _ := cmd.Flags().GetString("shift")
	alphabet, _ := cmd.Flags().GetString("alphabet")

	result, err := apply(text, shift, alphabet)
	if err != nil {
		return h.fail(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// InitCaesarCommands registers caesar-encrypt and caesar-decrypt
func InitCaesarCommands(rootCmd *cobra.Command, handler *CipherCommandHandler) {
	var encryptCmd = &cobra.Command{
		Use:   "caesar-encrypt",
		Short: "Encrypt text with the Caesar cipher",
		RunE:  handler.EncryptCaesarCmd,
	}
	addTextFlags(encryptCmd)
	encryptCmd.Flags().StringP("shift", "s", "0", "Shift; non-integers mean 0")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "caesar-decrypt",
		Short: "Decrypt text with the Caesar cipher",
		RunE:  handler.DecryptCaesarCmd,
	}
	addTextFlags(decryptCmd)
	decryptCmd.Flags().StringP("shift", "s", "0", "Shift; non-integers mean 0")
	rootCmd.AddCommand(decryptCmd)
}
