package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/QmFkLVBp/cryptology/internal/domain/classical"
)

// DeriveRSAParametersCmd derives and prints the full key tuple
func (h *CipherCommandHandler) DeriveRSAParametersCmd(cmd *cobra.Command, _ []string) error {
	p, _ := cmd.Flags().GetString("p")
	q, _ := cmd.Flags().GetString("q")
	e, _ := cmd.Flags().GetString("e")
	d, _ := cmd.Flags().GetString("d")

	params, err := h.engine.RSA().DeriveParameters(p, q, e, d)
	if err != nil {
		return h.fail(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), params.Report())
	return nil
}

// EncryptRSACmd encrypts an integer message with (e, p*q)
func (h *CipherCommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	p, _ := cmd.Flags().GetString("p")
	q, _ := cmd.Flags().GetString("q")
	e, _ := cmd.Flags().GetString("e")
	message, _ := cmd.Flags().GetString("message")

	result, err := h.engine.RSA().Encrypt(p, q, e, message)
	if err != nil {
		return h.fail(err)
	}

	printTransformation(cmd, result)
	return nil
}

// DecryptRSACmd decrypts an integer ciphertext with (d, p*q)
func (h *CipherCommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	p, _ := cmd.Flags().GetString("p")
	q, _ := cmd.Flags().GetString("q")
	d, _ := cmd.Flags().GetString("d")
	ciphertext, _ := cmd.Flags().GetString("ciphertext")

	result, err := h.engine.RSA().Decrypt(p, q, d, ciphertext)
	if err != nil {
		return h.fail(err)
	}

	printTransformation(cmd, result)
	return nil
}

func printTransformation(cmd *cobra.Command, t *classical.Transformation) {
	if t.Warning != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", t.Warning.String())
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Output.String())
}

// InitRSACommands registers rsa-params, rsa-encrypt and rsa-decrypt
func InitRSACommands(rootCmd *cobra.Command, handler *CipherCommandHandler) {
	var paramsCmd = &cobra.Command{
		Use:   "rsa-params",
		Short: "Derive N, φ(N) and the missing exponent from p, q and e or d",
		RunE:  handler.DeriveRSAParametersCmd,
	}
	paramsCmd.Flags().StringP("p", "", "", "First prime")
	paramsCmd.Flags().StringP("q", "", "", "Second prime")
	paramsCmd.Flags().StringP("e", "", "", "Public exponent (optional when d is set)")
	paramsCmd.Flags().StringP("d", "", "", "Private exponent (optional when e is set)")
	rootCmd.AddCommand(paramsCmd)

	var encryptCmd = &cobra.Command{
		Use:   "rsa-encrypt",
		Short: "Encrypt an integer message with textbook RSA",
		RunE:  handler.EncryptRSACmd,
	}
	encryptCmd.Flags().StringP("p", "", "", "First prime")
	encryptCmd.Flags().StringP("q", "", "", "Second prime")
	encryptCmd.Flags().StringP("e", "", "", "Public exponent")
	encryptCmd.Flags().StringP("message", "m", "", "Integer message")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "rsa-decrypt",
		Short: "Decrypt an integer ciphertext with textbook RSA",
		RunE:  handler.DecryptRSACmd,
	}
	decryptCmd.Flags().StringP("p", "", "", "First prime")
	decryptCmd.Flags().StringP("q", "", "", "Second prime")
	decryptCmd.Flags().StringP("d", "", "", "Private exponent")
	decryptCmd.Flags().StringP("ciphertext", "c", "", "Integer ciphertext")
	rootCmd.AddCommand(decryptCmd)
}
