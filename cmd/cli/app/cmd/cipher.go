package cmd

import (
	"desta/cmd/cli/app"
	"desta/internal/core/handler"

	"github.com/spf13/cobra"
)

var (
	encryptRequest handler.CipherRequest
	decryptRequest handler.CipherRequest
)

func init() {
	addCipherFlags(encryptCmd, &encryptRequest)
	addCipherFlags(decryptCmd, &decryptRequest)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
}

func addCipherFlags(cmd *cobra.Command, request *handler.CipherRequest) {
	cmd.Flags().StringVarP(&request.Algorithm, "algorithm", "a", "cbc", "cipher mode: ecb or cbc")
	cmd.Flags().StringVarP(&request.KeyHex, "key", "k", "", "8-byte DES key as hex")
	cmd.Flags().BoolVar(&request.PromptKey, "prompt-key", false, "read the key from the terminal without echo")
	cmd.Flags().StringVar(&request.IVHex, "iv", "", "8-byte IV as hex (defaults to zeros)")
	cmd.Flags().StringVarP(&request.InputPath, "in", "i", "", "input file")
	cmd.Flags().StringVarP(&request.Data, "data", "d", "", "inline input as hex")
	cmd.Flags().BoolVar(&request.HexInput, "hex-input", false, "treat the input file as hex")
	cmd.Flags().StringVarP(&request.OutputPath, "out", "o", "", "output file (hex to stdout when omitted)")
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypts block-aligned data with DES",
	Long:  `Opens a session with the trusted application, prepares it for encoding with the given key and IV and ciphers the input. Input must be a multiple of 8 bytes; no padding is applied.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectCipherCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleEncrypt(encryptRequest)
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypts block-aligned data with DES",
	Long:  `Opens a session with the trusted application, prepares it for decoding with the given key and IV and ciphers the input. Input must be a multiple of 8 bytes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectCipherCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleDecrypt(decryptRequest)
	},
}
