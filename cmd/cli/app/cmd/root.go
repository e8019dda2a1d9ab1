package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "desta",
	Short: "DES cipher trusted application host",
	Long: `Desta hosts the DES trusted application in process and drives it through
its four-command protocol (Prepare, SetKey, SetIV, Cipher).

Configuration is stored in ~/.desta-config.yaml. Run 'desta initialize' to
create the default configuration file.

Common workflows:
  desta encrypt --algorithm cbc --key <hex> --iv <hex> --in plain.bin --out cipher.bin
  desta decrypt --algorithm ecb --key <hex> --data <hex>
  desta info                  Show the trusted application identity`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
