package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nyborg/wirepack/pkg/frame"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [input]",
	Short: "Print a frame's header without decompressing it",
	Long: `Inspect the envelope of a frame: format version, codec, declared
length and checksum. The payload is never decompressed, so inspect is safe
on untrusted or corrupted input.

Example:
  wirepack inspect report.wp`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}

		blob, err := readInput(input)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			os.Exit(1)
		}

		h, _, err := frame.ParseHeader(blob)
		if err != nil {
			cmd.PrintErrf("Error parsing frame: %v\n", err)
			os.Exit(1)
		}

		format := "current"
		if h.Legacy {
			format = "legacy"
		}
		cmd.Printf("Format:          %s (version %d)\n", format, h.Version)
		cmd.Printf("Text-safe:       %t\n", h.TextSafe)
		cmd.Printf("Codec:           %s\n", h.Codec)
		cmd.Printf("Original length: %d bytes\n", h.OriginalLength)
		cmd.Printf("Original CRC32:  0x%08X\n", h.OriginalCRC32)
		cmd.Printf("Payload length:  %d bytes\n", h.PayloadLength)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
