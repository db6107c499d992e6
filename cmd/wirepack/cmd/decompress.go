package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nyborg/wirepack/pkg/codec"
	"github.com/nyborg/wirepack/pkg/frame"
)

// decompressCmd represents the decompress command
var decompressCmd = &cobra.Command{
	Use:   "decompress [input]",
	Short: "Decompress a wirepack frame",
	Long: `Decompress a frame back into the original bytes, verifying the
embedded length and checksum. Corrupted frames fail unless --allow-partial
is set, in which case the recovered prefix is written and the exit status
stays non-zero.

Example:
  wirepack decompress report.wp -o report.json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}
		output, _ := cmd.Flags().GetString("output")
		allowPartial, _ := cmd.Flags().GetBool("allow-partial")

		blob, err := readInput(input)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			os.Exit(1)
		}

		data, err := decompressData(blob)
		if err != nil {
			if !codec.IsPartial(err) || !allowPartial {
				cmd.PrintErrf("Error decompressing: %v\n", err)
				os.Exit(1)
			}
			cmd.PrintErrf("Warning: %v; writing %d recovered bytes\n", err, len(data))
			if werr := writeOutput(output, data); werr != nil {
				cmd.PrintErrf("Error: %v\n", werr)
			}
			os.Exit(1)
		}

		if err := writeOutput(output, data); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func decompressData(blob []byte) ([]byte, error) {
	if container == nil {
		return nil, fmt.Errorf("dependency container not initialized")
	}
	return frame.Decode(blob, container.FrameOptions())
}

func init() {
	rootCmd.AddCommand(decompressCmd)

	decompressCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	decompressCmd.Flags().Bool("allow-partial", false,
		"Write best-effort recovered bytes from a corrupted frame")
}
