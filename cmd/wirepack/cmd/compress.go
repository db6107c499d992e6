package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nyborg/wirepack/pkg/frame"
)

// compressCmd represents the compress command
var compressCmd = &cobra.Command{
	Use:   "compress [input]",
	Short: "Compress a file into a wirepack frame",
	Long: `Compress a file (or stdin) into a single self-describing frame.

Example:
  wirepack compress report.json -o report.wp
  cat report.json | wirepack compress --codec rle --text`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}
		output, _ := cmd.Flags().GetString("output")
		codecName, _ := cmd.Flags().GetString("codec")
		textSafe, _ := cmd.Flags().GetBool("text")

		data, err := readInput(input)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			os.Exit(1)
		}

		framed, err := compressData(data, codecName, textSafe)
		if err != nil {
			cmd.PrintErrf("Error compressing: %v\n", err)
			os.Exit(1)
		}

		if err := writeOutput(output, framed); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			os.Exit(1)
		}

		if output != "" && output != "-" {
			cmd.Printf("%d bytes in, %d bytes out (%.1f%%)\n",
				len(data), len(framed), 100*float64(len(framed))/float64(len(data)))
		}
	},
}

// compressData frames data with the container's configuration, letting the
// codec and text flags override it when set.
func compressData(data []byte, codecName string, textSafe bool) ([]byte, error) {
	if container == nil {
		return nil, fmt.Errorf("dependency container not initialized")
	}
	opts := container.FrameOptions()
	if codecName != "" {
		opts.Codec = codecName
	}
	if textSafe {
		opts.TextSafe = true
	}
	return frame.Encode(data, opts)
}

func init() {
	rootCmd.AddCommand(compressCmd)

	compressCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	compressCmd.Flags().String("codec", "", "Codec to use: none, rle, lzss (default from config)")
	compressCmd.Flags().Bool("text", false, "Emit a Base64 text-safe frame")
}
