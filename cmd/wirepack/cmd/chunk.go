package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nyborg/wirepack/pkg/chunker"
)

// chunkCmd represents the chunk command
var chunkCmd = &cobra.Command{
	Use:   "chunk <input> | chunk --join <piece>...",
	Short: "Split a file into fixed-size pieces, or join pieces back",
	Long: `Split a file into numbered pieces no larger than --size bytes,
for transports with a small maximum message size. With --join, concatenate
the given pieces in argument order instead.

Example:
  wirepack chunk report.wp --size 255 --out-dir pieces
  wirepack chunk --join -o report.wp pieces/report.wp.part*`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		join, _ := cmd.Flags().GetBool("join")

		if join {
			output, _ := cmd.Flags().GetString("output")
			if err := joinChunks(args, output); err != nil {
				cmd.PrintErrf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		size, _ := cmd.Flags().GetInt("size")
		outDir, _ := cmd.Flags().GetString("out-dir")

		written, err := splitFile(args[0], size, outDir)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			os.Exit(1)
		}
		cmd.Printf("Wrote %d pieces to %s\n", written, outDir)
	},
}

// splitFile cuts path into pieces of at most size bytes and writes them as
// <out-dir>/<base>.partNNN. It returns the number of pieces written.
func splitFile(path string, size int, outDir string) (int, error) {
	data, err := readInput(path)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := filepath.Base(path)
	if path == "" || path == "-" {
		base = "stdin"
	}

	chunks := chunker.Split(data, size)
	for i, c := range chunks {
		name := filepath.Join(outDir, fmt.Sprintf("%s.part%03d", base, i))
		if err := os.WriteFile(name, c, 0600); err != nil {
			return i, fmt.Errorf("failed to write piece %d: %w", i, err)
		}
	}
	return len(chunks), nil
}

// joinChunks reassembles the named pieces in argument order.
func joinChunks(paths []string, output string) error {
	chunks := make([][]byte, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read piece: %w", err)
		}
		chunks = append(chunks, data)
	}
	return writeOutput(output, chunker.Reassemble(chunks))
}

func init() {
	rootCmd.AddCommand(chunkCmd)

	chunkCmd.Flags().Int("size", chunker.DefaultChunkSize, "Maximum piece size in bytes")
	chunkCmd.Flags().String("out-dir", ".", "Directory for the pieces")
	chunkCmd.Flags().Bool("join", false, "Join pieces instead of splitting")
	chunkCmd.Flags().StringP("output", "o", "", "Output file for --join (default stdout)")
}
