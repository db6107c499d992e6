package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nyborg/wirepack/pkg/hashing"
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash [input]",
	Short: "Hash a file with crc32, fnv32, or sha256",
	Long: `Hash a file (or stdin) and print the digest in hex.

Example:
  wirepack hash report.json
  wirepack hash report.json --algo sha256`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}
		algo, _ := cmd.Flags().GetString("algo")

		data, err := readInput(input)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			os.Exit(1)
		}

		digest, err := hashData(data, algo)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			os.Exit(1)
		}
		cmd.Printf("%s\n", digest)
	},
}

func hashData(data []byte, algo string) (string, error) {
	switch algo {
	case "", "crc32":
		return fmt.Sprintf("%08x", hashing.CRC32(data)), nil
	case "fnv32":
		return fmt.Sprintf("%08x", hashing.FNV32(data)), nil
	case "sha256":
		return hashing.SHA256(data), nil
	default:
		return "", fmt.Errorf("unknown hash algorithm: %s", algo)
	}
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().String("algo", "crc32", "Hash algorithm: crc32, fnv32, sha256")
}
