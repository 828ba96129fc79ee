package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corewald/multidiff"
	"github.com/corewald/multidiff/internal/fileio"
)

var (
	diffAlgorithm string
	diffNoMeta    bool
	diffOut       string
)

var diffCmd = &cobra.Command{
	Use:   "diff <source-file> <destination-file>",
	Short: "Create a base64-encoded diff between two files",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffAlgorithm, "algorithm", "", "force \"fast\" or \"semantic\" (default: the config's algorithm, automatic when unset)")
	diffCmd.Flags().BoolVar(&diffNoMeta, "no-metadata", false, "omit the metadata block (no hash, no undo support)")
	diffCmd.Flags().StringVarP(&diffOut, "out", "o", "-", "output path for the encoded diff (\"-\" for stdout)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	source, err := fileio.ReadAll(args[0], os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}
	destination, err := fileio.ReadAll(args[1], os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read destination: %w", err)
	}

	algorithm := diffAlgorithm
	if algorithm == "" {
		algorithm = cfg.Algorithm
	}
	opts := multidiff.CreateOptions{
		Algorithm:       multidiff.Algorithm(algorithm),
		IncludeMetadata: !diffNoMeta && cfg.IncludeMetadata,
	}

	logger.Debug("creating diff", zap.Int("source_bytes", len(source)), zap.Int("destination_bytes", len(destination)))
	encoded, err := multidiff.CreateBase64Diff(string(source), string(destination), opts)
	if err != nil {
		return fmt.Errorf("failed to create diff: %w", err)
	}

	return fileio.WriteAll(diffOut, []byte(encoded+"\n"), os.Stdout)
}
