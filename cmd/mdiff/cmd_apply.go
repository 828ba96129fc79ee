package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corewald/multidiff"
	"github.com/corewald/multidiff/internal/fileio"
)

var (
	applyAllowTruncated bool
	applySmart          bool
	applyOut            string
)

var applyCmd = &cobra.Command{
	Use:   "apply <diff-file> <target-file>",
	Short: "Apply an encoded diff to a target file",
	Args:  cobra.ExactArgs(2),
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyAllowTruncated, "allow-truncated", false, "tolerate a target shorter than the diff expects")
	applyCmd.Flags().BoolVar(&applySmart, "smart", false, "locate the diff's excerpt within a larger target document")
	applyCmd.Flags().StringVarP(&applyOut, "out", "o", "-", "output path for the result (\"-\" for stdout)")
}

func runApply(cmd *cobra.Command, args []string) error {
	encoded, err := fileio.ReadAll(args[0], os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read diff: %w", err)
	}
	target, err := fileio.ReadAll(args[1], os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read target: %w", err)
	}

	encodedStr := strings.TrimSpace(string(encoded))
	logger.Debug("applying diff", zap.Bool("smart", applySmart), zap.Bool("allow_truncated", applyAllowTruncated))

	var result string
	if applySmart {
		result, err = multidiff.ApplyBase64SmartDiff(string(target), encodedStr)
	} else {
		allowTruncated := applyAllowTruncated || cfg.AllowTruncated
		result, err = multidiff.ApplyBase64Diff(string(target), encodedStr, allowTruncated)
	}
	if err != nil {
		return fmt.Errorf("failed to apply diff: %w", err)
	}

	return fileio.WriteAll(applyOut, []byte(result), os.Stdout)
}
