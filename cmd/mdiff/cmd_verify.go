package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corewald/multidiff"
	"github.com/corewald/multidiff/internal/fileio"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <diff-file>",
	Short: "Check a diff's integrity hash and, if stored, its source/destination snapshots",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	encoded, err := fileio.ReadAll(args[0], os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read diff: %w", err)
	}

	diff, err := multidiff.DecodeBase64(strings.TrimSpace(string(encoded)))
	if err != nil {
		return fmt.Errorf("failed to decode diff: %w", err)
	}

	if !multidiff.VerifyDiff(diff) {
		logger.Warn("diff failed verification")
		fmt.Fprintln(os.Stdout, "INVALID")
		return &multidiff.VerificationFailed{}
	}

	fmt.Fprintln(os.Stdout, "OK")
	return nil
}
