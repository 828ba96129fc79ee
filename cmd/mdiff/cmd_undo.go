package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corewald/multidiff"
	"github.com/corewald/multidiff/internal/fileio"
)

var undoOut string

var undoCmd = &cobra.Command{
	Use:   "undo <diff-file>",
	Short: "Synthesize the inverse of a diff that carries source/destination snapshots",
	Args:  cobra.ExactArgs(1),
	RunE:  runUndo,
}

func init() {
	undoCmd.Flags().StringVarP(&undoOut, "out", "o", "-", "output path for the inverse diff (\"-\" for stdout)")
}

func runUndo(cmd *cobra.Command, args []string) error {
	encoded, err := fileio.ReadAll(args[0], os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read diff: %w", err)
	}

	diff, err := multidiff.DecodeBase64(strings.TrimSpace(string(encoded)))
	if err != nil {
		return fmt.Errorf("failed to decode diff: %w", err)
	}

	undo := multidiff.CreateUndoDiff(diff)
	if undo == nil {
		return fmt.Errorf("diff does not carry the source/destination snapshots undo requires")
	}

	out, err := multidiff.EncodeBase64(*undo)
	if err != nil {
		return fmt.Errorf("failed to encode inverse diff: %w", err)
	}

	return fileio.WriteAll(undoOut, []byte(out+"\n"), os.Stdout)
}
