// Package main implements the mdiff CLI: create, apply, verify, and undo
// multidiff operation sequences from the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corewald/multidiff"
	"github.com/corewald/multidiff/internal/applog"
	"github.com/corewald/multidiff/internal/config"
)

var (
	verbose   bool
	cfgPath   string
	cfg       *config.Config
	logger    *zap.Logger
	requestID string
)

var rootCmd = &cobra.Command{
	Use:   "mdiff",
	Short: "mdiff computes, applies, and verifies compact line/codepoint diffs",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if verbose {
			cfg.Logging.Verbose = true
		}

		l, err := applog.New(cfg.Logging.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		requestID = uuid.New().String()
		logger = applog.WithRequestID(l, requestID)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "path to mdiff config file")

	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(undoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps the core package's error taxonomy to distinct process
// exit codes, so scripts driving mdiff can distinguish an apply-bounds
// violation from a corrupt envelope from a failed verification without
// parsing stderr.
func exitCodeFor(err error) int {
	var invalidRetain *multidiff.InvalidRetain
	var invalidDelete *multidiff.InvalidDelete
	var incomplete *multidiff.IncompleteApplication
	var invalidDiff *multidiff.InvalidDiff
	var encodingFailed *multidiff.EncodingFailed
	var decodingFailed *multidiff.DecodingFailed
	var verificationFailed *multidiff.VerificationFailed

	switch {
	case errors.As(err, &invalidRetain), errors.As(err, &invalidDelete),
		errors.As(err, &incomplete), errors.As(err, &invalidDiff):
		return 2
	case errors.As(err, &encodingFailed), errors.As(err, &decodingFailed):
		return 3
	case errors.As(err, &verificationFailed):
		return 4
	default:
		return 1
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mdiff.yaml"
	}
	return home + "/.config/mdiff/config.yaml"
}
