package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corewald/multidiff"
	"github.com/corewald/multidiff/internal/config"
)

func TestRunDiffWritesEncodedDiffToFile(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "source.txt")
	dstPath := filepath.Join(dir, "destination.txt")
	outPath := filepath.Join(dir, "out.diff")

	if err := os.WriteFile(srcPath, []byte("Hello, world!"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dstPath, []byte("Hello, Swift!"), 0644); err != nil {
		t.Fatal(err)
	}

	diffAlgorithm = ""
	diffNoMeta = false
	diffOut = outPath

	if err := runDiff(&cobra.Command{}, []string{srcPath, dstPath}); err != nil {
		t.Fatalf("runDiff failed: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("output file is empty")
	}
}

func TestRunDiffNoMetadataOmitsMetadataBlock(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "source.txt")
	dstPath := filepath.Join(dir, "destination.txt")
	outPath := filepath.Join(dir, "out.diff")

	if err := os.WriteFile(srcPath, []byte("Hello, world!"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dstPath, []byte("Hello, Swift!"), 0644); err != nil {
		t.Fatal(err)
	}

	diffAlgorithm = ""
	diffNoMeta = true
	diffOut = outPath

	if err := runDiff(&cobra.Command{}, []string{srcPath, dstPath}); err != nil {
		t.Fatalf("runDiff failed: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	diff, err := multidiff.DecodeBase64(strings.TrimSpace(string(out)))
	if err != nil {
		t.Fatalf("failed to decode diff: %v", err)
	}
	if diff.Metadata != nil {
		t.Fatalf("expected no metadata block with --no-metadata, got %+v", diff.Metadata)
	}
}
