package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corewald/multidiff"
	"github.com/corewald/multidiff/internal/config"
)

func TestRunDiffThenRunApplyRoundTrips(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "source.txt")
	dstPath := filepath.Join(dir, "destination.txt")
	diffPath := filepath.Join(dir, "out.diff")
	resultPath := filepath.Join(dir, "result.txt")

	source := "line1\nline2\nline3\n"
	destination := "line1\nline3\n"
	if err := os.WriteFile(srcPath, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dstPath, []byte(destination), 0644); err != nil {
		t.Fatal(err)
	}

	diffAlgorithm = ""
	diffNoMeta = false
	diffOut = diffPath
	if err := runDiff(&cobra.Command{}, []string{srcPath, dstPath}); err != nil {
		t.Fatalf("runDiff failed: %v", err)
	}

	applyAllowTruncated = false
	applySmart = false
	applyOut = resultPath
	if err := runApply(&cobra.Command{}, []string{diffPath, srcPath}); err != nil {
		t.Fatalf("runApply failed: %v", err)
	}

	got, err := os.ReadFile(resultPath)
	if err != nil {
		t.Fatalf("result file missing: %v", err)
	}
	if string(got) != destination {
		t.Fatalf("got %q, want %q", got, destination)
	}
}

func TestRunApplySmartRelocatesExcerpt(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	dir := t.TempDir()
	diffPath := filepath.Join(dir, "out.diff")
	documentPath := filepath.Join(dir, "document.txt")
	resultPath := filepath.Join(dir, "result.txt")

	startLine := 2
	encoded, err := multidiff.CreateBase64Diff("foo\nbar\n", "foo\nBAZ\n", multidiff.CreateOptions{
		IncludeMetadata: true,
		SourceStartLine: &startLine,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(diffPath, []byte(encoded), 0644); err != nil {
		t.Fatal(err)
	}
	document := "A\nB\nfoo\nbar\nC\n"
	if err := os.WriteFile(documentPath, []byte(document), 0644); err != nil {
		t.Fatal(err)
	}

	applyAllowTruncated = false
	applySmart = true
	applyOut = resultPath
	if err := runApply(&cobra.Command{}, []string{diffPath, documentPath}); err != nil {
		t.Fatalf("runApply failed: %v", err)
	}

	got, err := os.ReadFile(resultPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "A\nB\nfoo\nBAZ\nC\n"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
