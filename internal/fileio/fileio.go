// Package fileio is a thin wrapper around reading and writing the plain
// text/diff files the mdiff CLI operates on. It does not duplicate the
// codec in the root package; it only moves bytes to and from disk (or
// stdin/stdout when a path is "-").
package fileio

import (
	"io"
	"os"
)

// ReadAll reads path fully, or stdin when path is "-".
func ReadAll(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// WriteAll writes data to path, or stdout when path is "-".
func WriteAll(path string, data []byte, stdout io.Writer) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
