// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
)

// stdio is the path meaning stdin or stdout.
const stdio = "-"

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openInput(path string) (io.ReadCloser, error) {
	if path == stdio || path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == stdio || path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

// writeOutput copies r to path, creating or truncating the file only now.
func writeOutput(path string, r io.Reader) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
