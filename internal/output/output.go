// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output decides where a finished report goes and writes it there.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Warnings printed when the requested destination is unusable. The report
// then goes to standard output.
const (
	WarnArgCount = "Podano niewłaściwą liczbę argumentów. Przechodzę w domyślny tryb wypisywania na ekran."
	WarnBadArgs  = "Podano niewłaściwe argumenty. Przechodzę w domyślny tryb wypisywania na ekran."
)

// reportPerm is the mode of written report files.
const reportPerm = 0o644

// Target is the report destination. An empty Path means standard output.
type Target struct {
	Path string
}

// Stdout reports whether the target is standard output.
func (t Target) Stdout() bool { return t.Path == "" }

// Resolve validates the requested output path. Only paths ending in ".txt"
// are accepted; extraArgs counts unexpected positional arguments. Any
// problem selects standard output and returns the warning to show.
func Resolve(path string, extraArgs int) (Target, string) {
	if extraArgs > 0 {
		return Target{}, WarnArgCount
	}
	if path == "" {
		return Target{}, ""
	}
	if !strings.HasSuffix(path, ".txt") {
		return Target{}, WarnBadArgs
	}
	return Target{Path: path}, ""
}

// Write delivers report to the target. Files are written through a
// temporary file in the same directory and renamed on success.
func (t Target) Write(stdout io.Writer, report []byte) error {
	if t.Stdout() {
		_, err := stdout.Write(report)
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(t.Path), ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// CreateTemp makes the file owner-only; reports are ordinary documents.
	writeErr := tmpFile.Chmod(reportPerm)
	if writeErr == nil {
		_, writeErr = tmpFile.Write(report)
	}
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing report: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, t.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
