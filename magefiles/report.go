//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Report builds the CLI and prints the publication report for an ORCID
// identifier, e.g. `mage report 0000-0002-1825-0097`.
func Report(orcidID string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), orcidID)
}

// ReportFile builds the CLI and writes the report for orcidID to path.
func ReportFile(orcidID, path string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), orcidID, "--output", path)
}
