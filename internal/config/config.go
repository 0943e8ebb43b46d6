// Package config holds the CLI options. The tool is configured entirely by
// flags: no environment variables, no config file, no state between runs.
package config

import (
	"errors"
	"fmt"
	"os"
)

// DefaultExportDir is where the star-schema CSVs land when --export-dir is
// not given.
const DefaultExportDir = "exports"

// Options are the resolved CLI settings for one run.
type Options struct {
	InputPath string
	ExportDir string
	Verbose   bool
}

// Validate checks that the options describe a runnable job: an existing,
// regular input file and a non-empty export directory.
func (o *Options) Validate() error {
	if o.InputPath == "" {
		return errors.New("input path is required")
	}
	info, err := os.Stat(o.InputPath)
	if err != nil {
		return fmt.Errorf("input path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory, expected a CSV file", o.InputPath)
	}
	if o.ExportDir == "" {
		o.ExportDir = DefaultExportDir
	}
	return nil
}
