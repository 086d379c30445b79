// Package cmd is the top-level "driver" package for the pasnav tool: it
// contains all the functionality for parsing command-line arguments,
// running project loads, and executing queries against the loaded model.
package cmd

import (
	"path/filepath"
	"time"

	"pasnav/filesys"
	"pasnav/loader"
	"pasnav/model"
	"pasnav/report"
)

// Driver holds the state one command execution works against.
type Driver struct {
	// rootAbsPath is the absolute path to the analysis root directory.
	rootAbsPath string

	// fs is the scanned source tree of the most recent load.
	fs *filesys.FileSystem

	// proj is the most recently loaded project.
	proj *model.Project
}

// NewDriver creates a new driver rooted at the given path.
func NewDriver(rootRelPath string) *Driver {
	// calculate the absolute path to the analysis root.
	rootAbsPath, err := filepath.Abs(rootRelPath)
	if err != nil {
		report.ReportFatal("error calculating absolute path: %s", err.Error())
		return nil
	}

	return &Driver{rootAbsPath: rootAbsPath}
}

// Load scans the root directory and analyzes everything under it.  Each
// call rebuilds the file system view and the project from scratch, so a
// later call observes files created or deleted since the previous one.
func (d *Driver) Load() *model.Project {
	cfg := filesys.LoadConfig(d.rootAbsPath)

	fs, err := filesys.Load(d.rootAbsPath, cfg)
	if err != nil {
		report.ReportFatal("error scanning %s: %s", d.rootAbsPath, err.Error())
		return nil
	}
	d.fs = fs

	report.ReportLoadHeader(d.rootAbsPath, len(fs.Sources()))

	start := time.Now()
	d.proj = loader.Load(fs)
	report.ReportLoadFinished(d.proj.FileCount(), d.proj.SymCount(), d.proj.Sloc, time.Since(start))

	return d.proj
}

// DeclAt returns the declaration referenced at the given position, or nil
// when the position touches no resolved name.
func (d *Driver) DeclAt(file string, row, col int) *model.Declaration {
	return d.proj.FindDeclAt(d.absSourcePath(file), row, col)
}

// absSourcePath resolves a user-supplied file argument: absolute paths
// pass through, anything else is taken relative to the analysis root.
func (d *Driver) absSourcePath(file string) string {
	if filepath.IsAbs(file) {
		return file
	}

	return filepath.Join(d.rootAbsPath, file)
}

// Rel returns the root-relative form of an absolute path for display.
func (d *Driver) Rel(path string) string {
	return d.fs.Rel(path)
}
