package pmrollup

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound indicates the master workbook does not exist.
var ErrSourceNotFound = errors.New("source not found")

// ErrSheetNotFound indicates an opened workbook lacks a required sheet.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrOptionalSourceMissing marks an absent per-project or per-person
// workbook. It is reported, never returned from Run.
var ErrOptionalSourceMissing = errors.New("optional source missing")

// ErrSinkWrite indicates the export destination cannot be written.
var ErrSinkWrite = errors.New("cannot write output")

// LoadError represents a failure while reading one workbook.
type LoadError struct {
	Path  string
	Sheet string
	Stage string // "registry", "wbs", "active", "timesheet", "export"
	Err   error
}

func (e *LoadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%s: %s (sheet %q): %v", e.Stage, e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(stage, path, sheet string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
