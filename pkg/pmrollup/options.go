// Package pmrollup consolidates project registry, work-breakdown and timesheet
// workbooks into one project tree.
package pmrollup

import (
	"fmt"

	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/parser"
)

// Default file and sheet names.
const (
	DefaultMasterFile = "Resource & Projects.xlsx"
	DefaultOutputFile = "output.xml"

	SheetProjects     = "Projects List"
	SheetPersonnel    = "Personnel List"
	SheetActivePhases = "Active Phases"
	SheetWBS          = "WBS"
	SheetTimesheet    = "Sheet1"
)

// Options configures where a run looks for its sources.
type Options struct {
	// MasterFile is the registry workbook, relative to the run directory.
	MasterFile string
	// WBSPattern is a fmt pattern taking the zero-padded project code.
	WBSPattern string
	// TimesheetPattern is a fmt pattern taking the person's name.
	TimesheetPattern string

	// RegistryStartRow is the first data row of the three master sheets.
	RegistryStartRow int
	// WBSStartRow is the first data row of a WBS sheet.
	WBSStartRow int
	// Timesheet locates the header and data rows of a timesheet.
	Timesheet parser.TimesheetLayout

	// DedupePersonnel loads each person's timesheet once even if the
	// personnel list names them several times. By default every personnel
	// row loads its timesheet again.
	DedupePersonnel bool
}

// DefaultOptions returns the fixed layout of the registry workbooks.
func DefaultOptions() Options {
	return Options{
		MasterFile:       DefaultMasterFile,
		WBSPattern:       "RD-%s-WBS.xlsx",
		TimesheetPattern: "Timesheet-%s.xlsx",
		RegistryStartRow: 6,
		WBSStartRow:      7,
		Timesheet: parser.TimesheetLayout{
			HeaderRow:    4,
			FirstDateCol: 5,
			StartRow:     8,
		},
	}
}

// WBSFile returns the work-breakdown file name for a project code.
func (o Options) WBSFile(code string) string {
	return fmt.Sprintf(o.WBSPattern, code)
}

// TimesheetFile returns the timesheet file name for a person.
func (o Options) TimesheetFile(person string) string {
	return fmt.Sprintf(o.TimesheetPattern, person)
}
