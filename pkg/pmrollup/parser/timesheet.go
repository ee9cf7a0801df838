package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/models"
)

// Timesheet data columns (A..D).
const (
	colTSProject     = 1
	colTSPhaseName   = 2
	colTSPhaseNumber = 3
	colTSTask        = 4
)

// TimesheetLayout locates the date header and the data rows of a timesheet.
type TimesheetLayout struct {
	// HeaderRow holds one date per hours column.
	HeaderRow int
	// FirstDateCol is the first column scanned for dates.
	FirstDateCol int
	// StartRow is the first data row.
	StartRow int
}

// DateColumn maps an hours column to the day it records.
type DateColumn struct {
	Col  int
	Date time.Time
}

// ReadDateHeader collects the date cells of row from fromCol to the last
// populated column. Non-date cells are skipped; each date keeps its own column.
func ReadDateHeader(g Grid, row, fromCol int) []DateColumn {
	var dates []DateColumn
	for col := fromCol; col <= g.MaxCol(); col++ {
		v := g.Value(row, col)
		if v.Kind != models.KindDate {
			continue
		}
		dates = append(dates, DateColumn{Col: col, Date: v.Date})
	}
	return dates
}

// TimesheetStats summarizes one timesheet scan.
type TimesheetStats struct {
	Rows    int
	Records int
	// Ignored counts non-blank hours cells that are not numbers or numeric text.
	Ignored int
}

// ReadTimesheet appends person's logged hours to ts.
func ReadTimesheet(g Grid, layout TimesheetLayout, person string, ts *models.Timesheets) TimesheetStats {
	var stats TimesheetStats
	dates := ReadDateHeader(g, layout.HeaderRow, layout.FirstDateCol)

	for row := layout.StartRow; row <= g.MaxRow(); row++ {
		key, ok := timesheetKey(g, row)
		if !ok {
			continue
		}
		stats.Rows++

		for _, dc := range dates {
			hours := g.Value(row, dc.Col)
			if !hours.Truthy() {
				continue
			}
			n, ok := hoursOf(hours)
			if !ok {
				stats.Ignored++
				continue
			}
			ts.Add(key, person, models.Record{Date: dc.Date, Hours: n})
			stats.Records++
		}
	}
	return stats
}

// hoursOf resolves a number cell, or a text cell holding a number.
func hoursOf(v models.Value) (float64, bool) {
	switch v.Kind {
	case models.KindNumber:
		return v.Number, true
	case models.KindText:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		return n, err == nil
	}
	return 0, false
}

// timesheetKey reads the task key of row; all four parts must be present.
func timesheetKey(g Grid, row int) (models.TaskKey, bool) {
	parts := [4]models.Value{
		g.Value(row, colTSProject),
		g.Value(row, colTSPhaseName),
		g.Value(row, colTSPhaseNumber),
		g.Value(row, colTSTask),
	}
	for _, v := range parts {
		if v.IsBlank() {
			return models.TaskKey{}, false
		}
	}
	return models.TaskKey{
		Project:     parts[0].String(),
		PhaseName:   parts[1].String(),
		PhaseNumber: parts[2].String(),
		Task:        parts[3].String(),
	}, true
}
