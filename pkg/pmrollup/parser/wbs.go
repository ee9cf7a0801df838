package parser

import (
	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/models"
)

// WBS sheet columns (A..I).
const (
	colWBSPhaseName    = 1
	colWBSNumberOrTask = 2
	colWBSResponsible  = 3
	colWBSFirst        = 4
	colWBSSecond       = 5
	colWBSThird        = 6
	colWBSStatus       = 7
	colWBSFinish       = 8
	colWBSRequired     = 9
)

// RowKind classifies a work-breakdown row.
type RowKind int

const (
	// RowBlank has nothing in columns A..I.
	RowBlank RowKind = iota
	// RowPhase has a phase name in column A.
	RowPhase
	// RowTask has column A blank and belongs to the phase above it.
	RowTask
)

func (k RowKind) String() string {
	switch k {
	case RowPhase:
		return "phase"
	case RowTask:
		return "task"
	}
	return "blank"
}

// WBSRow is a parsed work-breakdown row. Exactly one of Phase and Task is
// set, matching Kind; both are nil for RowBlank.
type WBSRow struct {
	Kind  RowKind
	Phase *models.Phase
	Task  *models.Task
}

// ClassifyRow parses one work-breakdown row.
func ClassifyRow(g Grid, row int) WBSRow {
	text := func(col int) string { return g.Value(row, col).String() }

	if !g.Value(row, colWBSPhaseName).IsBlank() {
		return WBSRow{Kind: RowPhase, Phase: &models.Phase{
			Name:              text(colWBSPhaseName),
			Number:            text(colWBSNumberOrTask),
			ResponsiblePerson: text(colWBSResponsible),
			DateOfFinishing:   text(colWBSFinish),
			RequiredTime:      text(colWBSRequired),
		}}
	}
	if rowIsBlank(g, row, colWBSPhaseName, colWBSRequired) {
		return WBSRow{Kind: RowBlank}
	}
	return WBSRow{Kind: RowTask, Task: &models.Task{
		Name:            text(colWBSNumberOrTask),
		FirstCoworker:   text(colWBSFirst),
		SecondCoworker:  text(colWBSSecond),
		ThirdCoworker:   text(colWBSThird),
		Status:          text(colWBSStatus),
		DateOfFinishing: text(colWBSFinish),
		RequiredTime:    text(colWBSRequired),
	}}
}

// WBSStats summarizes one work-breakdown scan.
type WBSStats struct {
	Phases int
	Tasks  int
	// Orphans counts task rows seen before any phase row.
	Orphans int
}

// ReadWBS attaches the phases and tasks listed from startRow on to p.
func ReadWBS(g Grid, startRow int, p *models.Project) WBSStats {
	var (
		stats WBSStats
		open  *models.Phase
	)
	for row := startRow; row <= g.MaxRow(); row++ {
		r := ClassifyRow(g, row)
		switch r.Kind {
		case RowPhase:
			p.PutPhase(r.Phase)
			open = r.Phase
			stats.Phases++
		case RowTask:
			if open == nil {
				stats.Orphans++
				continue
			}
			open.Tasks = append(open.Tasks, r.Task)
			stats.Tasks++
		}
	}
	return stats
}
