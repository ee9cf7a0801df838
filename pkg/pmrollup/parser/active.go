package parser

import (
	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/models"
)

// Active Phases sheet columns.
const (
	colActiveProject = 1
	colActivePhase   = 2
	colActiveNumber  = 3
)

// MarkActivePhases flags every (project, phase) pair listed from startRow on.
// Rows naming an unknown project or phase are skipped and returned as
// unmatched.
func MarkActivePhases(g Grid, startRow int, reg *models.Registry) (marked int, unmatched []string) {
	for row := startRow; row <= g.MaxRow(); row++ {
		name := g.Value(row, colActiveProject)
		if name.IsBlank() {
			continue
		}
		key := models.PhaseKey{
			Name:   g.Value(row, colActivePhase).String(),
			Number: g.Value(row, colActiveNumber).String(),
		}

		p, ok := reg.Project(name.String())
		if !ok {
			unmatched = append(unmatched, name.String()+": "+key.String())
			continue
		}
		ph, ok := p.Phase(key)
		if !ok {
			unmatched = append(unmatched, name.String()+": "+key.String())
			continue
		}
		ph.Active = true
		marked++
	}
	return marked, unmatched
}
