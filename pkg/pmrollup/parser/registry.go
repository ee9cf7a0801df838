// Package parser reads the registry, work-breakdown and timesheet sheets.
package parser

import (
	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/models"
)

// Registry sheet columns.
const (
	colRegistryName = 1
	colRegistryCode = 2
)

// ReadProjects adds every project listed from startRow on to reg.
// Rows with a blank name are skipped; the scan continues past them.
func ReadProjects(g Grid, startRow int, reg *models.Registry) int {
	count := 0
	for row := startRow; row <= g.MaxRow(); row++ {
		name := g.Value(row, colRegistryName)
		if name.IsBlank() {
			continue
		}
		reg.PutProject(models.NewProject(name.String(), g.Value(row, colRegistryCode).String()))
		count++
	}
	return count
}

// ReadPersonnel returns every non-blank name listed from startRow on,
// duplicates included.
func ReadPersonnel(g Grid, startRow int) []string {
	var names []string
	for row := startRow; row <= g.MaxRow(); row++ {
		name := g.Value(row, colRegistryName)
		if name.IsBlank() {
			continue
		}
		names = append(names, name.String())
	}
	return names
}
