package parser

import (
	"time"

	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/models"
)

// memGrid is an in-memory Grid. Cells hold nil, string, int, float64 or
// time.Time; rows and columns are 1-based.
type memGrid map[int][]any

func (g memGrid) MaxRow() int {
	max := 0
	for row := range g {
		if row > max {
			max = row
		}
	}
	return max
}

func (g memGrid) MaxCol() int {
	max := 0
	for _, cells := range g {
		if len(cells) > max {
			max = len(cells)
		}
	}
	return max
}

func (g memGrid) Value(row, col int) models.Value {
	cells := g[row]
	if col < 1 || col > len(cells) {
		return models.Blank()
	}
	switch v := cells[col-1].(type) {
	case string:
		return models.TextValue(v)
	case int:
		return models.NumberValue(float64(v))
	case float64:
		return models.NumberValue(v)
	case time.Time:
		return models.DateValue(v)
	}
	return models.Blank()
}
