package parser

// DataBounds returns the last row and column (1-based) holding a non-empty
// cell, or zeros for an empty sheet.
func DataBounds(rows [][]string) (maxRow, maxCol int) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx+1 > maxRow {
				maxRow = rowIdx + 1
			}
			if colIdx+1 > maxCol {
				maxCol = colIdx + 1
			}
		}
	}
	return
}

// rowIsBlank reports whether every cell of row in [fromCol, toCol] is blank.
func rowIsBlank(g Grid, row, fromCol, toCol int) bool {
	for col := fromCol; col <= toCol; col++ {
		if !g.Value(row, col).IsBlank() {
			return false
		}
	}
	return true
}
