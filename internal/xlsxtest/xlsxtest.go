// Package xlsxtest builds workbook fixtures for tests.
package xlsxtest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Book is a workbook under construction. Sheets are created on first use.
type Book struct {
	t      testing.TB
	f      *excelize.File
	sheets map[string]bool
}

// New starts an empty workbook that is closed when the test ends.
func New(t testing.TB) *Book {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	return &Book{t: t, f: f, sheets: make(map[string]bool)}
}

// Row writes values into row from column A on. Nil values leave the cell empty.
func (b *Book) Row(sheet string, row int, values ...any) *Book {
	b.t.Helper()
	for i, v := range values {
		b.At(sheet, row, i+1, v)
	}
	return b
}

// At writes one value at (row, col). A nil value only ensures the sheet exists.
func (b *Book) At(sheet string, row, col int, v any) *Book {
	b.t.Helper()
	b.ensureSheet(sheet)
	if v == nil {
		return b
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	require.NoError(b.t, err)
	require.NoError(b.t, b.f.SetCellValue(sheet, cell, v))
	return b
}

// Sheet ensures an empty sheet exists.
func (b *Book) Sheet(sheet string) *Book {
	b.t.Helper()
	b.ensureSheet(sheet)
	return b
}

// SaveIn writes the workbook to dir/name and returns the path.
func (b *Book) SaveIn(dir, name string) string {
	b.t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(b.t, b.f.SaveAs(path))
	return path
}

func (b *Book) ensureSheet(sheet string) {
	if b.sheets[sheet] {
		return
	}
	if len(b.sheets) == 0 {
		if sheet != "Sheet1" {
			require.NoError(b.t, b.f.SetSheetName("Sheet1", sheet))
		}
	} else {
		_, err := b.f.NewSheet(sheet)
		require.NoError(b.t, err)
	}
	b.sheets[sheet] = true
}
