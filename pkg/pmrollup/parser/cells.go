package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/models"
	"github.com/xuri/excelize/v2"
)

// Grid is read access to a sheet's cells. Row and column indexes are 1-based.
type Grid interface {
	// MaxRow is the last populated row.
	MaxRow() int
	// MaxCol is the last populated column.
	MaxCol() int
	// Value returns the cell at (row, col), or a blank value outside the data.
	Value(row, col int) models.Value
}

// Sheet is a Grid backed by an excelize worksheet.
type Sheet struct {
	f        *excelize.File
	name     string
	rows     [][]string
	maxRow   int
	maxCol   int
	date1904 bool
	isDate   map[int]bool
}

// OpenSheet reads every raw cell of sheetName. The workbook must stay open
// while the Sheet is in use.
func OpenSheet(f *excelize.File, sheetName string) (*Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	s := &Sheet{
		f:      f,
		name:   sheetName,
		rows:   rows,
		isDate: make(map[int]bool),
	}
	s.maxRow, s.maxCol = DataBounds(rows)

	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		s.date1904 = *props.Date1904
	}
	return s, nil
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// MaxRow implements Grid.
func (s *Sheet) MaxRow() int { return s.maxRow }

// MaxCol implements Grid.
func (s *Sheet) MaxCol() int { return s.maxCol }

// Value implements Grid.
func (s *Sheet) Value(row, col int) models.Value {
	if row < 1 || col < 1 || row > len(s.rows) || col > len(s.rows[row-1]) {
		return models.Blank()
	}
	raw := s.rows[row-1][col-1]
	if raw == "" {
		return models.Blank()
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.TextValue(raw)
	}
	typ, err := s.f.GetCellType(s.name, cell)
	if err != nil {
		return parseValue(raw)
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.TextValue(raw)
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "TRUE") {
			return models.TextValue("True")
		}
		return models.Blank()
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return models.DateValue(t)
		}
		return models.TextValue(raw)
	}

	v := parseValue(raw)
	if v.Kind == models.KindNumber && s.hasDateFormat(cell) {
		if t, err := excelize.ExcelDateToTime(v.Number, s.date1904); err == nil {
			return models.DateValue(t)
		}
	}
	return v
}

// hasDateFormat reports whether the cell's number format renders a date.
func (s *Sheet) hasDateFormat(cell string) bool {
	styleID, err := s.f.GetCellStyle(s.name, cell)
	if err != nil || styleID == 0 {
		return false
	}
	if known, ok := s.isDate[styleID]; ok {
		return known
	}

	var isDate bool
	if style, err := s.f.GetStyle(styleID); err == nil && style != nil {
		isDate = IsDateFormat(style.NumFmt, style.CustomNumFmt)
	}
	s.isDate[styleID] = isDate
	return isDate
}

// IsDateFormat reports whether a built-in number format id or a custom
// format code displays a calendar date.
func IsDateFormat(numFmt int, custom *string) bool {
	switch {
	case numFmt >= 14 && numFmt <= 22,
		numFmt >= 27 && numFmt <= 36,
		numFmt >= 50 && numFmt <= 58:
		return true
	}
	return custom != nil && isDateFormatCode(*custom)
}

// isDateFormatCode looks for day or year tokens outside quoted literals,
// escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			inQuote = c != '"'
		case inBracket:
			inBracket = c != ']'
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\':
			i++
		case c == 'd', c == 'D', c == 'y', c == 'Y':
			return true
		}
	}
	return false
}

// parseISODate parses the ISO 8601 text stored in t="d" cells.
func parseISODate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseValue resolves a raw cell string as a number, falling back to text.
func parseValue(s string) models.Value {
	if strings.TrimSpace(s) == "" {
		return models.TextValue(s)
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return models.NumberValue(n)
	}
	return models.TextValue(s)
}
