// Package models defines the project tree and timesheet index assembled by a run.
package models

import (
	"strconv"
	"strings"
	"time"
)

// Kind is the resolved type of a spreadsheet cell.
type Kind int

const (
	// KindBlank is an empty or missing cell.
	KindBlank Kind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a numeric cell without a date format.
	KindNumber
	// KindDate is a numeric cell carrying a date format, or an ISO date cell.
	KindDate
)

// Value represents a single cell read from a sheet.
type Value struct {
	// Kind is the resolved cell type.
	Kind Kind
	// Text holds the cell text for KindText.
	Text string
	// Number holds the numeric value for KindNumber.
	Number float64
	// Date holds the calendar value for KindDate.
	Date time.Time
}

// Blank returns the empty value.
func Blank() Value { return Value{} }

// TextValue wraps a string.
func TextValue(s string) Value {
	if s == "" {
		return Blank()
	}
	return Value{Kind: KindText, Text: s}
}

// NumberValue wraps a number.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// DateValue wraps a date.
func DateValue(t time.Time) Value { return Value{Kind: KindDate, Date: t} }

// IsBlank reports whether the cell holds nothing but whitespace.
func (v Value) IsBlank() bool {
	switch v.Kind {
	case KindBlank:
		return true
	case KindText:
		return strings.TrimSpace(v.Text) == ""
	}
	return false
}

// Truthy reports whether the cell counts as a present value.
// Blank cells and numeric zero are not truthy.
func (v Value) Truthy() bool {
	if v.IsBlank() {
		return false
	}
	if v.Kind == KindNumber {
		return v.Number != 0
	}
	return true
}

// String renders the value as export text.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return FormatNumber(v.Number)
	case KindDate:
		return FormatDate(v.Date)
	}
	return ""
}

// FormatNumber renders n in its shortest decimal form ("3", "2.5").
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatDate renders t as YYYY-MM-DD, keeping the time of day only when set.
func FormatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.DateTime)
}

// ZeroPad left-pads s with zeros to width, keeping a leading sign in front.
func ZeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	return sign + strings.Repeat("0", width-len(sign)-len(s)) + s
}
