package menu

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

// Cell is a single spreadsheet value. Only the field matching Kind is set.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

func TextCell(s string) Cell        { return Cell{Kind: CellText, Text: s} }
func NumberCell(f float64) Cell     { return Cell{Kind: CellNumber, Number: f} }
func DateCell(t time.Time) Cell     { return Cell{Kind: CellDate, Date: t} }
func (c Cell) IsEmpty() bool        { return c.Kind == CellEmpty }
func (c Cell) isText() bool         { return c.Kind == CellText }
func (c Cell) trimmed() string      { return strings.TrimSpace(c.String()) }
func (c Cell) lowerTrimmed() string { return strings.ToLower(c.trimmed()) }

// String renders the cell the way it reads in the sheet.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Date.Format("2006-01-02")
	}
	return ""
}

// blank reports whether the cell contributes nothing to a meal column.
// Numeric zero counts as blank, matching how menus leave filler zeros.
func (c Cell) blank() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellNumber:
		return c.Number == 0
	case CellText:
		return c.Text == ""
	}
	return false
}

// Serial day numbers in this range are read as dates (roughly 2009-2036).
const (
	minDateSerial = 40000
	maxDateSerial = 50000
)

var (
	spreadsheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

	leadingNumberRe = regexp.MustCompile(`^[\s\p{Zs}]*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	isoDateRe       = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	dmyDateRe       = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})`)
)

func inSerialRange(f float64) bool {
	return f >= minDateSerial && f <= maxDateSerial
}

// leadingFloat parses the numeric prefix of s, ignoring trailing text.
func leadingFloat(s string) (float64, bool) {
	m := leadingNumberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// serialDay converts a spreadsheet day serial into its day of month.
func serialDay(serial float64) int {
	d := time.Duration(serial * float64(24*time.Hour))
	return spreadsheetEpoch.Add(d).Day()
}

// IsDate reports whether a meal-column cell marks a calendar date rather
// than a menu item.
func (c Cell) IsDate() bool {
	switch c.Kind {
	case CellNumber:
		return inSerialRange(c.Number)
	case CellDate:
		return !c.Date.IsZero()
	case CellText:
		if f, ok := leadingFloat(c.Text); ok && inSerialRange(f) {
			return true
		}
		return isoDateRe.MatchString(c.Text) || dmyDateRe.MatchString(c.Text)
	}
	return false
}

// DayOfMonth extracts the day from a date cell. ok is false when the cell
// is not a date or yields no usable day.
func (c Cell) DayOfMonth() (day int, ok bool) {
	switch c.Kind {
	case CellNumber:
		if inSerialRange(c.Number) {
			day = serialDay(c.Number)
		}
	case CellDate:
		if !c.Date.IsZero() {
			day = c.Date.Day()
		}
	case CellText:
		if f, isNum := leadingFloat(c.Text); isNum && inSerialRange(f) {
			day = serialDay(f)
		} else if m := isoDateRe.FindStringSubmatch(c.Text); m != nil {
			day, _ = strconv.Atoi(m[3])
		} else if m := dmyDateRe.FindStringSubmatch(c.Text); m != nil {
			day, _ = strconv.Atoi(m[1])
		}
	}
	return day, day > 0
}
