package menu

import (
	"regexp"
	"strings"
)

const (
	headerScanRows    = 10
	fallbackHeaderRow = 2
)

var monthTitleRe = regexp.MustCompile(`(?i)MONTH[\s\p{Zs}]+OF[\s\p{Zs}]*[-–][\s\p{Zs}]*(\w+)[\s\p{Zs}]*[-–]?[\s\p{Zs}]*(\d{4})?`)

// ColumnLayout maps each column role to its index in the sheet.
type ColumnLayout struct {
	Dates     int
	Breakfast int
	Lunch     int
	Snacks    int
	Dinner    int
}

// DefaultLayout is used when a sheet carries no recognizable header row.
func DefaultLayout() ColumnLayout {
	return ColumnLayout{
		Dates:     0,
		Breakfast: 1,
		Lunch:     2,
		Snacks:    3,
		Dinner:    4,
	}
}

// Column returns the column index holding meal m.
func (l ColumnLayout) Column(m Meal) int {
	switch m {
	case Breakfast:
		return l.Breakfast
	case Lunch:
		return l.Lunch
	case Snacks:
		return l.Snacks
	case Dinner:
		return l.Dinner
	}
	return -1
}

// header is what the first rows of a sheet tell us about its layout.
type header struct {
	Row    int
	Layout ColumnLayout
	Month  string
}

// locateHeader scans the leading rows of a sheet for the month title
// (when extractMonth is set) and the Breakfast/Lunch header row.
func locateHeader(s Sheet, extractMonth bool) header {
	h := header{Row: -1, Layout: DefaultLayout()}

	for i := 0; i < headerScanRows && i < len(s.Rows); i++ {
		row := s.Rows[i]
		if len(row) == 0 {
			continue
		}

		if extractMonth && h.Month == "" {
			if first := row[0]; first.isText() {
				h.Month = parseMonthTitle(first.Text)
			}
		}

		if isHeaderRow(row) {
			h.Row = i
			h.Layout = mapColumns(row, h.Layout)
			break
		}
	}

	if h.Row == -1 {
		h.Row = fallbackHeaderRow
	}

	return h
}

// parseMonthTitle turns "MONTH OF – February – 2026" into "February 2026".
func parseMonthTitle(s string) string {
	m := monthTitleRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1] + " " + m[2])
}

func isHeaderRow(row []Cell) bool {
	parts := make([]string, len(row))
	for i, c := range row {
		parts[i] = c.String()
	}
	joined := strings.ToLower(strings.Join(parts, " "))
	return strings.Contains(joined, "breakfast") && strings.Contains(joined, "lunch")
}

// mapColumns assigns roles by keyword. Every matching cell overwrites the
// previous assignment, so the rightmost match wins.
func mapColumns(row []Cell, l ColumnLayout) ColumnLayout {
	for idx, c := range row {
		text := c.lowerTrimmed()
		if strings.Contains(text, "date") {
			l.Dates = idx
		}
		if strings.Contains(text, "breakfast") {
			l.Breakfast = idx
		}
		if strings.Contains(text, "lunch") {
			l.Lunch = idx
		}
		if strings.Contains(text, "snack") {
			l.Snacks = idx
		}
		if strings.Contains(text, "dinner") {
			l.Dinner = idx
		}
	}
	return l
}
