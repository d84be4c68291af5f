package menu

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dayStartRe = regexp.MustCompile(`(?i)^(Mon|Tue|Wed|Thu|Fri|Sat|Sun)`)
	// [\s\p{Zs}] so pasted no-break spaces separate like plain ones
	dayLabelRe = regexp.MustCompile(`(?i)^(Mon|Tue|Wed|Thu|Fri|Sat|Sun)[a-z]*[\s\p{Zs}]*([\d,\s\p{Zs}]+)`)
	dateListRe = regexp.MustCompile(`[\s\p{Zs}]*,[\s\p{Zs}]*`)
	leadingInt = regexp.MustCompile(`^\d+`)

	dayNames = map[string]string{
		"sun": "Sunday",
		"mon": "Monday",
		"tue": "Tuesday",
		"wed": "Wednesday",
		"thu": "Thursday",
		"fri": "Friday",
		"sat": "Saturday",
	}
)

// isDayStart reports whether a dates-column cell opens a new day block.
func isDayStart(c Cell) bool {
	return c.isText() && dayStartRe.MatchString(strings.TrimSpace(c.Text))
}

// parseDayLabel turns a label like "Mon 2,16" into an entry shell for
// Monday on the 2nd and 16th. Labels that do not fit the pattern are kept
// verbatim with no dates.
func parseDayLabel(label string) DayEntry {
	clean := strings.TrimSpace(label)
	entry := DayEntry{
		Day:     clean,
		Dates:   []int{},
		RawDate: clean,
	}

	m := dayLabelRe.FindStringSubmatch(clean)
	if m == nil {
		return entry
	}

	if name, ok := dayNames[strings.ToLower(m[1])]; ok {
		entry.Day = name
	}
	for _, tok := range dateListRe.Split(m[2], -1) {
		digits := leadingInt.FindString(strings.TrimSpace(tok))
		if digits == "" {
			continue
		}
		if n, err := strconv.Atoi(digits); err == nil {
			entry.Dates = append(entry.Dates, n)
		}
	}

	return entry
}
