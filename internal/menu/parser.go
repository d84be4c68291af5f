package menu

import "strings"

// Parse decodes a weekly menu workbook into a Document. It either parses
// every sheet or fails with ErrUnreadableInput; there is no partial result.
func Parse(data []byte) (*Document, error) {
	sheets, err := LoadWorkbook(data)
	if err != nil {
		return nil, err
	}
	return ParseSheets(sheets), nil
}

// ParseSheets builds a Document from already-decoded sheets. Sheets whose
// name contains "veg" feed the veg/non-veg list, all others the specials.
func ParseSheets(sheets []Sheet) *Document {
	doc := newDocument()

	for i, s := range sheets {
		doc.Sheets = append(doc.Sheets, s.Name)

		h := locateHeader(s, i == 0)
		if i == 0 {
			doc.Month = h.Month
		}

		days := segmentDays(s, h)
		if isVegSheet(s.Name) {
			doc.Menu.VegNonVeg = append(doc.Menu.VegNonVeg, days...)
		} else {
			doc.Menu.Special = append(doc.Menu.Special, days...)
		}
	}

	return doc
}

func isVegSheet(name string) bool {
	return strings.Contains(strings.ToLower(name), "veg")
}

// segmentDays walks the rows below the header, opening a block at every
// day-name row and feeding all four meal cells of each row to it.
func segmentDays(s Sheet, h header) []DayEntry {
	days := []DayEntry{}
	var acc *DayAccumulator

	for r := h.Row + 1; r < len(s.Rows); r++ {
		if dateCell := s.Cell(r, h.Layout.Dates); isDayStart(dateCell) {
			if acc != nil {
				days = append(days, acc.Finalize())
			}
			acc = NewDayAccumulator(parseDayLabel(dateCell.Text))
		}

		if acc == nil {
			continue
		}
		for _, m := range Meals {
			acc.Feed(m, s.Cell(r, h.Layout.Column(m)))
		}
	}

	if acc != nil {
		days = append(days, acc.Finalize())
	}

	return days
}
