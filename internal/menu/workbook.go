package menu

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrUnreadableInput is returned when the upload is not a spreadsheet
// container excelize can open.
var ErrUnreadableInput = errors.New("unreadable spreadsheet")

// Sheet is one named grid of a workbook, rows in sheet order.
type Sheet struct {
	Name string
	Rows [][]Cell
}

// Cell returns the cell at row r, column c, or an empty cell when the
// position lies outside the stored grid.
func (s Sheet) Cell(r, c int) Cell {
	if r < 0 || r >= len(s.Rows) || c < 0 || c >= len(s.Rows[r]) {
		return Cell{}
	}
	return s.Rows[r][c]
}

var nativeDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// LoadWorkbook decodes an xlsx buffer into its sheets in workbook order.
func LoadWorkbook(data []byte) ([]Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableInput, err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := readSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnreadableInput, name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}

	return sheets, nil
}

// readSheet reads raw (unformatted) values so date-formatted numbers keep
// their serial form, then uses the stored cell type to build typed cells.
func readSheet(f *excelize.File, sheet string) ([][]Cell, error) {
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	rows := make([][]Cell, len(raw))
	for r, values := range raw {
		row := make([]Cell, len(values))
		for c, v := range values {
			if v == "" {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheet, name)
			if err != nil {
				return nil, err
			}
			row[c] = typedCell(typ, v)
		}
		rows[r] = row
	}

	return rows, nil
}

func typedCell(typ excelize.CellType, v string) Cell {
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return NumberCell(n)
		}
	case excelize.CellTypeDate:
		for _, layout := range nativeDateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
				return DateCell(t)
			}
		}
	}
	return TextCell(v)
}
