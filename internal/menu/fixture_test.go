package menu

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"
)

type sheetFixture struct {
	name string
	rows [][]interface{}
}

// buildWorkbook writes the fixtures into an xlsx buffer. nil values leave
// the cell unset.
func buildWorkbook(t *testing.T, sheets ...sheetFixture) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("new sheet %q: %v", s.name, err)
		}

		for r, row := range s.rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					t.Fatalf("cell name: %v", err)
				}
				if err := f.SetCellValue(s.name, cell, v); err != nil {
					t.Fatalf("set %s!%s: %v", s.name, cell, err)
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// weeklySheet is a typical two-day sheet with the title in row 1 and the
// header in row 3.
func weeklySheet(name string) sheetFixture {
	return sheetFixture{
		name: name,
		rows: [][]interface{}{
			{"MONTH OF – February – 2026"},
			{},
			{"Dates", "Breakfast", "Lunch", "Snacks", "Dinner"},
			{"Mon 2,16", "Idli", "Rice", "Samosa", "Roti"},
			{nil, 46069, "Dal", nil, "Paneer"},
			{nil, "Dosa", nil, "", "Roti"},
			{"Tue 3,17", "Poha", "Rajma", "Tea", "Khichdi"},
		},
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// withNativeDateCell rewrites the numeric cell ref of the first sheet, which
// must hold marker, into an ISO 8601 cell (t="d"). excelize itself always
// writes dates as serials, so the workbook XML is patched directly.
func withNativeDateCell(t *testing.T, data []byte, ref string, marker int, iso string) []byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open workbook zip: %v", err)
	}

	cellRe := regexp.MustCompile(`<c r="` + ref + `"[^>]*><v>` + strconv.Itoa(marker) + `</v></c>`)
	replacement := `<c r="` + ref + `" t="d"><v>` + iso + `</v></c>`

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	patched := false

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}

		if f.Name == "xl/worksheets/sheet1.xml" && cellRe.Match(content) {
			content = cellRe.ReplaceAll(content, []byte(replacement))
			patched = true
		}

		w, err := zw.Create(f.Name)
		if err != nil {
			t.Fatalf("create %s: %v", f.Name, err)
		}
		if _, err := w.Write(content); err != nil {
			t.Fatalf("write %s: %v", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("close workbook zip: %v", err)
	}
	if !patched {
		t.Fatalf("cell %s with value %d not found in sheet1.xml", ref, marker)
	}
	return out.Bytes()
}

