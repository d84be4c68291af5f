package menu

import (
	"errors"
	"path/filepath"
	"strings"
)

// Only OOXML workbooks are decoded; legacy .xls and .csv are rejected.
var allowedExt = map[string]bool{
	".xlsx": true,
	".xlsm": true,
}

func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedExt[ext] {
		return errors.New("file type not allowed, upload an .xlsx workbook")
	}

	return nil
}
