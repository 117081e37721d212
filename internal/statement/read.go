package statement

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Layout describes where the header sits in an export and how its text is encoded.
type Layout struct {
	HeaderOffset int               // lines (or sheet rows) before the header
	Encoding     encoding.Encoding // nil = UTF-8, BOM tolerated
}

// ErrNoHeader is returned when a source has no header row after the offset.
var ErrNoHeader = errors.New("no header row")

// ReadError reports a source file that could not be read or parsed at the
// format level.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading statement %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Read parses data as a spreadsheet when name ends in .xls, as CSV otherwise.
func Read(name string, data []byte, layout Layout) (*Table, error) {
	var (
		t   *Table
		err error
	)
	if strings.EqualFold(filepath.Ext(name), ".xls") {
		t, err = ReadXLS(bytes.NewReader(data), layout)
	} else {
		t, err = ReadCSV(bytes.NewReader(data), layout)
	}
	if err != nil {
		return nil, &ReadError{Path: name, Err: err}
	}
	return t, nil
}

// ReadCSV reads a CSV export, skipping layout.HeaderOffset raw lines first.
func ReadCSV(r io.Reader, layout Layout) (*Table, error) {
	var dec transform.Transformer = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if layout.Encoding != nil {
		dec = layout.Encoding.NewDecoder()
	}
	br := bufio.NewReader(transform.NewReader(r, dec))

	for i := 0; i < layout.HeaderOffset; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("skipping banner line %d: %w", i+1, ErrNoHeader)
			}
			return nil, fmt.Errorf("skipping banner line %d: %w", i+1, err)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return buildTable(records)
}

// ReadXLS reads the first sheet of a legacy Excel workbook.
func ReadXLS(rs io.ReadSeeker, layout Layout) (*Table, error) {
	wb, err := xls.OpenReader(rs, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening XLS: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, errors.New("no sheets in XLS workbook")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("reading first XLS sheet")
	}

	var records [][]string
	for i := layout.HeaderOffset; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			continue
		}
		rec := make([]string, row.LastCol())
		for c := range rec {
			rec[c] = row.Col(c)
		}
		records = append(records, rec)
	}
	return buildTable(records)
}

// sheetRow returns row i, or nil when the sheet does not define it.
// WorkSheet.Row panics on undefined rows.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func buildTable(records [][]string) (*Table, error) {
	// Blank lines and all-empty trailer rows carry no data.
	var kept [][]string
	for _, rec := range records {
		if !isBlank(rec) {
			kept = append(kept, rec)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoHeader
	}
	return NewTable(kept[0], kept[1:]), nil
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
