package categories

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// Header is the CSV header for categories.csv.
const Header = "name,kind,enabled"

const (
	numFields  = 3
	colName    = 0
	colKind    = 1
	colEnabled = 2
)

// ReadCategories reads categories.csv.
func ReadCategories(r io.Reader) ([]model.Category, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categories CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var cats []model.Category
	for i, rec := range records[1:] {
		c, err := UnmarshalCategory(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// WriteCategories writes categories.csv.
func WriteCategories(w io.Writer, cats []model.Category) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range cats {
		if err := cw.Write(MarshalCategory(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalCategory converts a Category to a CSV row.
func MarshalCategory(c model.Category) []string {
	row := make([]string, numFields)
	row[colName] = c.Name
	row[colKind] = string(c.Kind)
	row[colEnabled] = strconv.FormatBool(c.Enabled)
	return row
}

// UnmarshalCategory converts a CSV row to a Category.
func UnmarshalCategory(record []string) (model.Category, error) {
	if len(record) != numFields {
		return model.Category{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	name := strings.TrimSpace(record[colName])
	if name == "" {
		return model.Category{}, fmt.Errorf("empty category name")
	}

	kind := model.CategoryKind(record[colKind])
	switch kind {
	case model.CategoryKindExpense, model.CategoryKindIncome:
	default:
		return model.Category{}, fmt.Errorf("invalid kind %q for %s", record[colKind], name)
	}

	enabled, err := strconv.ParseBool(record[colEnabled])
	if err != nil {
		return model.Category{}, fmt.Errorf("parsing enabled %q: %w", record[colEnabled], err)
	}

	return model.Category{Name: name, Kind: kind, Enabled: enabled}, nil
}
