// Package statement reads raw bank statement exports into tables.
package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Table is a raw statement as read from one source file. Original columns are
// addressed by header name; canonical columns are attached by the importer.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int

	Descriptions []string
	Dates        []time.Time
	Amounts      []decimal.Decimal
	AccountNames []string
}

// NewTable creates a Table. Rows shorter than the header are padded with
// empty cells so every row has len(header) fields.
func NewTable(header []string, rows [][]string) *Table {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := index[key]; dup || key == "" {
			continue
		}
		index[key] = i
	}

	padded := make([][]string, 0, len(rows))
	for _, r := range rows {
		if len(r) < len(header) {
			r = append(r, make([]string, len(header)-len(r))...)
		}
		padded = append(padded, r)
	}
	return &Table{Header: header, Rows: padded, index: index}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Column returns the cells of the named column, matched case-insensitively.
func (t *Table) Column(name string) ([]string, bool) {
	i, ok := t.index[normalizeHeader(name)]
	if !ok {
		return nil, false
	}
	col := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		col[r] = strings.TrimSpace(row[i])
	}
	return col, true
}

// Computed reports whether all four canonical columns are attached and
// cover every row.
func (t *Table) Computed() bool {
	n := len(t.Rows)
	return t.Descriptions != nil && len(t.Descriptions) == n &&
		t.Dates != nil && len(t.Dates) == n &&
		t.Amounts != nil && len(t.Amounts) == n &&
		t.AccountNames != nil && len(t.AccountNames) == n
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
