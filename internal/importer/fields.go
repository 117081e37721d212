package importer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/statement"
)

const usDateFormat = "1/2/2006"

var (
	errEmptyValue      = errors.New("empty value")
	errConflictingSign = errors.New("more than one sign notation")
)

func column(a Adapter, t *statement.Table, name string) ([]string, error) {
	cells, ok := t.Column(name)
	if !ok {
		return nil, &MissingColumnError{Institution: a.Name(), Column: name}
	}
	return cells, nil
}

func descriptionColumn(a Adapter, t *statement.Table, name string) ([]string, error) {
	cells, err := column(a, t, name)
	if err != nil {
		return nil, err
	}
	for i, c := range cells {
		if c == "" {
			return nil, malformed(a, i, name, c, errEmptyValue)
		}
	}
	return cells, nil
}

func dateColumn(a Adapter, t *statement.Table, name string, layouts ...string) ([]time.Time, error) {
	cells, err := column(a, t, name)
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(cells))
	for i, c := range cells {
		d, err := parseDate(c, layouts...)
		if err != nil {
			return nil, malformed(a, i, name, c, err)
		}
		dates[i] = d
	}
	return dates, nil
}

func amountColumn(a Adapter, t *statement.Table, name string) ([]decimal.Decimal, error) {
	cells, err := column(a, t, name)
	if err != nil {
		return nil, err
	}
	amounts := make([]decimal.Decimal, len(cells))
	for i, c := range cells {
		d, err := ParseAmount(c)
		if err != nil {
			return nil, malformed(a, i, name, c, err)
		}
		amounts[i] = d
	}
	return amounts, nil
}

func parseDate(s string, layouts ...string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errEmptyValue
	}
	var firstErr error
	for _, layout := range layouts {
		d, err := time.Parse(layout, s)
		if err == nil {
			return d, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func malformed(a Adapter, i int, col, value string, err error) *MalformedRowError {
	return &MalformedRowError{Institution: a.Name(), Row: i + 1, Column: col, Value: value, Err: err}
}
