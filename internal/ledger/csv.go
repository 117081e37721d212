// Package ledger validates canonical transactions at the persistence boundary
// and writes them as CSV.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pennywise-dev/pennywise/internal/importer"
	"github.com/pennywise-dev/pennywise/internal/model"
)

// Header is the CSV header for exported transactions.
const Header = "date,description,amount,account_name,category"

const (
	numFields  = 5
	colDate    = 0
	colDesc    = 1
	colAmount  = 2
	colAccount = 3
	colCat     = 4
)

// WriteTransactions writes transactions with raw decimal amounts (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteDisplay writes display rows with currency-formatted amounts.
func WriteDisplay(w io.Writer, rows []importer.Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range rows {
		rec := make([]string, numFields)
		rec[colDate] = r.Date
		rec[colDesc] = r.Description
		rec[colAmount] = r.Amount
		rec[colAccount] = r.AccountName
		rec[colCat] = r.Category
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// DisplayRows converts stored transactions to display rows.
func DisplayRows(txns []model.Transaction) []importer.Row {
	rows := make([]importer.Row, len(txns))
	for i, txn := range txns {
		rows[i] = importer.Row{
			Description: txn.Description,
			Date:        txn.DateString(),
			Amount:      importer.FormatAmount(txn.Amount),
			AccountName: txn.AccountName,
			Category:    txn.Category,
		}
	}
	return rows
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.DateString()
	row[colDesc] = txn.Description
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colAccount] = txn.AccountName
	row[colCat] = txn.Category
	return row
}
