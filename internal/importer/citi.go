package importer

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/pennywise-dev/pennywise/internal/statement"
)

// CitibankAdapter reads Citibank card exports, which split the amount into
// Debit (charges, positive) and Credit (payments, negative) columns.
type CitibankAdapter struct{}

const (
	citiColDate   = "Date"
	citiColDesc   = "Description"
	citiColDebit  = "Debit"
	citiColCredit = "Credit"
)

func (a *CitibankAdapter) Name() string { return Citibank.String() }

// Layout decodes the export as Windows-1252.
func (a *CitibankAdapter) Layout() statement.Layout {
	return statement.Layout{Encoding: charmap.Windows1252}
}

func (a *CitibankAdapter) ComputeDescription(t *statement.Table) ([]string, error) {
	return descriptionColumn(a, t, citiColDesc)
}

func (a *CitibankAdapter) ComputeDate(t *statement.Table) ([]time.Time, error) {
	return dateColumn(a, t, citiColDate, usDateFormat)
}

// ComputeAmount takes the debit value, falling back to the credit value when
// the debit cell is empty, and flips the sign so charges come out negative.
func (a *CitibankAdapter) ComputeAmount(t *statement.Table) ([]decimal.Decimal, error) {
	debits, err := column(a, t, citiColDebit)
	if err != nil {
		return nil, err
	}
	credits, err := column(a, t, citiColCredit)
	if err != nil {
		return nil, err
	}

	amounts := make([]decimal.Decimal, len(debits))
	for i := range debits {
		col, cell := citiColDebit, debits[i]
		if cell == "" {
			col, cell = citiColCredit, credits[i]
		}
		d, err := ParseAmount(cell)
		if err != nil {
			return nil, malformed(a, i, col, cell, err)
		}
		amounts[i] = d.Neg()
	}
	return amounts, nil
}
