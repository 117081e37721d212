package importer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/statement"
)

// AmexAdapter reads American Express card activity exports.
type AmexAdapter struct{}

const (
	amexColDate   = "Date"
	amexColDesc   = "Description"
	amexColAmount = "Amount"
)

func (a *AmexAdapter) Name() string { return AmericanExpress.String() }

func (a *AmexAdapter) Layout() statement.Layout { return statement.Layout{} }

func (a *AmexAdapter) ComputeDescription(t *statement.Table) ([]string, error) {
	return descriptionColumn(a, t, amexColDesc)
}

func (a *AmexAdapter) ComputeDate(t *statement.Table) ([]time.Time, error) {
	return dateColumn(a, t, amexColDate, usDateFormat)
}

// ComputeAmount negates the export: Amex lists charges as positive and
// payments or refunds as negative.
func (a *AmexAdapter) ComputeAmount(t *statement.Table) ([]decimal.Decimal, error) {
	amounts, err := amountColumn(a, t, amexColAmount)
	if err != nil {
		return nil, err
	}
	for i, d := range amounts {
		amounts[i] = d.Neg()
	}
	return amounts, nil
}
