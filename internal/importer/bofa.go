package importer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/statement"
)

// BankOfAmericaAdapter reads Bank of America checking exports. The CSV and
// XLS downloads open with a five-line balance summary and a blank line before
// the transaction header.
type BankOfAmericaAdapter struct{}

const (
	bofaHeaderOffset = 6
	bofaColDate      = "Date"
	bofaColDesc      = "Description"
	bofaColAmount    = "Amount"
)

// Name returns the display name, also the default account name.
func (a *BankOfAmericaAdapter) Name() string { return BankOfAmerica.String() }

// Layout skips the summary banner.
func (a *BankOfAmericaAdapter) Layout() statement.Layout {
	return statement.Layout{HeaderOffset: bofaHeaderOffset}
}

func (a *BankOfAmericaAdapter) ComputeDescription(t *statement.Table) ([]string, error) {
	return descriptionColumn(a, t, bofaColDesc)
}

func (a *BankOfAmericaAdapter) ComputeDate(t *statement.Table) ([]time.Time, error) {
	return dateColumn(a, t, bofaColDate, usDateFormat)
}

// ComputeAmount uses the signed Amount column as exported.
func (a *BankOfAmericaAdapter) ComputeAmount(t *statement.Table) ([]decimal.Decimal, error) {
	return amountColumn(a, t, bofaColAmount)
}
