package importer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/statement"
)

// GenericAdapter reads plain Date,Description,Amount CSV files whose amounts
// already follow the expenses-negative convention.
type GenericAdapter struct{}

const (
	genericColDate   = "Date"
	genericColDesc   = "Description"
	genericColAmount = "Amount"
)

var genericDateFormats = []string{"2006-01-02", usDateFormat, "02.01.2006", "2006/01/02"}

func (a *GenericAdapter) Name() string { return GenericCSV.String() }

func (a *GenericAdapter) Layout() statement.Layout { return statement.Layout{} }

func (a *GenericAdapter) ComputeDescription(t *statement.Table) ([]string, error) {
	return descriptionColumn(a, t, genericColDesc)
}

// ComputeDate accepts ISO, US and European dotted dates.
func (a *GenericAdapter) ComputeDate(t *statement.Table) ([]time.Time, error) {
	return dateColumn(a, t, genericColDate, genericDateFormats...)
}

func (a *GenericAdapter) ComputeAmount(t *statement.Table) ([]decimal.Decimal, error) {
	return amountColumn(a, t, genericColAmount)
}
