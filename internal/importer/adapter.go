package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
	"github.com/pennywise-dev/pennywise/internal/statement"
)

// Adapter maps one institution's export layout onto the canonical fields.
type Adapter interface {
	Name() string
	Layout() statement.Layout
	ComputeDescription(t *statement.Table) ([]string, error)
	ComputeDate(t *statement.Table) ([]time.Time, error)
	ComputeAmount(t *statement.Table) ([]decimal.Decimal, error)
}

// AccountNamer is implemented by adapters that derive the account name from
// the export itself instead of using the caller's label or the bank name.
type AccountNamer interface {
	ComputeAccountName(t *statement.Table, account string) []string
}

// Institution identifies a supported statement format.
type Institution int

const (
	BankOfAmerica Institution = iota + 1
	AmericanExpress
	Citibank
	GenericCSV
)

// Institutions returns every supported institution in display order.
func Institutions() []Institution {
	return []Institution{BankOfAmerica, AmericanExpress, Citibank, GenericCSV}
}

// String returns the institution's display name.
func (i Institution) String() string {
	switch i {
	case BankOfAmerica:
		return "Bank of America"
	case AmericanExpress:
		return "American Express"
	case Citibank:
		return "Citibank"
	case GenericCSV:
		return "Generic CSV"
	default:
		return fmt.Sprintf("Institution(%d)", int(i))
	}
}

func (i Institution) aliases() []string {
	switch i {
	case BankOfAmerica:
		return []string{"bank of america", "bankofamerica", "bofa", "boa"}
	case AmericanExpress:
		return []string{"american express", "americanexpress", "amex"}
	case Citibank:
		return []string{"citibank", "citi"}
	case GenericCSV:
		return []string{"generic csv", "generic", "csv"}
	default:
		return nil
	}
}

// Adapter returns a fresh adapter for the institution.
func (i Institution) Adapter() Adapter {
	switch i {
	case BankOfAmerica:
		return &BankOfAmericaAdapter{}
	case AmericanExpress:
		return &AmexAdapter{}
	case Citibank:
		return &CitibankAdapter{}
	case GenericCSV:
		return &GenericAdapter{}
	default:
		return nil
	}
}

// ParseInstitution resolves a bank name, case-insensitively, to an Institution.
func ParseInstitution(name string) (Institution, error) {
	key := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	for _, inst := range Institutions() {
		for _, alias := range inst.aliases() {
			if key == alias {
				return inst, nil
			}
		}
	}
	return 0, &UnsupportedInstitutionError{Name: name}
}

// ComputeColumns runs the adapter's computations and attaches the results to
// t as canonical columns. The original columns are left in place.
func ComputeColumns(a Adapter, t *statement.Table, account string) error {
	desc, err := a.ComputeDescription(t)
	if err != nil {
		return err
	}
	dates, err := a.ComputeDate(t)
	if err != nil {
		return err
	}
	amounts, err := a.ComputeAmount(t)
	if err != nil {
		return err
	}

	var names []string
	if n, ok := a.(AccountNamer); ok {
		names = n.ComputeAccountName(t, account)
	} else {
		names = defaultAccountNames(a, t, account)
	}

	n := t.Len()
	if len(desc) != n || len(dates) != n || len(amounts) != n || len(names) != n {
		return fmt.Errorf("%s: computed columns do not cover %d rows", a.Name(), n)
	}

	t.Descriptions = desc
	t.Dates = dates
	t.Amounts = amounts
	t.AccountNames = names
	return nil
}

// Format formats the canonical columns of t for display, computing them first
// if ComputeColumns has not run. Descriptions are rewritten in place, so the
// table holds its final canonical values afterwards.
func Format(a Adapter, t *statement.Table, account string) ([]Row, error) {
	if !t.Computed() {
		if err := ComputeColumns(a, t, account); err != nil {
			return nil, err
		}
	}

	rows := make([]Row, t.Len())
	for i := range rows {
		t.Descriptions[i] = FormatDescription(t.Descriptions[i])
		rows[i] = Row{
			Description: t.Descriptions[i],
			Date:        t.Dates[i].Format(model.DateFormat),
			Amount:      FormatAmount(t.Amounts[i]),
			AccountName: t.AccountNames[i],
		}
	}
	return rows, nil
}

// Transactions returns the canonical transactions of a formatted table.
func Transactions(t *statement.Table) []model.Transaction {
	txns := make([]model.Transaction, t.Len())
	for i := range txns {
		txns[i] = model.Transaction{
			Description: t.Descriptions[i],
			Date:        t.Dates[i],
			Amount:      t.Amounts[i],
			AccountName: t.AccountNames[i],
		}
	}
	return txns
}

func defaultAccountNames(a Adapter, t *statement.Table, account string) []string {
	name := strings.TrimSpace(account)
	if name == "" {
		name = a.Name()
	}
	names := make([]string, t.Len())
	for i := range names {
		names[i] = name
	}
	return names
}
