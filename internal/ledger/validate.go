package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// ValidationError describes one canonical transaction that may not be persisted.
// Row is the 1-based position in the batch.
type ValidationError struct {
	Row         int
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("row %d [%s]: %s", e.Row, e.Field, e.Description)
}

var hundred = decimal.NewFromInt(100)

// Validate checks that every transaction carries all four base fields and an
// amount with at most two decimal places.
func Validate(txns []model.Transaction) []ValidationError {
	var errs []ValidationError
	add := func(i int, field, desc string) {
		errs = append(errs, ValidationError{Row: i + 1, Field: field, Description: desc})
	}

	for i, txn := range txns {
		if strings.TrimSpace(txn.Description) == "" {
			add(i, "description", "empty description")
		}
		if txn.Date.IsZero() {
			add(i, "date", "missing date")
		}
		if strings.TrimSpace(txn.AccountName) == "" {
			add(i, "account_name", "empty account name")
		}
		if scaled := txn.Amount.Mul(hundred); !scaled.Equal(scaled.Truncate(0)) {
			add(i, "amount", fmt.Sprintf("amount %s has more than 2 decimal places", txn.Amount))
		}
	}
	return errs
}

// Join folds validation errors into a single error, or nil.
func Join(verrs []ValidationError) error {
	if len(verrs) == 0 {
		return nil
	}
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
