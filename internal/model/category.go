package model

// CategoryKind classifies a category by the direction of money it tracks.
type CategoryKind string

const (
	CategoryKindExpense CategoryKind = "expense"
	CategoryKindIncome  CategoryKind = "income"
)

// Category represents a row in categories.csv.
type Category struct {
	Name    string
	Kind    CategoryKind
	Enabled bool
}
