package categories

import "github.com/pennywise-dev/pennywise/internal/model"

// Defaults returns the categories every new user starts with.
func Defaults() []model.Category {
	expense := func(name string) model.Category {
		return model.Category{Name: name, Kind: model.CategoryKindExpense, Enabled: true}
	}
	return []model.Category{
		expense("Groceries"),
		expense("Dining"),
		expense("Transportation"),
		expense("Fuel"),
		expense("Utilities"),
		expense("Housing"),
		expense("Entertainment"),
		expense("Shopping"),
		expense("Health"),
		expense("Travel"),
		expense("Subscriptions"),
		expense("Insurance"),
		{Name: "Income", Kind: model.CategoryKindIncome, Enabled: true},
		{Name: "Transfers", Kind: model.CategoryKindExpense, Enabled: true},
	}
}

// Seed writes the default categories for a newly created workspace. It is
// the post-creation step of init and never overwrites an existing list.
func Seed(root string) (*Service, error) {
	existing, err := Load(root)
	if err != nil {
		return nil, err
	}
	if len(existing.All()) > 0 {
		return existing, nil
	}

	svc := NewService(Defaults())
	if err := svc.Save(root); err != nil {
		return nil, err
	}
	return svc, nil
}
