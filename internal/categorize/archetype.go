// Package categorize suggests categories for transactions by keyword.
package categorize

import "strings"

// Archetype is a built-in kind of category that knows the words merchants and
// banks use for it.
type Archetype struct {
	Name    string
	Aliases []string
	terms   []string
}

// Keywords returns the archetype's keywords, lower-cased, in a fixed order.
func (a Archetype) Keywords() []string {
	out := make([]string, 0, len(a.terms))
	for _, t := range a.terms {
		out = append(out, strings.ToLower(strings.TrimSpace(t)))
	}
	return out
}

// Registry is the closed set of archetypes categories are resolved against.
type Registry struct {
	archetypes []Archetype
	byName     map[string]int
}

// NewRegistry creates a registry. Panics on a duplicate name or alias.
func NewRegistry(archetypes ...Archetype) *Registry {
	r := &Registry{byName: make(map[string]int)}
	for _, a := range archetypes {
		idx := len(r.archetypes)
		r.archetypes = append(r.archetypes, a)
		for _, key := range append([]string{a.Name}, a.Aliases...) {
			key = normalize(key)
			if _, ok := r.byName[key]; ok {
				panic("duplicate category archetype: " + key)
			}
			r.byName[key] = idx
		}
	}
	return r
}

// List returns every registered archetype in registration order.
func (r *Registry) List() []Archetype {
	out := make([]Archetype, len(r.archetypes))
	copy(out, r.archetypes)
	return out
}

// Resolve finds the archetype for a category name, matching the archetype
// name or one of its aliases case-insensitively.
func (r *Registry) Resolve(category string) (Archetype, bool) {
	i, ok := r.byName[normalize(category)]
	if !ok {
		return Archetype{}, false
	}
	return r.archetypes[i], true
}

// DefaultRegistry returns the built-in archetypes.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Archetype{Name: "Groceries", Aliases: []string{"Grocery", "Food & Groceries"},
			terms: []string{"grocery", "groceries", "supermarket", "whole foods", "trader joe", "safeway", "kroger", "aldi", "costco", "wegmans", "publix", "food lion", "market basket"}},
		Archetype{Name: "Dining", Aliases: []string{"Restaurants", "Food & Dining", "Eating Out"},
			terms: []string{"restaurant", "cafe", "coffee", "starbucks", "dunkin", "mcdonald", "chipotle", "pizza", "sushi", "grubhub", "doordash", "uber eats", "bistro", "diner", "bakery"}},
		Archetype{Name: "Transportation", Aliases: []string{"Transport", "Commute"},
			terms: []string{"uber", "lyft", "taxi", "metro", "transit", "parking", "toll", "amtrak", "mta*nyct"}},
		Archetype{Name: "Fuel", Aliases: []string{"Gas", "Gas & Fuel"},
			terms: []string{"shell oil", "chevron", "exxon", "mobil", "sunoco", "gas station", "fuel", "citgo"}},
		Archetype{Name: "Utilities", Aliases: []string{"Bills & Utilities"},
			terms: []string{"electric", "utility", "water bill", "comcast", "xfinity", "verizon", "at&t", "t-mobile", "internet", "con edison", "pg&e"}},
		Archetype{Name: "Housing", Aliases: []string{"Rent", "Mortgage", "Home"},
			terms: []string{"rent payment", "mortgage", "property management", "hoa dues", "apartment"}},
		Archetype{Name: "Entertainment", Aliases: []string{"Fun"},
			terms: []string{"cinema", "theater", "theatre", "amc theatres", "ticketmaster", "concert", "steam games", "playstation", "xbox", "bowling"}},
		Archetype{Name: "Shopping", Aliases: []string{"Retail"},
			terms: []string{"amazon", "amzn", "target", "walmart", "best buy", "ebay", "etsy", "ikea", "macy", "nordstrom", "home depot"}},
		Archetype{Name: "Health", Aliases: []string{"Healthcare", "Medical", "Health & Fitness"},
			terms: []string{"pharmacy", "cvs", "walgreens", "doctor", "dental", "clinic", "hospital", "gym", "fitness"}},
		Archetype{Name: "Travel", Aliases: []string{"Vacation"},
			terms: []string{"airline", "airlines", "delta air", "united air", "southwest", "jetblue", "hotel", "marriott", "hilton", "airbnb", "expedia", "booking.com"}},
		Archetype{Name: "Subscriptions", Aliases: []string{"Streaming", "Software"},
			terms: []string{"netflix", "spotify", "hulu", "disney+", "apple.com/bill", "github", "youtube premium", "subscription", "patreon"}},
		Archetype{Name: "Insurance",
			terms: []string{"insurance", "geico", "state farm", "allstate", "progressive ins"}},
		Archetype{Name: "Education", Aliases: []string{"Tuition"},
			terms: []string{"tuition", "university", "college", "coursera", "udemy", "school"}},
		Archetype{Name: "Income", Aliases: []string{"Salary", "Paycheck"},
			terms: []string{"payroll", "salary", "direct dep", "paycheck", "dividend", "interest paid"}},
		Archetype{Name: "Transfers", Aliases: []string{"Transfer", "Payments"},
			terms: []string{"transfer", "zelle", "venmo", "paypal", "autopay", "online payment", "payment thank you"}},
	)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
