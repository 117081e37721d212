package importer

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DescriptionWidth is the display width descriptions are truncated to.
const DescriptionWidth = 30

// Row is the display form of a canonical transaction. Amount is a currency
// string and must not be persisted.
type Row struct {
	Description string
	Date        string
	Amount      string
	AccountName string
	Category    string
}

// FormatDescription collapses whitespace, title-cases and truncates to
// DescriptionWidth characters. Casing runs first since it can lengthen text
// ("ß" becomes "Ss").
func FormatDescription(s string) string {
	s = cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
	if utf8.RuneCountInString(s) > DescriptionWidth {
		s = strings.TrimSpace(string([]rune(s)[:DescriptionWidth]))
	}
	return s
}

// FormatAmount renders d as a currency string with thousands separators and
// two decimals: "$1,234.56", "-$1,234.56".
func FormatAmount(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

// ParseAmount parses an export amount cell. It accepts currency symbols,
// thousands separators, a leading or trailing minus and accounting-style
// parentheses for negatives. Only one sign notation may be used.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errEmptyValue
	}

	signs := 0
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		signs++
		neg = true
		s = s[1 : len(s)-1]
	}
	if strings.HasPrefix(s, "-") {
		signs++
		neg = true
		s = s[1:]
	}
	if strings.HasSuffix(s, "-") {
		signs++
		neg = true
		s = s[:len(s)-1]
	}
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	switch {
	case strings.HasPrefix(s, "-"):
		signs++
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		signs++
		s = s[1:]
	}
	if signs > 1 {
		return decimal.Zero, errConflictingSign
	}
	if s == "" || strings.ContainsAny(s, "+-()") {
		return decimal.Zero, errors.New("misplaced sign")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
