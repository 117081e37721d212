package importer

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/statement"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"4", "$4.00"},
		{"-4", "-$4.00"},
		{"999.5", "$999.50"},
		{"1000", "$1,000.00"},
		{"1234.56", "$1,234.56"},
		{"-1234.56", "-$1,234.56"},
		{"1234567.891", "$1,234,567.89"},
		{"-0.004", "$0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(dec(tt.in)), "FormatAmount(%s)", tt.in)
	}
}

func TestFormatAmount_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		d := decimal.New(rng.Int63n(10_000_000_000), -2)
		if i%2 == 1 {
			d = d.Neg()
		}

		s := FormatAmount(d)
		if d.IsNegative() {
			require.True(t, strings.HasPrefix(s, "-$"), s)
		} else {
			require.True(t, strings.HasPrefix(s, "$"), s)
		}

		stripped := strings.NewReplacer("$", "", ",", "").Replace(s)
		back, err := decimal.NewFromString(stripped)
		require.NoError(t, err, s)
		require.True(t, back.Equal(d), "%s -> %s -> %s", d, s, back)

		parsed, err := ParseAmount(s)
		require.NoError(t, err)
		require.True(t, parsed.Equal(d))
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.50", "12.50"},
		{"-12.50", "-12.50"},
		{"$1,234.56", "1234.56"},
		{"-$1,234.56", "-1234.56"},
		{"$-5.00", "-5.00"},
		{"(12.50)", "-12.50"},
		{"12.50-", "-12.50"},
		{"+7", "7"},
		{" 3,500.00 ", "3500"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, got.Equal(dec(tt.want)), "ParseAmount(%q) = %s", tt.in, got)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1-2", "$", "()", "(5", "5)", "(5.00)-", "+-5"} {
		_, err := ParseAmount(in)
		assert.Error(t, err, "ParseAmount(%q)", in)
	}
}

func TestParseAmount_RepeatedSign(t *testing.T) {
	for _, in := range []string{"(-5.00)", "--5", "-5.00-", "-+5", "-$-5.00"} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, errConflictingSign, "ParseAmount(%q)", in)
	}
}

func TestComputeAmount_RepeatedSignIsMalformed(t *testing.T) {
	tbl := statement.NewTable(
		[]string{"Date", "Description", "Amount"},
		[][]string{{"2025-01-01", "Coffee", "-3.00"}, {"2025-01-02", "Refund", "(-5.00)"}},
	)
	err := ComputeColumns(&GenericAdapter{}, tbl, "")

	var merr *MalformedRowError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, 2, merr.Row)
	assert.Equal(t, "(-5.00)", merr.Value)
	assert.ErrorIs(t, err, errConflictingSign)
}

func TestFormatDescription(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GITHUB *PRO SUBSCRIPTION", "Github *Pro Subscription"},
		{"  whole   foods  ", "Whole Foods"},
		{"RENT PAYMENT JANUARY ONLINE TRANSFER CONF# 8812", "Rent Payment January Online Tr"},
		{"CAFÉ NOIR", "Café Noir"},
		{strings.Repeat("ß", 32), "Ss" + strings.Repeat("ß", 28)},
	}
	for _, tt := range tests {
		got := FormatDescription(tt.in)
		assert.Equal(t, tt.want, got)
		assert.LessOrEqual(t, len([]rune(got)), DescriptionWidth)
		assert.Equal(t, got, FormatDescription(got), "idempotent for %q", tt.in)
	}
}
