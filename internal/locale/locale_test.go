package locale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"-1.234,56", "-1234.56"},
		{"1234,5", "1234.5"},
		{"€ 12,00", "12"},
		{"+100.00", "100"},
		{"1.234.567", "1234567"},
		{"1,234,567.89", "1234567.89"},
		{"12,50-", "-12.5"},
		{"(45.10)", "-45.1"},
		{"CHF 1'234.50", "1234.5"},
		{"  -7,99 EUR ", "-7.99"},
		{"eur 12,50", "12.5"},
		{"12,50 Eur", "12.5"},
		{"Chf 3.00", "3"},
		{"", "0"},
		{"abc", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseFlexibleAmount(tt.in)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseAmountField(t *testing.T) {
	_, ok := ParseAmountField("")
	assert.False(t, ok)

	_, ok = ParseAmountField("n/a")
	assert.False(t, ok)

	amount, ok := ParseAmountField("0,00")
	assert.True(t, ok)
	assert.True(t, amount.IsZero())

	amount, ok = ParseAmountField("-12.30")
	assert.True(t, ok)
	assert.Equal(t, "-12.3", amount.String())
}

func TestGermanAmount(t *testing.T) {
	amount, ok := ParseGermanAmount("1.190,00")
	require.True(t, ok)
	assert.Equal(t, "1190", amount.String())

	_, ok = ParseGermanAmount("zwölf")
	assert.False(t, ok)

	assert.Equal(t, "1190,00", FormatGermanAmount(decimal.RequireFromString("1190")))
	assert.Equal(t, "-0,50", FormatGermanAmount(decimal.RequireFromString("-0.5")))
}

func TestParseFlexibleDate(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		in   string
		want time.Time
	}{
		{"15.01.2024", day(2024, time.January, 15)},
		{"5.3.2024", day(2024, time.March, 5)},
		{"15/01/2024", day(2024, time.January, 15)},
		{"2024-01-15", day(2024, time.January, 15)},
		{"12/25/2024", day(2024, time.December, 25)},
		{"2024-01-15T10:30:00Z", day(2024, time.January, 15)},
		{"2024-01-15 10:30:00", day(2024, time.January, 15)},
		{"15 Jan 2024", day(2024, time.January, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFlexibleDate(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "31.02.2024", "2024-13-01", "yesterday"} {
		_, ok := ParseFlexibleDate(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseFixedDate(t *testing.T) {
	got, ok := ParseFixedDate("1503", 2023)
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseFixedDate("15.03.2024", 0)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseFixedDate("0101", 0)
	require.True(t, ok)
	assert.Equal(t, time.Now().Year(), got.Year())

	for _, bad := range []string{"3213", "0013", "123", "01011850", "31022024"} {
		_, ok := ParseFixedDate(bad, 2024)
		assert.False(t, ok, bad)
	}

	d := time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "0407", FormatFixedDate(d))
	assert.Equal(t, "04072024", FormatFixedDateLong(d))
}
