package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/onderdelen-beheer/api/pkg/money"
)

func TestFormatEUR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "€ 0,00"},
		{"9.95", "€ 9,95"},
		{"1234.5", "€ 1.234,50"},
		{"1000000", "€ 1.000.000,00"},
		{"-42.10", "€ -42,10"},
	}
	for _, tc := range cases {
		got := money.FormatEUR(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "formatting %s", tc.in)
	}
}
