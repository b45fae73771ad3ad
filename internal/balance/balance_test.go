package balance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompute_Balanced(t *testing.T) {
	totals := Compute([]LineAmounts{
		{Debit: "1000", Credit: "0"},
		{Debit: "0", Credit: "1000"},
	})

	assert.True(t, totals.IsBalanced)
	assert.True(t, totals.Difference.IsZero())
	assert.Equal(t, "1000", totals.TotalDebit.String())
	assert.Equal(t, "1000", totals.TotalCredit.String())
}

func TestCompute_Unbalanced(t *testing.T) {
	totals := Compute([]LineAmounts{
		{Debit: "1000", Credit: "0"},
		{Debit: "0", Credit: "800"},
	})

	assert.False(t, totals.IsBalanced)
	assert.Equal(t, "200", totals.Difference.String())
}

func TestCompute_DifferenceIsAlwaysDebitMinusCredit(t *testing.T) {
	cases := []struct {
		name  string
		lines []LineAmounts
	}{
		{"empty", nil},
		{"single debit", []LineAmounts{{Debit: "42.50"}}},
		{"single credit", []LineAmounts{{Credit: "17"}}},
		{"many", []LineAmounts{
			{Debit: "100.10", Credit: "0"},
			{Debit: "0", Credit: "50.05"},
			{Debit: "0", Credit: "50.05"},
			{Debit: "3", Credit: "7"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := Compute(tc.lines)
			assert.True(t, totals.TotalDebit.Sub(totals.TotalCredit).Equal(totals.Difference))
			assert.Equal(t, totals.Difference.Abs().LessThan(Tolerance), totals.IsBalanced)
		})
	}
}

func TestCompute_ToleranceBoundary(t *testing.T) {
	// 0.009 off balances, exactly 0.01 does not.
	within := Compute([]LineAmounts{{Debit: "100.009"}, {Credit: "100"}})
	assert.True(t, within.IsBalanced)

	at := Compute([]LineAmounts{{Debit: "100.01"}, {Credit: "100"}})
	assert.False(t, at.IsBalanced)
}

func TestParseAmount_MalformedInputIsZero(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "1.2.3", "$100"} {
		assert.True(t, ParseAmount(raw).IsZero(), "input %q", raw)
	}

	assert.Equal(t, "1500.25", ParseAmount(" 1500.25 ").String())
	assert.Equal(t, "-3", ParseAmount("-3").String())
}

func TestComputeDecimal(t *testing.T) {
	totals := ComputeDecimal(
		[]decimal.Decimal{decimal.NewFromInt(600), decimal.NewFromInt(400)},
		[]decimal.Decimal{decimal.NewFromInt(1000)},
	)

	assert.True(t, totals.IsBalanced)
	assert.Equal(t, "1000", totals.TotalDebit.String())
}
