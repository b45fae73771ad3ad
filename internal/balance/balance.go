// Package balance computes debit/credit totals for a set of journal line
// inputs. It is pure: malformed amounts coerce to zero here and are only
// rejected later by the validation layer, so the totals can gate the
// entry editor on every keystroke without ever failing.
package balance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tolerance absorbs rounding noise when comparing totals. Entries whose
// |debit - credit| is below this are considered balanced.
var Tolerance = decimal.NewFromFloat(0.01)

// LineAmounts is the debit/credit pair of a single line as entered,
// before any validation.
type LineAmounts struct {
	Debit  string
	Credit string
}

// Totals is the result of summing a set of line inputs.
type Totals struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Difference  decimal.Decimal // TotalDebit - TotalCredit
	IsBalanced  bool
}

// ParseAmount converts raw user input to a decimal amount. Blank or
// unparseable input is zero. This is the single coercion point for
// amount strings on the client.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Compute sums every line's debit and credit and reports whether the set
// balances within Tolerance.
func Compute(lines []LineAmounts) Totals {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, line := range lines {
		totalDebit = totalDebit.Add(ParseAmount(line.Debit))
		totalCredit = totalCredit.Add(ParseAmount(line.Credit))
	}

	diff := totalDebit.Sub(totalCredit)

	return Totals{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  diff,
		IsBalanced:  diff.Abs().LessThan(Tolerance),
	}
}

// ComputeDecimal is Compute for amounts that are already decimals, used
// when re-checking a payload after coercion.
func ComputeDecimal(debits, credits []decimal.Decimal) Totals {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, d := range debits {
		totalDebit = totalDebit.Add(d)
	}
	for _, c := range credits {
		totalCredit = totalCredit.Add(c)
	}

	diff := totalDebit.Sub(totalCredit)

	return Totals{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  diff,
		IsBalanced:  diff.Abs().LessThan(Tolerance),
	}
}
