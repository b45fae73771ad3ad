package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balancedInput() EntryInput {
	return EntryInput{
		Date:        "2025-01-15",
		Description: "Test Journal Entry",
		Lines: []LineInput{
			{AccountID: "1", Debit: "1000", Credit: "0"},
			{AccountID: "2", Debit: "0", Credit: "1000"},
		},
	}
}

func TestValidateEntry_Valid(t *testing.T) {
	errs := ValidateEntry(balancedInput())
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

func TestValidateEntry_RequiredHeaderFields(t *testing.T) {
	in := balancedInput()
	in.Date = ""
	in.Description = "   "

	errs := ValidateEntry(in)
	assert.Equal(t, "date is required", errs["date"])
	assert.Equal(t, "description is required", errs["description"])
}

func TestValidateEntry_MinimumLines(t *testing.T) {
	// Fewer than 2 assigned lines is rejected regardless of balance.
	in := balancedInput()
	in.Lines[1].AccountID = ""

	errs := ValidateEntry(in)
	require.False(t, errs.Valid())
	assert.Equal(t, "at least 2 lines with an assigned account are required", errs["lines"])
}

func TestValidateEntry_Unbalanced(t *testing.T) {
	in := balancedInput()
	in.Lines[1].Credit = "800"

	errs := ValidateEntry(in)
	require.Contains(t, errs, "balance")
	assert.Contains(t, errs["balance"], "1000.00")
	assert.Contains(t, errs["balance"], "800.00")
}

func TestValidateEntry_BothDebitAndCredit(t *testing.T) {
	// Balanced overall, but one line carries both sides.
	in := EntryInput{
		Date:        "2025-01-15",
		Description: "both sides",
		Lines: []LineInput{
			{AccountID: "1", Debit: "100", Credit: "100"},
			{AccountID: "2", Debit: "100", Credit: "100"},
		},
	}

	errs := ValidateEntry(in)
	assert.Equal(t, "line cannot have both a debit and a credit on the same line", errs["lines[0].amount"])
	assert.Equal(t, "line cannot have both a debit and a credit on the same line", errs["lines[1].amount"])
}

func TestValidateEntry_NegativeAmounts(t *testing.T) {
	// Negative amounts must not slip through as the opposite side: two
	// lines of {-100, 100} sum to 0/0 and would otherwise balance.
	in := EntryInput{
		Date:        "2025-01-15",
		Description: "negative amounts",
		Lines: []LineInput{
			{AccountID: "1", Debit: "-100", Credit: "100"},
			{AccountID: "2", Debit: "100", Credit: "-100"},
		},
	}

	errs := ValidateEntry(in)
	require.False(t, errs.Valid())
	assert.Equal(t, "amounts cannot be negative", errs["lines[0].amount"])
	assert.Equal(t, "amounts cannot be negative", errs["lines[1].amount"])
}

func TestValidateEntry_NeitherDebitNorCredit(t *testing.T) {
	in := balancedInput()
	in.Lines = append(in.Lines, LineInput{AccountID: "3"})

	errs := ValidateEntry(in)
	assert.Equal(t, "line must have a debit or a credit", errs["lines[2].amount"])
}

func TestValidateEntry_UnassignedSlotsIgnored(t *testing.T) {
	// A third slot without an account does not affect validation, even
	// with stray amounts left in it.
	in := balancedInput()
	in.Lines = append(in.Lines, LineInput{Debit: "55.55"})

	errs := ValidateEntry(in)
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
	assert.Len(t, in.AssignedLines(), 2)
}

func TestValidateAccount_CodeBoundary(t *testing.T) {
	in := AccountInput{
		Code:  strings.Repeat("x", 255),
		Name:  "Bancos",
		Type:  "asset",
		Level: 1,
	}
	assert.True(t, ValidateAccount(in).Valid())

	in.Code = strings.Repeat("x", 256)
	errs := ValidateAccount(in)
	assert.Equal(t, "code cannot exceed 255 characters", errs["code"])
}

func TestValidateAccount_RequiredAndRange(t *testing.T) {
	errs := ValidateAccount(AccountInput{Level: 11})
	assert.Equal(t, "code is required", errs["code"])
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "account type is required", errs["accountType"])
	assert.Equal(t, "level must be an integer between 1 and 10", errs["level"])
}

func TestValidateAccount_EnumChecks(t *testing.T) {
	in := AccountInput{
		Code:   "1000",
		Name:   "Bancos",
		Type:   "bogus",
		Nature: "sideways",
		Status: "gone",
		Level:  2,
	}

	errs := ValidateAccount(in)
	assert.Contains(t, errs["accountType"], "bogus")
	assert.Contains(t, errs["nature"], "sideways")
	assert.Contains(t, errs["status"], "gone")
}
