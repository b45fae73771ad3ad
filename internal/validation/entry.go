package validation

import (
	"fmt"
	"strings"

	"github.com/contaflow/contaflow/internal/balance"
)

// LineInput is one journal line as entered in the editor, amounts still
// raw strings. A blank AccountID marks an unused line slot.
type LineInput struct {
	AccountID   string
	Debit       string
	Credit      string
	Description string
}

// EntryInput is a candidate journal entry payload before submission.
type EntryInput struct {
	Date        string
	Description string
	Reference   string
	Lines       []LineInput
}

// AssignedLines returns only the lines that reference an account. Line
// slots without an account are ignored by validation and filtered out of
// the submitted payload.
func (in EntryInput) AssignedLines() []LineInput {
	var assigned []LineInput
	for _, line := range in.Lines {
		if strings.TrimSpace(line.AccountID) != "" {
			assigned = append(assigned, line)
		}
	}
	return assigned
}

// ValidateEntry checks an entry payload against every client-side rule:
// required header fields, the 2-line structural minimum, debit/credit
// balance within tolerance, and per-line amount rules for lines with an
// assigned account.
func ValidateEntry(in EntryInput) Errors {
	errs := Errors{}

	if strings.TrimSpace(in.Date) == "" {
		errs.Add("date", "date is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		errs.Add("description", "description is required")
	}

	assigned := in.AssignedLines()
	if len(assigned) < 2 {
		errs.Add("lines", "at least 2 lines with an assigned account are required")
	}

	amounts := make([]balance.LineAmounts, 0, len(assigned))
	for _, line := range assigned {
		amounts = append(amounts, balance.LineAmounts{Debit: line.Debit, Credit: line.Credit})
	}
	totals := balance.Compute(amounts)
	if !totals.IsBalanced {
		errs.Add("balance", fmt.Sprintf(
			"entry is not balanced: total debit %s does not equal total credit %s",
			totals.TotalDebit.StringFixed(2), totals.TotalCredit.StringFixed(2)))
	}

	for i, line := range in.Lines {
		if strings.TrimSpace(line.AccountID) == "" {
			continue
		}

		debit := balance.ParseAmount(line.Debit)
		credit := balance.ParseAmount(line.Credit)

		if debit.IsNegative() || credit.IsNegative() {
			errs.Add(lineField(i), "amounts cannot be negative")
			continue
		}

		hasDebit := !debit.IsZero()
		hasCredit := !credit.IsZero()

		switch {
		case !hasDebit && !hasCredit:
			errs.Add(lineField(i), "line must have a debit or a credit")
		case hasDebit && hasCredit:
			errs.Add(lineField(i), "line cannot have both a debit and a credit on the same line")
		}
	}

	return errs
}

func lineField(index int) string {
	return fmt.Sprintf("lines[%d].amount", index)
}
