package validation

import (
	"strings"

	"github.com/contaflow/contaflow/internal/model"
)

// Generic record validators. These check already-transformed records
// (post jsonapi mapping) rather than raw form input, and back the
// transformation-layer tests.

// ValidateLineRecord checks a mapped journal line: it must reference an
// account and carry exactly one nonzero amount side.
func ValidateLineRecord(line model.JournalLine) Errors {
	errs := Errors{}

	if strings.TrimSpace(line.AccountID) == "" {
		errs.Add("accountId", "accountId is required")
	}

	hasDebit := line.Debit.IsPositive()
	hasCredit := line.Credit.IsPositive()
	switch {
	case !hasDebit && !hasCredit:
		errs.Add("amount", "line must have a debit or a credit")
	case hasDebit && hasCredit:
		errs.Add("amount", "line cannot have both a debit and a credit on the same line")
	}

	if line.Debit.IsNegative() {
		errs.Add("debit", "debit cannot be negative")
	}
	if line.Credit.IsNegative() {
		errs.Add("credit", "credit cannot be negative")
	}

	return errs
}

// ValidateAccountRecord checks a mapped account record for the fields
// the backend requires on every account.
func ValidateAccountRecord(acc model.Account) Errors {
	errs := Errors{}

	if strings.TrimSpace(acc.Code) == "" {
		errs.Add("code", "code is required")
	}
	if strings.TrimSpace(acc.Name) == "" {
		errs.Add("name", "name is required")
	}
	if !acc.Type.Valid() {
		errs.Add("accountType", "accountType is required")
	}
	if !acc.Status.Valid() {
		errs.Add("status", "status is required")
	}
	if acc.Level < 1 || acc.Level > 10 {
		errs.Add("level", "level must be an integer between 1 and 10")
	}

	return errs
}

// ValidateEntryRecord checks a mapped journal entry header.
func ValidateEntryRecord(entry model.JournalEntry) Errors {
	errs := Errors{}

	if strings.TrimSpace(entry.Date) == "" {
		errs.Add("date", "date is required")
	}
	if strings.TrimSpace(entry.Description) == "" {
		errs.Add("description", "description is required")
	}

	return errs
}
