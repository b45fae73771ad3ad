package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contaflow/contaflow/internal/model"
)

// Prompt validators plug into huh inputs, so they return a plain error
// for the single field being edited instead of an Errors map.

// ValidateRequired returns a validator that rejects blank input.
func ValidateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// ValidateDateInput checks YYYY-MM-DD input. Blank is allowed so the
// prompt default can fill in.
func ValidateDateInput(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(model.DateFormat, s); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return nil
}

// ValidateAmountInput checks a debit/credit amount field. Blank means
// zero and is allowed; negative amounts are not.
func ValidateAmountInput(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if d.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	return nil
}
