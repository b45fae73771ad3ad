package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/contaflow/contaflow/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// AccountInput is the account form payload. Flat single-field rules live
// in the struct tags; cross-field and enum checks are explicit below.
type AccountInput struct {
	Code        string `validate:"required,max=255"`
	Name        string `validate:"required,max=255"`
	Type        string `validate:"required"`
	Nature      string
	Level       int `validate:"min=1,max=10"`
	ParentID    string
	IsPostable  bool
	Status      string
	Currency    string
	Description string
}

// ValidateAccount checks an account form payload.
func ValidateAccount(in AccountInput) Errors {
	errs := Errors{}

	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				addAccountFieldError(errs, fe)
			}
		}
	}

	if in.Type != "" && !model.AccountType(in.Type).Valid() {
		errs.Add("accountType", fmt.Sprintf("invalid account type '%s'", in.Type))
	}
	if in.Nature != "" && !model.AccountNature(in.Nature).Valid() {
		errs.Add("nature", fmt.Sprintf("invalid nature '%s' (must be debit or credit)", in.Nature))
	}
	if in.Status != "" && !model.AccountStatus(in.Status).Valid() {
		errs.Add("status", fmt.Sprintf("invalid status '%s'", in.Status))
	}

	return errs
}

func addAccountFieldError(errs Errors, fe validator.FieldError) {
	switch fe.StructField() {
	case "Code":
		if fe.Tag() == "max" {
			errs.Add("code", "code cannot exceed 255 characters")
		} else {
			errs.Add("code", "code is required")
		}
	case "Name":
		if fe.Tag() == "max" {
			errs.Add("name", "name cannot exceed 255 characters")
		} else {
			errs.Add("name", "name is required")
		}
	case "Type":
		errs.Add("accountType", "account type is required")
	case "Level":
		errs.Add("level", "level must be an integer between 1 and 10")
	}
}

// ValidateCurrencyCode checks an ISO 4217 code for the currency prompt.
// Blank is allowed; the default currency fills in later.
func ValidateCurrencyCode(code string) error {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" {
		return nil
	}
	if len(code) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. MXN)")
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}
	return nil
}
