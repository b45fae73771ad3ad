package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/validation"
)

// PromptAccountForm walks through every account field and returns the
// collected form payload. Cross-field rules run in the service, not
// here; the per-prompt validators just catch obvious typos early.
func PromptAccountForm(existing []model.Account, defaultCurrency string) (validation.AccountInput, error) {
	var in validation.AccountInput

	code, err := PromptInput("Account code:", "", validation.ValidateRequired("code"))
	if err != nil {
		return in, err
	}
	in.Code = code

	name, err := PromptInput("Account name:", "", validation.ValidateRequired("name"))
	if err != nil {
		return in, err
	}
	in.Name = name

	accType, err := PromptAccountType()
	if err != nil {
		return in, err
	}
	in.Type = accType

	nature, err := PromptSelect("Account nature:", []huh.Option[string]{
		huh.NewOption("Debit", string(model.NatureDebit)),
		huh.NewOption("Credit", string(model.NatureCredit)),
	}, string(model.NatureDebit))
	if err != nil {
		return in, err
	}
	in.Nature = nature

	level, err := PromptInput("Level (1-10):", "1", func(s string) error {
		n, convErr := strconv.Atoi(strings.TrimSpace(s))
		if convErr != nil || n < 1 || n > 10 {
			return fmt.Errorf("level must be an integer between 1 and 10")
		}
		return nil
	})
	if err != nil {
		return in, err
	}
	in.Level, _ = strconv.Atoi(strings.TrimSpace(level))

	parentID, err := PromptParentAccount(existing)
	if err != nil {
		return in, err
	}
	in.ParentID = parentID

	postable, err := PromptConfirm("Can journal lines post to this account?", true)
	if err != nil {
		return in, err
	}
	in.IsPostable = postable

	currency, err := PromptInput(
		fmt.Sprintf("Currency (Enter for %s):", defaultCurrency),
		defaultCurrency,
		validation.ValidateCurrencyCode,
	)
	if err != nil {
		return in, err
	}
	in.Currency = currency

	desc, err := PromptDescription("Description (optional):", false)
	if err != nil {
		return in, err
	}
	in.Description = desc

	return in, nil
}

// PromptAccountType selects one of the five account types.
func PromptAccountType() (string, error) {
	var opts []huh.Option[string]
	for _, t := range model.AccountTypes {
		opts = append(opts, huh.NewOption(t.Label(), string(t)))
	}
	return PromptSelect("Account type:", opts, string(model.AccountTypeAsset))
}

// PromptParentAccount picks an optional parent from the existing chart.
// Returns "" for a root account.
func PromptParentAccount(accounts []model.Account) (string, error) {
	opts := []huh.Option[string]{huh.NewOption("(none - root account)", "")}
	for _, acc := range accounts {
		display := fmt.Sprintf("%s  %s", acc.Code, acc.Name)
		opts = append(opts, huh.NewOption(display, acc.ID))
	}

	return PromptSelect("Parent account:", opts, "")
}

// PromptAccountSelection picks one account out of a postable set,
// showing code and name. Errors if the set is empty rather than
// rendering an empty picker.
func PromptAccountSelection(accounts []model.Account, message string) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no postable accounts available")
	}

	var opts []huh.Option[string]
	for _, acc := range accounts {
		display := fmt.Sprintf("%s  %s (%s)", acc.Code, acc.Name, acc.Type.Label())
		opts = append(opts, huh.NewOption(display, acc.ID))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(15).
		Run()

	return selected, err
}
