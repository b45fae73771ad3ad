package prompts

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/contaflow/contaflow/internal/model"
)

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptDescription prompts for a description text
func PromptDescription(message string, required bool) (string, error) {
	var desc string

	input := huh.NewInput().
		Title(message).
		Value(&desc)

	if required {
		input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("description is required")
			}
			return nil
		})
	}

	err := input.Run()
	return desc, err
}

// PromptAmount prompts for an amount with custom validation
func PromptAmount(message string, helpText string, validator func(string) error) (string, error) {
	var amount string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&amount)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return amount, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptDate prompts for a date in YYYY-MM-DD format, defaulting to today
func PromptDate(message string, helpText string, validator func(string) error) (string, error) {
	defaultDate := time.Now().Format(model.DateFormat)

	var date string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Placeholder(defaultDate).
		Value(&date)

	if validator != nil {
		input.Validate(func(s string) error {
			if s == "" {
				return nil // placeholder default fills in
			}
			return validator(s)
		})
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if date == "" {
		return defaultDate, nil
	}
	return date, nil
}

// PromptSelect prompts for a selection from display/value option pairs
func PromptSelect(message string, options []huh.Option[string], defaultValue string) (string, error) {
	selected := defaultValue

	err := huh.NewSelect[string]().
		Title(message).
		Options(options...).
		Value(&selected).
		Run()

	return selected, err
}

// Options builds huh options where display text and value are the same
func Options(values []string) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}
