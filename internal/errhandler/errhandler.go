package errhandler

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/store"
)

// HandleError prints a user-facing message for err. Cancelling a prompt
// is a normal exit, not an error.
func HandleError(err error) {
	if errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt") {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	var vErr *service.ValidationFailedError
	if errors.As(err, &vErr) {
		pterm.Error.Println("Validation failed:")
		for _, field := range vErr.Errors.Fields() {
			pterm.Printf("  %s: %s\n", field, vErr.Errors[field])
		}
		return
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		pterm.Error.Println("Not found")
	case errors.Is(err, store.ErrConflict):
		pterm.Error.Printf("Conflict: %v\n", err)
	case store.IsValidationError(err):
		pterm.Error.Printf("The backend rejected the request: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
