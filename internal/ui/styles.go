package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// PrintBalanceStatus renders the running totals line shown under the
// entry editor.
func PrintBalanceStatus(totalDebit, totalCredit, difference string, balanced bool) {
	if balanced {
		pterm.Success.Printf("Balanced  |  Debit: %s  Credit: %s\n", totalDebit, totalCredit)
		return
	}
	pterm.Warning.Printf("Out of balance by %s  |  Debit: %s  Credit: %s\n", difference, totalDebit, totalCredit)
}
