package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/contaflow/contaflow/internal/form"
	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/ui"
	"github.com/contaflow/contaflow/internal/validation"
)

const (
	actionEditLine   = "edit"
	actionAddLine    = "add"
	actionRemoveLine = "remove"
	actionSubmit     = "submit"
	actionCancel     = "cancel"
)

// ErrEditorCancelled reports that the user left the entry editor
// without submitting. The draft is simply discarded.
var ErrEditorCancelled = fmt.Errorf("entry cancelled")

// RunEntryEditor drives the interactive journal entry editor: header
// prompts first, then a line-editing loop with running totals. The
// submit action only unlocks once the assigned lines balance, and a
// validation failure keeps the draft so nothing typed is lost.
func RunEntryEditor(accounts []model.Account) (validation.EntryInput, error) {
	draft := form.NewEntryDraft()

	if err := promptEntryHeader(draft); err != nil {
		return validation.EntryInput{}, err
	}

	for {
		renderDraft(draft, accounts)

		action, err := promptEntryAction(draft)
		if err != nil {
			return validation.EntryInput{}, err
		}

		switch action {
		case actionEditLine:
			if err := promptEditLine(draft, accounts); err != nil {
				return validation.EntryInput{}, err
			}
		case actionAddLine:
			draft.AddLine()
		case actionRemoveLine:
			if err := promptRemoveLine(draft); err != nil {
				return validation.EntryInput{}, err
			}
		case actionSubmit:
			if errs := draft.Validate(); !errs.Valid() {
				for _, field := range errs.Fields() {
					pterm.Warning.Printf("%s: %s\n", field, errs[field])
				}
				continue
			}
			return draft.Payload(), nil
		case actionCancel:
			return validation.EntryInput{}, ErrEditorCancelled
		}
	}
}

func promptEntryHeader(draft *form.EntryDraft) error {
	date, err := PromptDate("Entry date (YYYY-MM-DD):", "Press Enter for today", validation.ValidateDateInput)
	if err != nil {
		return err
	}
	draft.EditHeader("date", date)

	desc, err := PromptDescription("Description:", true)
	if err != nil {
		return err
	}
	draft.EditHeader("description", desc)

	ref, err := PromptInput("Reference (optional):", "", nil)
	if err != nil {
		return err
	}
	draft.EditHeader("reference", ref)

	return nil
}

func promptEntryAction(draft *form.EntryDraft) (string, error) {
	opts := []huh.Option[string]{
		huh.NewOption("Edit a line", actionEditLine),
		huh.NewOption("Add a line", actionAddLine),
	}
	if len(draft.Lines) > form.MinLines {
		opts = append(opts, huh.NewOption("Remove a line", actionRemoveLine))
	}

	submitLabel := "Submit entry"
	if !draft.CanSubmit() {
		submitLabel = "Submit entry (not balanced yet)"
	}
	opts = append(opts,
		huh.NewOption(submitLabel, actionSubmit),
		huh.NewOption("Cancel", actionCancel),
	)

	return PromptSelect("What next?", opts, actionEditLine)
}

func promptEditLine(draft *form.EntryDraft, accounts []model.Account) error {
	index, err := promptLineIndex(draft, "Which line?")
	if err != nil {
		return err
	}

	accountID, err := PromptAccountSelection(accounts, fmt.Sprintf("Account for line %d:", index+1))
	if err != nil {
		return err
	}
	if err := draft.EditLine(index, form.LineAccount, accountID); err != nil {
		return err
	}

	debit, err := PromptAmount(
		fmt.Sprintf("Debit amount for line %d:", index+1),
		"Leave blank for 0.00",
		validation.ValidateAmountInput,
	)
	if err != nil {
		return err
	}
	if err := draft.EditLine(index, form.LineDebit, debit); err != nil {
		return err
	}

	credit, err := PromptAmount(
		fmt.Sprintf("Credit amount for line %d:", index+1),
		"Leave blank for 0.00",
		validation.ValidateAmountInput,
	)
	if err != nil {
		return err
	}
	if err := draft.EditLine(index, form.LineCredit, credit); err != nil {
		return err
	}

	memo, err := PromptInput("Line description (optional):", "", nil)
	if err != nil {
		return err
	}
	return draft.EditLine(index, form.LineDescription, memo)
}

func promptRemoveLine(draft *form.EntryDraft) error {
	index, err := promptLineIndex(draft, "Remove which line?")
	if err != nil {
		return err
	}
	return draft.RemoveLine(index)
}

func promptLineIndex(draft *form.EntryDraft, message string) (int, error) {
	var opts []huh.Option[int]
	for i, line := range draft.Lines {
		label := fmt.Sprintf("Line %d", i+1)
		if line.AccountID != "" {
			label = fmt.Sprintf("Line %d (debit %s, credit %s)", i+1, orZero(line.Debit), orZero(line.Credit))
		}
		opts = append(opts, huh.NewOption(label, i))
	}

	var index int
	err := huh.NewSelect[int]().
		Title(message).
		Options(opts...).
		Value(&index).
		Run()

	return index, err
}

func renderDraft(draft *form.EntryDraft, accounts []model.Account) {
	names := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		names[acc.ID] = fmt.Sprintf("%s %s", acc.Code, acc.Name)
	}

	pterm.Println()
	ui.PrintL2Title("Entry Draft: %s", draft.Description)

	tableData := pterm.TableData{{"#", "Account", "Debit", "Credit", "Memo"}}
	for i, line := range draft.Lines {
		account := names[line.AccountID]
		if account == "" {
			account = "(unassigned)"
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", i+1),
			account,
			orZero(line.Debit),
			orZero(line.Credit),
			line.Description,
		})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render(); err != nil {
		pterm.Error.Println(err)
	}

	totals := draft.Totals()
	ui.PrintBalanceStatus(
		totals.TotalDebit.StringFixed(2),
		totals.TotalCredit.StringFixed(2),
		totals.Difference.Abs().StringFixed(2),
		totals.IsBalanced,
	)
}

func orZero(amount string) string {
	if amount == "" {
		return "0.00"
	}
	return amount
}
