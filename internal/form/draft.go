// Package form holds the in-memory draft state for the journal entry
// editor: header fields, line slots, touched fields and field errors.
// Totals recompute synchronously on every amount edit so the submit
// action can be gated in real time, and a failed submission leaves the
// draft intact.
package form

import (
	"fmt"
	"strings"

	"github.com/contaflow/contaflow/internal/balance"
	"github.com/contaflow/contaflow/internal/validation"
)

// MinLines is the floor of line slots kept in the editor; double-entry
// needs two sides.
const MinLines = 2

// LineField names an editable column of a line slot.
type LineField string

const (
	LineAccount     LineField = "account"
	LineDebit       LineField = "debit"
	LineCredit      LineField = "credit"
	LineDescription LineField = "description"
)

// EntryDraft is a single journal entry being edited.
type EntryDraft struct {
	Date        string
	Description string
	Reference   string
	Lines       []validation.LineInput

	FieldErrors validation.Errors
	Touched     map[string]bool

	totals balance.Totals
}

// NewEntryDraft starts a draft with the minimum two empty line slots.
func NewEntryDraft() *EntryDraft {
	d := &EntryDraft{
		Lines:       make([]validation.LineInput, MinLines),
		FieldErrors: validation.Errors{},
		Touched:     make(map[string]bool),
	}
	d.recompute()
	return d
}

// EditHeader updates a header field and clears any error previously
// shown for it; the full rule set re-runs on the next submit attempt.
func (d *EntryDraft) EditHeader(field, value string) {
	switch field {
	case "date":
		d.Date = value
	case "description":
		d.Description = value
	case "reference":
		d.Reference = value
	default:
		return
	}
	delete(d.FieldErrors, field)
	d.MarkTouched(field)
}

// EditLine updates one column of a line slot. Amount edits recompute
// totals immediately and optimistically clear a shown balance error.
func (d *EntryDraft) EditLine(index int, field LineField, value string) error {
	if index < 0 || index >= len(d.Lines) {
		return fmt.Errorf("line %d does not exist", index+1)
	}

	switch field {
	case LineAccount:
		d.Lines[index].AccountID = value
	case LineDebit:
		d.Lines[index].Debit = value
	case LineCredit:
		d.Lines[index].Credit = value
	case LineDescription:
		d.Lines[index].Description = value
	default:
		return fmt.Errorf("unknown line field '%s'", field)
	}

	delete(d.FieldErrors, fmt.Sprintf("lines[%d].amount", index))
	if field == LineDebit || field == LineCredit || field == LineAccount {
		delete(d.FieldErrors, "balance")
		delete(d.FieldErrors, "lines")
		d.recompute()
	}

	d.MarkTouched(fmt.Sprintf("lines[%d].%s", index, field))
	return nil
}

// AddLine appends an empty line slot.
func (d *EntryDraft) AddLine() {
	d.Lines = append(d.Lines, validation.LineInput{})
}

// RemoveLine drops a line slot, refusing to go below the two-line
// minimum.
func (d *EntryDraft) RemoveLine(index int) error {
	if len(d.Lines) <= MinLines {
		return fmt.Errorf("an entry needs at least %d lines", MinLines)
	}
	if index < 0 || index >= len(d.Lines) {
		return fmt.Errorf("line %d does not exist", index+1)
	}

	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	delete(d.FieldErrors, "balance")
	// Per-line errors are keyed by position, so they all go stale once
	// the slots shift; the next Validate re-keys them.
	for field := range d.FieldErrors {
		if strings.HasPrefix(field, "lines[") {
			delete(d.FieldErrors, field)
		}
	}
	d.recompute()
	return nil
}

// MarkTouched records that the user visited a field.
func (d *EntryDraft) MarkTouched(field string) {
	d.Touched[field] = true
}

// Totals returns the running debit/credit totals over the assigned
// lines.
func (d *EntryDraft) Totals() balance.Totals {
	return d.totals
}

// CanSubmit is the continuous submit gate: false whenever the assigned
// lines do not balance, independent of which errors are displayed.
func (d *EntryDraft) CanSubmit() bool {
	return d.totals.IsBalanced
}

// Validate re-runs the full client rule set and stores the result as
// the draft's field errors.
func (d *EntryDraft) Validate() validation.Errors {
	d.FieldErrors = validation.ValidateEntry(d.payloadInput())
	return d.FieldErrors
}

// Payload returns the submittable entry input with unassigned line
// slots filtered out. Call Validate first; Payload does not re-check.
func (d *EntryDraft) Payload() validation.EntryInput {
	in := d.payloadInput()
	in.Lines = in.AssignedLines()
	return in
}

func (d *EntryDraft) payloadInput() validation.EntryInput {
	return validation.EntryInput{
		Date:        strings.TrimSpace(d.Date),
		Description: strings.TrimSpace(d.Description),
		Reference:   strings.TrimSpace(d.Reference),
		Lines:       d.Lines,
	}
}

func (d *EntryDraft) recompute() {
	var amounts []balance.LineAmounts
	for _, line := range d.Lines {
		if strings.TrimSpace(line.AccountID) == "" {
			continue
		}
		amounts = append(amounts, balance.LineAmounts{Debit: line.Debit, Credit: line.Credit})
	}
	d.totals = balance.Compute(amounts)
}
