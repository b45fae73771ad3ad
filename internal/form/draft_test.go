package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftWithBalancedLines(t *testing.T) *EntryDraft {
	t.Helper()
	d := NewEntryDraft()
	d.EditHeader("date", "2025-01-15")
	d.EditHeader("description", "Test Journal Entry")
	require.NoError(t, d.EditLine(0, LineAccount, "1"))
	require.NoError(t, d.EditLine(0, LineDebit, "1000"))
	require.NoError(t, d.EditLine(1, LineAccount, "2"))
	require.NoError(t, d.EditLine(1, LineCredit, "1000"))
	return d
}

func TestDraft_StartsWithTwoLines(t *testing.T) {
	d := NewEntryDraft()
	assert.Len(t, d.Lines, 2)
	assert.True(t, d.Validate().Valid() == false, "empty draft does not validate")
}

func TestDraft_BalanceGateTracksEdits(t *testing.T) {
	d := draftWithBalancedLines(t)
	assert.True(t, d.CanSubmit())

	require.NoError(t, d.EditLine(1, LineCredit, "800"))
	assert.False(t, d.CanSubmit(), "gate closes while unbalanced")
	assert.Equal(t, "200", d.Totals().Difference.String())

	require.NoError(t, d.EditLine(1, LineCredit, "1000"))
	assert.True(t, d.CanSubmit())
}

func TestDraft_ValidSubmitScenario(t *testing.T) {
	d := draftWithBalancedLines(t)

	errs := d.Validate()
	require.True(t, errs.Valid(), "unexpected errors: %v", errs)

	payload := d.Payload()
	assert.Len(t, payload.Lines, 2)
	assert.Equal(t, "1000", d.Totals().TotalDebit.String())
	assert.Equal(t, "1000", d.Totals().TotalCredit.String())
}

func TestDraft_UnassignedThirdSlotFilteredFromPayload(t *testing.T) {
	d := draftWithBalancedLines(t)
	d.AddLine()
	// Stray amount in a slot with no account assigned.
	require.NoError(t, d.EditLine(2, LineDebit, "55.55"))

	assert.True(t, d.CanSubmit(), "unassigned slots do not affect the gate")
	require.True(t, d.Validate().Valid())
	assert.Len(t, d.Payload().Lines, 2)
}

func TestDraft_RemoveLineFloor(t *testing.T) {
	d := NewEntryDraft()
	assert.Error(t, d.RemoveLine(0), "cannot go below two lines")

	d.AddLine()
	require.NoError(t, d.RemoveLine(2))
	assert.Len(t, d.Lines, 2)

	assert.Error(t, d.RemoveLine(5))
}

func TestDraft_RemoveLineDropsStaleLineErrors(t *testing.T) {
	// Per-line errors are keyed by slot position, so removing a line
	// shifts every later slot and leaves the keys pointing at the wrong
	// lines.
	d := draftWithBalancedLines(t)
	d.AddLine()
	require.NoError(t, d.EditLine(2, LineAccount, "3"))
	require.NoError(t, d.EditLine(2, LineDebit, "50"))
	require.NoError(t, d.EditLine(2, LineCredit, "50"))

	errs := d.Validate()
	require.Contains(t, errs, "lines[2].amount")

	require.NoError(t, d.RemoveLine(0))
	assert.NotContains(t, d.FieldErrors, "lines[2].amount")

	errs = d.Validate()
	require.Contains(t, errs, "lines[1].amount")
}

func TestDraft_EditClearsShownErrors(t *testing.T) {
	d := draftWithBalancedLines(t)
	require.NoError(t, d.EditLine(1, LineCredit, "800"))

	errs := d.Validate()
	require.Contains(t, errs, "balance")

	// Editing an amount optimistically clears the displayed balance
	// error; the full rule set re-runs on the next submit attempt.
	require.NoError(t, d.EditLine(1, LineCredit, "1000"))
	assert.NotContains(t, d.FieldErrors, "balance")

	d.EditHeader("description", "")
	errs = d.Validate()
	require.Contains(t, errs, "description")
	d.EditHeader("description", "fixed")
	assert.NotContains(t, d.FieldErrors, "description")
}

func TestDraft_TouchedTracking(t *testing.T) {
	d := NewEntryDraft()
	d.EditHeader("date", "2025-01-15")
	require.NoError(t, d.EditLine(0, LineDebit, "10"))

	assert.True(t, d.Touched["date"])
	assert.True(t, d.Touched["lines[0].debit"])
	assert.False(t, d.Touched["description"])
}
