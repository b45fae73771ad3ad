package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a journal entry (póliza).
type EntryStatus string

const (
	EntryStatusDraft    EntryStatus = "draft"
	EntryStatusPending  EntryStatus = "pending"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusPosted   EntryStatus = "posted"
	EntryStatusReversed EntryStatus = "reversed"
)

func (s EntryStatus) Valid() bool {
	switch s {
	case EntryStatusDraft, EntryStatusPending, EntryStatusApproved,
		EntryStatusPosted, EntryStatusReversed:
		return true
	}
	return false
}

func (s EntryStatus) Label() string {
	switch s {
	case EntryStatusDraft:
		return "Draft"
	case EntryStatusPending:
		return "Pending"
	case EntryStatusApproved:
		return "Approved"
	case EntryStatusPosted:
		return "Posted"
	case EntryStatusReversed:
		return "Reversed"
	}
	return string(s)
}

// Editable reports whether the entry and its lines may still change.
// Lines are immutable once the entry leaves draft.
func (s EntryStatus) Editable() bool {
	return s == EntryStatusDraft
}

// JournalEntry is a double-entry posting. TotalDebit and TotalCredit are
// computed by the server and read-only on the client.
type JournalEntry struct {
	ID             string
	JournalID      string
	FiscalPeriodID string
	Number         string // human-readable sequence, e.g. "JE-2025-001"
	Date           string // YYYY-MM-DD
	Description    string
	Reference      string
	Status         EntryStatus
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	ApprovedAt     *time.Time
	ApprovedByID   string
	PostedAt       *time.Time
	PostedByID     string
	ReversalOfID   string // set on the reversing entry
	Lines          []JournalLine
}

// JournalLine is one debit-or-credit leg of an entry. A line is owned by
// exactly one entry and cannot outlive it. Exactly one of Debit/Credit
// is nonzero on a valid line.
type JournalLine struct {
	ID             string
	JournalEntryID string
	AccountID      string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	Description    string
	ContactID      string
	CostCenterID   string
	PartnerID      string

	// Account is populated when the entry was fetched with includes.
	Account *Account
}

// DateFormat is the wire and display layout for entry dates.
const DateFormat = "2006-01-02"
