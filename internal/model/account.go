package model

// AccountType classifies a node in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists every valid account type, in report order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Label returns the display name for t.
func (t AccountType) Label() string {
	switch t {
	case AccountTypeAsset:
		return "Asset"
	case AccountTypeLiability:
		return "Liability"
	case AccountTypeEquity:
		return "Equity"
	case AccountTypeRevenue:
		return "Revenue"
	case AccountTypeExpense:
		return "Expense"
	}
	return string(t)
}

// AccountNature is the normal balance side of an account.
type AccountNature string

const (
	NatureDebit  AccountNature = "debit"
	NatureCredit AccountNature = "credit"
)

func (n AccountNature) Valid() bool {
	return n == NatureDebit || n == NatureCredit
}

// AccountStatus is the lifecycle state of an account. Accounts are never
// deleted in place; they transition to inactive or archived.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusArchived AccountStatus = "archived"
)

func (s AccountStatus) Valid() bool {
	switch s {
	case AccountStatusActive, AccountStatusInactive, AccountStatusArchived:
		return true
	}
	return false
}

func (s AccountStatus) Label() string {
	switch s {
	case AccountStatusActive:
		return "Active"
	case AccountStatusInactive:
		return "Inactive"
	case AccountStatusArchived:
		return "Archived"
	}
	return string(s)
}

// Account is a ledger account node. IDs are strings everywhere on the
// client so identity comparison never trips over the backend sending
// numeric ids in some payloads and strings in others.
type Account struct {
	ID          string
	Code        string
	Name        string
	Type        AccountType
	Nature      AccountNature
	Level       int
	ParentID    *string // nil = root account
	IsPostable  bool
	Status      AccountStatus
	Currency    string
	Description string
	Metadata    map[string]any
}

// Postable reports whether journal lines may target this account.
func (a *Account) Postable() bool {
	return a.IsPostable && a.Status == AccountStatusActive
}
