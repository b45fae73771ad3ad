package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/contaflow/contaflow/internal/model"
)

func TestValidateCampaign_DateOrder(t *testing.T) {
	in := CampaignInput{
		Name:      "Spring Promo",
		Type:      "email",
		StartDate: "2025-03-01",
		EndDate:   "2025-02-01",
	}

	errs := ValidateCampaign(in)
	assert.Equal(t, "end date cannot be before start date", errs["endDate"])

	in.EndDate = "2025-03-01" // same day is fine
	assert.True(t, ValidateCampaign(in).Valid())
}

func TestValidateCampaign_Required(t *testing.T) {
	errs := ValidateCampaign(CampaignInput{})
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "campaign type is required", errs["type"])
	assert.Equal(t, "start date is required", errs["startDate"])
}

func TestValidateLead(t *testing.T) {
	errs := ValidateLead(LeadInput{Email: "not-an-email", Rating: "tepid"})
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "email is not a valid address", errs["email"])
	assert.Contains(t, errs["rating"], "tepid")

	ok := ValidateLead(LeadInput{Name: "Acme SA", Email: "buyer@acme.mx", Status: "new", Rating: "hot"})
	assert.True(t, ok.Valid())
}

func TestValidateLineRecord(t *testing.T) {
	line := model.JournalLine{AccountID: "7", Debit: decimal.NewFromInt(100)}
	assert.True(t, ValidateLineRecord(line).Valid())

	line.Credit = decimal.NewFromInt(100)
	errs := ValidateLineRecord(line)
	assert.Equal(t, "line cannot have both a debit and a credit on the same line", errs["amount"])

	empty := model.JournalLine{}
	errs = ValidateLineRecord(empty)
	assert.Equal(t, "accountId is required", errs["accountId"])
	assert.Equal(t, "line must have a debit or a credit", errs["amount"])
}

func TestValidateAccountRecord(t *testing.T) {
	acc := model.Account{
		Code:   "1100",
		Name:   "Bancos",
		Type:   model.AccountTypeAsset,
		Status: model.AccountStatusActive,
		Level:  2,
	}
	assert.True(t, ValidateAccountRecord(acc).Valid())

	errs := ValidateAccountRecord(model.Account{})
	for _, field := range []string{"code", "name", "accountType", "status", "level"} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateEntryRecord(t *testing.T) {
	entry := model.JournalEntry{Date: "2025-01-15", Description: "ok"}
	assert.True(t, ValidateEntryRecord(entry).Valid())

	errs := ValidateEntryRecord(model.JournalEntry{})
	assert.Contains(t, errs, "date")
	assert.Contains(t, errs, "description")
}
