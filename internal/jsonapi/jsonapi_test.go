package jsonapi

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflow/contaflow/internal/model"
)

func TestAccountFromResource_SnakeCaseAndNumericIDs(t *testing.T) {
	body := []byte(`{
		"data": {
			"type": "accounts",
			"id": "42",
			"attributes": {
				"code": "1100-01",
				"name": "Bancos Nacionales",
				"account_type": "asset",
				"nature": "debit",
				"level": 3,
				"parent_id": 7,
				"is_postable": true,
				"status": "active"
			}
		}
	}`)

	doc, err := DecodeDocument(body)
	require.NoError(t, err)
	require.NotNil(t, doc.Data)

	acc := AccountFromResource(*doc.Data)
	assert.Equal(t, "42", acc.ID)
	assert.Equal(t, "1100-01", acc.Code)
	assert.Equal(t, model.AccountTypeAsset, acc.Type)
	assert.Equal(t, 3, acc.Level)
	require.NotNil(t, acc.ParentID)
	assert.Equal(t, "7", *acc.ParentID, "numeric parent id coerces to string")
	assert.True(t, acc.IsPostable)
	assert.Equal(t, "MXN", acc.Currency, "currency defaults when absent")
}

func TestAccountFromResource_NullParentPreserved(t *testing.T) {
	res := Resource{
		Type: TypeAccounts,
		ID:   "1",
		Attributes: map[string]any{
			"code":       "1000",
			"name":       "Activo",
			"parentId":   nil,
			"currency":   "USD",
			"isPostable": false,
		},
	}

	acc := AccountFromResource(res)
	assert.Nil(t, acc.ParentID)
	assert.Equal(t, "USD", acc.Currency)
}

func TestAccountsFromCollection_MalformedBodies(t *testing.T) {
	cases := map[string]string{
		"empty object":   `{}`,
		"null data":      `{"data": null}`,
		"non-array data": `{"data": "not-an-array"}`,
		"not json":       `<!doctype html>`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			accounts := AccountsFromCollection([]byte(body))
			assert.Empty(t, accounts)
		})
	}
}

func TestAccountToDocument_Defaults(t *testing.T) {
	doc := AccountToDocument(model.Account{
		Code:  "5000",
		Name:  "Gastos",
		Type:  model.AccountTypeExpense,
		Level: 1,
	})

	require.NotNil(t, doc.Data)
	assert.Equal(t, TypeAccounts, doc.Data.Type)
	assert.Equal(t, "MXN", doc.Data.Attributes["currency"])
	assert.Equal(t, map[string]any{}, doc.Data.Attributes["metadata"])
	_, hasDesc := doc.Data.Attributes["description"]
	assert.False(t, hasDesc, "unset optional fields are omitted, not null-padded")
	assert.Nil(t, doc.Data.Relationships)
}

func TestAccountRoundTrip(t *testing.T) {
	parent := "9"
	original := model.Account{
		ID:          "15",
		Code:        "1100-02",
		Name:        "Caja Chica",
		Type:        model.AccountTypeAsset,
		Nature:      model.NatureDebit,
		Level:       4,
		ParentID:    &parent,
		IsPostable:  true,
		Status:      model.AccountStatusActive,
		Currency:    "MXN",
		Description: "petty cash",
		Metadata:    map[string]any{"branch": "centro"},
	}

	doc := AccountToDocument(original)

	// Through the wire and back.
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	decoded, err := DecodeDocument(raw)
	require.NoError(t, err)

	restored := AccountFromResource(*decoded.Data)
	assert.Equal(t, original, restored)
}

func TestLeadToDocument_RelationshipsNotAttributes(t *testing.T) {
	doc := LeadToDocument(model.Lead{
		Name:            "Acme SA",
		Status:          model.LeadStatusNew,
		PipelineStageID: "3",
		CampaignID:      "12",
	})

	require.NotNil(t, doc.Data)
	_, inAttrs := doc.Data.Attributes["pipelineStageId"]
	assert.False(t, inAttrs, "references belong under relationships")

	stage := doc.Data.Relationships["pipelineStage"]
	require.NotNil(t, stage.Data)
	assert.Equal(t, TypePipelineStages, stage.Data.Type)
	assert.Equal(t, "3", stage.Data.ID)

	campaign := doc.Data.Relationships["campaign"]
	require.NotNil(t, campaign.Data)
	assert.Equal(t, TypeCampaigns, campaign.Data.Type)
}

func TestLineToDocument_AmountsAsNumbers(t *testing.T) {
	doc := LineToDocument(model.JournalLine{
		JournalEntryID: "20",
		AccountID:      "1",
		Debit:          decimal.RequireFromString("1500.50"),
		Credit:         decimal.Zero,
	})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"debit":1500.5`)
	assert.NotContains(t, string(raw), `"debit":"1500.50"`)
}

func TestEntriesFromCollection_IncludedLinesAndAccounts(t *testing.T) {
	body := []byte(`{
		"data": [{
			"type": "journal-entries",
			"id": "20",
			"attributes": {
				"number": "JE-2025-001",
				"date": "2025-01-15",
				"description": "Test Journal Entry",
				"status": "draft",
				"total_debit": "1000",
				"total_credit": 1000
			}
		}],
		"included": [
			{
				"type": "journal-lines",
				"id": "100",
				"attributes": {"journal_entry_id": 20, "account_id": 1, "debit": 1000, "credit": 0}
			},
			{
				"type": "journal-lines",
				"id": "101",
				"attributes": {"journalEntryId": "20", "accountId": "2", "debit": "0", "credit": "1000"}
			},
			{
				"type": "accounts",
				"id": "1",
				"attributes": {"code": "1100", "name": "Bancos", "accountType": "asset", "isPostable": true, "status": "active", "level": 2}
			}
		]
	}`)

	entries := EntriesFromCollection(body)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, model.EntryStatusDraft, entry.Status)
	assert.Equal(t, "1000", entry.TotalDebit.String())
	assert.Equal(t, "1000", entry.TotalCredit.String())

	require.Len(t, entry.Lines, 2)
	assert.Equal(t, "1", entry.Lines[0].AccountID)
	require.NotNil(t, entry.Lines[0].Account)
	assert.Equal(t, "Bancos", entry.Lines[0].Account.Name)
	assert.Nil(t, entry.Lines[1].Account, "no included account for line 2")
	assert.Equal(t, "1000", entry.Lines[1].Credit.String())
}

func TestEntryToDocument_Relationships(t *testing.T) {
	doc := EntryToDocument(model.JournalEntry{
		Date:           "2025-01-15",
		Description:    "desc",
		JournalID:      "2",
		FiscalPeriodID: "8",
	})

	require.NotNil(t, doc.Data)
	assert.Equal(t, TypeJournalEntries, doc.Data.Type)
	assert.Equal(t, "2", doc.Data.Relationships["journal"].Data.ID)
	assert.Equal(t, TypeFiscalPeriods, doc.Data.Relationships["fiscalPeriod"].Data.Type)
	_, hasStatus := doc.Data.Attributes["status"]
	assert.False(t, hasStatus, "status is server-side")
}

func TestCampaignFromResource(t *testing.T) {
	res := Resource{
		Type: TypeCampaigns,
		ID:   "5",
		Attributes: map[string]any{
			"name":          "Expo Guadalajara",
			"campaign_type": "event",
			"status":        "active",
			"start_date":    "2025-05-01",
			"end_date":      "2025-05-03",
			"budget":        150000.75,
		},
	}

	c := CampaignFromResource(res)
	assert.Equal(t, model.CampaignTypeEvent, c.Type)
	assert.Equal(t, "150000.75", c.Budget.String())
	assert.Equal(t, "2025-05-03", c.EndDate)
}
