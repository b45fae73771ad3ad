package jsonapi

import (
	"time"

	"github.com/contaflow/contaflow/internal/model"
)

// EntryFromResource maps a journal entry resource. Totals are server
// computed and read back as-is; the client never sends them.
func EntryFromResource(res Resource) model.JournalEntry {
	attrs := res.Attributes

	journalID := idAttr(attrs, "journalId")
	if journalID == "" {
		journalID = res.relationshipID("journal")
	}
	periodID := idAttr(attrs, "fiscalPeriodId")
	if periodID == "" {
		periodID = res.relationshipID("fiscalPeriod")
	}

	return model.JournalEntry{
		ID:             res.ID,
		JournalID:      journalID,
		FiscalPeriodID: periodID,
		Number:         stringAttr(attrs, "number"),
		Date:           stringAttr(attrs, "date"),
		Description:    stringAttr(attrs, "description"),
		Reference:      stringAttr(attrs, "reference"),
		Status:         model.EntryStatus(stringAttr(attrs, "status")),
		TotalDebit:     decimalAttr(attrs, "totalDebit"),
		TotalCredit:    decimalAttr(attrs, "totalCredit"),
		ApprovedAt:     timeAttr(attrs, "approvedAt"),
		ApprovedByID:   idAttr(attrs, "approvedById"),
		PostedAt:       timeAttr(attrs, "postedAt"),
		PostedByID:     idAttr(attrs, "postedById"),
		ReversalOfID:   idAttr(attrs, "reversalOfId"),
	}
}

// EntriesFromCollection maps a collection response body, attaching lines
// and their accounts from the `included` member when the request asked
// for includes.
func EntriesFromCollection(body []byte) []model.JournalEntry {
	resources := DecodeCollection(body)
	included := DecodeIncluded(body)

	entries := make([]model.JournalEntry, 0, len(resources))
	for _, res := range resources {
		entry := EntryFromResource(res)
		entry.Lines = linesForEntry(entry.ID, included)
		entries = append(entries, entry)
	}
	return entries
}

// EntryFromDocument maps a single-resource response, attaching included
// lines and accounts.
func EntryFromDocument(doc Document) model.JournalEntry {
	if doc.Data == nil {
		return model.JournalEntry{}
	}
	entry := EntryFromResource(*doc.Data)
	entry.Lines = linesForEntry(entry.ID, doc.Included)
	return entry
}

func linesForEntry(entryID string, included []Resource) []model.JournalLine {
	if entryID == "" {
		return nil
	}

	accounts := make(map[string]model.Account)
	for _, res := range included {
		if res.Type == TypeAccounts {
			accounts[res.ID] = AccountFromResource(res)
		}
	}

	var lines []model.JournalLine
	for _, res := range included {
		if res.Type != TypeJournalLines {
			continue
		}
		line := LineFromResource(res)
		if line.JournalEntryID != entryID {
			continue
		}
		if acc, ok := accounts[line.AccountID]; ok {
			accCopy := acc
			line.Account = &accCopy
		}
		lines = append(lines, line)
	}
	return lines
}

// LineFromResource maps a journal line resource.
func LineFromResource(res Resource) model.JournalLine {
	attrs := res.Attributes

	entryID := idAttr(attrs, "journalEntryId")
	if entryID == "" {
		entryID = res.relationshipID("journalEntry")
	}
	accountID := idAttr(attrs, "accountId")
	if accountID == "" {
		accountID = res.relationshipID("account")
	}

	return model.JournalLine{
		ID:             res.ID,
		JournalEntryID: entryID,
		AccountID:      accountID,
		Debit:          decimalAttr(attrs, "debit"),
		Credit:         decimalAttr(attrs, "credit"),
		Description:    stringAttr(attrs, "description"),
		ContactID:      idAttr(attrs, "contactId"),
		CostCenterID:   idAttr(attrs, "costCenterId"),
		PartnerID:      idAttr(attrs, "partnerId"),
	}
}

// EntryToDocument builds the request body for creating an entry header.
// Lines travel in their own requests; totals and status are server-side.
func EntryToDocument(entry model.JournalEntry) Document {
	attrs := map[string]any{
		"date":        entry.Date,
		"description": entry.Description,
	}
	setIfPresent(attrs, "reference", entry.Reference)

	res := &Resource{
		Type:       TypeJournalEntries,
		ID:         entry.ID,
		Attributes: attrs,
	}

	rels := map[string]Relationship{}
	if entry.JournalID != "" {
		rels["journal"] = Ref(TypeJournals, entry.JournalID)
	}
	if entry.FiscalPeriodID != "" {
		rels["fiscalPeriod"] = Ref(TypeFiscalPeriods, entry.FiscalPeriodID)
	}
	if len(rels) > 0 {
		res.Relationships = rels
	}

	return Document{Data: res}
}

// LineToDocument builds the request body for creating one journal line
// under its entry. Amounts go out as raw JSON numbers.
func LineToDocument(line model.JournalLine) Document {
	attrs := map[string]any{
		"debit":  number(line.Debit),
		"credit": number(line.Credit),
	}
	setIfPresent(attrs, "description", line.Description)

	rels := map[string]Relationship{
		"journalEntry": Ref(TypeJournalEntries, line.JournalEntryID),
		"account":      Ref(TypeAccounts, line.AccountID),
	}
	if line.ContactID != "" {
		rels["contact"] = Ref(TypeContacts, line.ContactID)
	}
	if line.CostCenterID != "" {
		rels["costCenter"] = Ref(TypeCostCenters, line.CostCenterID)
	}
	if line.PartnerID != "" {
		rels["partner"] = Ref(TypePartners, line.PartnerID)
	}

	return Document{Data: &Resource{
		Type:          TypeJournalLines,
		ID:            line.ID,
		Attributes:    attrs,
		Relationships: rels,
	}}
}

func timeAttr(attrs map[string]any, key string) *time.Time {
	v, ok := lookup(attrs, key)
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	for _, layout := range []string{time.RFC3339, model.DateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
