package store

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/contaflow/contaflow/internal/jsonapi"
	"github.com/contaflow/contaflow/internal/model"
)

// entryIncludes asks the backend to side-load lines and their accounts.
var entryIncludes = []string{"journalLines", "journalLines.account"}

func (c *Client) ListEntries(ctx context.Context, params ListParams) ([]model.JournalEntry, error) {
	query := params.Encode()
	body, err := c.cachedGet(ctx, cacheKey(jsonapi.TypeJournalEntries, query), "/journal-entries", query)
	if err != nil {
		return nil, err
	}
	return jsonapi.EntriesFromCollection(body), nil
}

func (c *Client) GetEntry(ctx context.Context, id string, withLines bool) (*model.JournalEntry, error) {
	if id == "" {
		return nil, nil
	}

	params := ListParams{}
	if withLines {
		params.Include = entryIncludes
	}
	query := params.Encode()

	body, err := c.cachedGet(ctx, cacheKey(jsonapi.TypeJournalEntries+"/"+id, query), "/journal-entries/"+id, query)
	if err != nil {
		return nil, err
	}

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}

	entry := jsonapi.EntryFromDocument(doc)
	return &entry, nil
}

// CreateEntry creates a draft entry header. The backend dedupes retried
// composite creates on the idempotency key.
func (c *Client) CreateEntry(ctx context.Context, entry model.JournalEntry) (*model.JournalEntry, error) {
	headers := map[string]string{"X-Idempotency-Key": uuid.NewString()}

	body, err := c.do(ctx, http.MethodPost, "/journal-entries", "", jsonapi.EntryToDocument(entry), headers)
	if err != nil {
		return nil, err
	}

	c.invalidateJournal()

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	created := jsonapi.EntryFromDocument(doc)
	return &created, nil
}

func (c *Client) DeleteEntry(ctx context.Context, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/journal-entries/"+id, "", nil, nil); err != nil {
		return err
	}
	c.invalidateJournal()
	return nil
}

func (c *Client) CreateLine(ctx context.Context, line model.JournalLine) (*model.JournalLine, error) {
	body, err := c.do(ctx, http.MethodPost, "/journal-lines", "", jsonapi.LineToDocument(line), nil)
	if err != nil {
		return nil, err
	}

	c.invalidateJournal()

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	created := jsonapi.LineFromResource(*doc.Data)
	return &created, nil
}

// PostEntry finalizes a draft: the backend validates balance
// authoritatively and transitions the entry out of draft.
func (c *Client) PostEntry(ctx context.Context, id string) (*model.JournalEntry, error) {
	body, err := c.do(ctx, http.MethodPost, "/journal-entries/"+id+"/post", "", nil, nil)
	if err != nil {
		return nil, err
	}

	c.invalidateJournal()

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	posted := jsonapi.EntryFromDocument(doc)
	return &posted, nil
}

// ReverseEntry creates the reversing entry for a posted entry.
func (c *Client) ReverseEntry(ctx context.Context, id string) (*model.JournalEntry, error) {
	body, err := c.do(ctx, http.MethodPost, "/journal-entries/"+id+"/reverse", "", nil, nil)
	if err != nil {
		return nil, err
	}

	c.invalidateJournal()

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	reversal := jsonapi.EntryFromDocument(doc)
	return &reversal, nil
}

func (c *Client) invalidateJournal() {
	c.cache.InvalidatePrefix(jsonapi.TypeJournalEntries)
	c.cache.InvalidatePrefix(jsonapi.TypeJournalLines)
}
