package store

import (
	"context"
	"net/http"

	"github.com/contaflow/contaflow/internal/jsonapi"
	"github.com/contaflow/contaflow/internal/model"
)

func (c *Client) ListAccounts(ctx context.Context, params ListParams) ([]model.Account, error) {
	query := params.Encode()
	body, err := c.cachedGet(ctx, cacheKey(jsonapi.TypeAccounts, query), "/accounts", query)
	if err != nil {
		return nil, err
	}
	return jsonapi.AccountsFromCollection(body), nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	// A blank id disables the fetch entirely, mirroring a falsy cache
	// key: no network call, no error.
	if id == "" {
		return nil, nil
	}

	body, err := c.cachedGet(ctx, jsonapi.TypeAccounts+"/"+id, "/accounts/"+id, "")
	if err != nil {
		return nil, err
	}

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}

	acc := jsonapi.AccountFromResource(*doc.Data)
	return &acc, nil
}

func (c *Client) CreateAccount(ctx context.Context, acc model.Account) (*model.Account, error) {
	body, err := c.do(ctx, http.MethodPost, "/accounts", "", jsonapi.AccountToDocument(acc), nil)
	if err != nil {
		return nil, err
	}

	c.cache.InvalidatePrefix(jsonapi.TypeAccounts)

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	created := jsonapi.AccountFromResource(*doc.Data)
	return &created, nil
}

func (c *Client) UpdateAccount(ctx context.Context, acc model.Account) (*model.Account, error) {
	body, err := c.do(ctx, http.MethodPatch, "/accounts/"+acc.ID, "", jsonapi.AccountToDocument(acc), nil)
	if err != nil {
		return nil, err
	}

	c.cache.InvalidatePrefix(jsonapi.TypeAccounts)

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	updated := jsonapi.AccountFromResource(*doc.Data)
	return &updated, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/accounts/"+id, "", nil, nil); err != nil {
		return err
	}
	c.cache.InvalidatePrefix(jsonapi.TypeAccounts)
	return nil
}
