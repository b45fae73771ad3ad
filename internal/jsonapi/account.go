package jsonapi

import "github.com/contaflow/contaflow/internal/model"

// DefaultCurrency fills in when the backend or a form leaves the
// currency unset.
const DefaultCurrency = "MXN"

// AccountFromResource maps a JSON:API account resource to the typed
// record. All foreign keys come out as strings; currency defaults.
func AccountFromResource(res Resource) model.Account {
	attrs := res.Attributes

	currency := stringAttr(attrs, "currency")
	if currency == "" {
		currency = DefaultCurrency
	}

	parentID := nullableIDAttr(attrs, "parentId")
	if parentID == nil {
		if relID := res.relationshipID("parent"); relID != "" {
			parentID = &relID
		}
	}

	return model.Account{
		ID:          res.ID,
		Code:        stringAttr(attrs, "code"),
		Name:        stringAttr(attrs, "name"),
		Type:        model.AccountType(stringAttr(attrs, "accountType")),
		Nature:      model.AccountNature(stringAttr(attrs, "nature")),
		Level:       intAttr(attrs, "level"),
		ParentID:    parentID,
		IsPostable:  boolAttr(attrs, "isPostable"),
		Status:      model.AccountStatus(stringAttr(attrs, "status")),
		Currency:    currency,
		Description: stringAttr(attrs, "description"),
		Metadata:    mapAttr(attrs, "metadata"),
	}
}

// AccountsFromCollection maps a collection response body. Malformed
// bodies yield an empty slice.
func AccountsFromCollection(body []byte) []model.Account {
	resources := DecodeCollection(body)
	accounts := make([]model.Account, 0, len(resources))
	for _, res := range resources {
		accounts = append(accounts, AccountFromResource(res))
	}
	return accounts
}

// AccountToDocument builds the request body for creating or updating an
// account.
func AccountToDocument(acc model.Account) Document {
	attrs := map[string]any{
		"code":        acc.Code,
		"name":        acc.Name,
		"accountType": string(acc.Type),
		"level":       acc.Level,
		"isPostable":  acc.IsPostable,
	}

	setIfPresent(attrs, "nature", string(acc.Nature))
	setIfPresent(attrs, "status", string(acc.Status))
	setIfPresent(attrs, "description", acc.Description)

	if acc.Currency != "" {
		attrs["currency"] = acc.Currency
	} else {
		attrs["currency"] = DefaultCurrency
	}

	if acc.Metadata != nil {
		attrs["metadata"] = acc.Metadata
	} else {
		attrs["metadata"] = map[string]any{}
	}

	res := &Resource{
		Type:       TypeAccounts,
		ID:         acc.ID,
		Attributes: attrs,
	}

	if acc.ParentID != nil && *acc.ParentID != "" {
		res.Relationships = map[string]Relationship{
			"parent": Ref(TypeAccounts, *acc.ParentID),
		}
	}

	return Document{Data: res}
}
