// Package jsonapi maps backend JSON:API resource objects to typed
// records and back. The backend contract is not fully stable (attribute
// keys arrive in snake_case or camelCase, foreign keys as numbers or
// strings), so every coercion lives here, one mapping function per
// resource type, and nowhere else.
package jsonapi

import "encoding/json"

// Resource is a JSON:API resource object.
type Resource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id,omitempty"`
	Attributes    map[string]any          `json:"attributes,omitempty"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
}

// Relationship is a to-one relationship under a resource.
type Relationship struct {
	Data *ResourceIdentifier `json:"data"`
}

// ResourceIdentifier points at a related resource.
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Document wraps a single resource for requests and responses.
type Document struct {
	Data     *Resource  `json:"data"`
	Included []Resource `json:"included,omitempty"`
}

// ErrorObject is one backend error entry.
type ErrorObject struct {
	Status string `json:"status,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
	Source struct {
		Pointer string `json:"pointer,omitempty"`
	} `json:"source,omitempty"`
}

// ErrorDocument is the backend error envelope.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// Resource type names used on the wire.
const (
	TypeAccounts       = "accounts"
	TypeJournalEntries = "journal-entries"
	TypeJournalLines   = "journal-lines"
	TypeJournals       = "journals"
	TypeFiscalPeriods  = "fiscal-periods"
	TypeLeads          = "leads"
	TypeCampaigns      = "campaigns"
	TypePipelineStages = "pipeline-stages"
	TypeCostCenters    = "cost-centers"
	TypeContacts       = "contacts"
	TypePartners       = "partners"
)

// DecodeDocument parses a single-resource response body.
func DecodeDocument(body []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// DecodeCollection parses a collection response body. A missing, null or
// non-array `data` member yields an empty slice, never an error: a
// malformed collection renders as an empty list, it does not crash the
// client.
func DecodeCollection(body []byte) []Resource {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	if len(envelope.Data) == 0 {
		return nil
	}

	var resources []Resource
	if err := json.Unmarshal(envelope.Data, &resources); err != nil {
		return nil
	}
	return resources
}

// DecodeIncluded parses the `included` member of a collection body.
func DecodeIncluded(body []byte) []Resource {
	var envelope struct {
		Included []Resource `json:"included"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	return envelope.Included
}

// relationshipID reads the id of a to-one relationship, coerced to
// string. Empty when the relationship is absent or null.
func (r Resource) relationshipID(name string) string {
	rel, ok := r.Relationships[name]
	if !ok || rel.Data == nil {
		return ""
	}
	return rel.Data.ID
}

// Ref builds a to-one relationship entry.
func Ref(resourceType, id string) Relationship {
	return Relationship{Data: &ResourceIdentifier{Type: resourceType, ID: id}}
}
