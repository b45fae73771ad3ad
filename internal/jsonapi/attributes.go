package jsonapi

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Attribute lookup tolerates both camelCase and snake_case keys, so a
// backend contract drift is absorbed here instead of breaking mapping.

func lookup(attrs map[string]any, camelKey string) (any, bool) {
	if v, ok := attrs[camelKey]; ok {
		return v, true
	}
	if v, ok := attrs[snakeCase(camelKey)]; ok {
		return v, true
	}
	return nil, false
}

func snakeCase(camel string) string {
	var b strings.Builder
	for i, r := range camel {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stringAttr(attrs map[string]any, key string) string {
	v, ok := lookup(attrs, key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return idString(v)
}

// idAttr coerces a foreign-key attribute to string whether the backend
// sent a number or a string. Absent or null keys yield "".
func idAttr(attrs map[string]any, key string) string {
	v, ok := lookup(attrs, key)
	if !ok || v == nil {
		return ""
	}
	return idString(v)
}

// nullableIDAttr keeps the absent/null distinction collapsed to nil and
// returns a pointer only when the backend sent a concrete id.
func nullableIDAttr(attrs map[string]any, key string) *string {
	v, ok := lookup(attrs, key)
	if !ok || v == nil {
		return nil
	}
	id := idString(v)
	if id == "" {
		return nil
	}
	return &id
}

func idString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	default:
		return ""
	}
}

func decimalAttr(attrs map[string]any, key string) decimal.Decimal {
	v, ok := lookup(attrs, key)
	if !ok || v == nil {
		return decimal.Zero
	}
	switch val := v.(type) {
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(val)
	default:
		return decimal.Zero
	}
}

func intAttr(attrs map[string]any, key string) int {
	v, ok := lookup(attrs, key)
	if !ok || v == nil {
		return 0
	}
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func boolAttr(attrs map[string]any, key string) bool {
	v, ok := lookup(attrs, key)
	if !ok || v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}

func mapAttr(attrs map[string]any, key string) map[string]any {
	v, ok := lookup(attrs, key)
	if !ok || v == nil {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

// number emits a decimal as a raw JSON number so request payloads carry
// amounts unquoted.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// setIfPresent writes optional attributes only when they carry a value,
// so request payloads are not null-padded.
func setIfPresent(attrs map[string]any, key, value string) {
	if value != "" {
		attrs[key] = value
	}
}
