package store

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ListParams describes filtering, pagination and includes for a
// collection read, in JSON:API query conventions.
type ListParams struct {
	Filters    map[string]string
	PageNumber int
	PageSize   int
	Include    []string
}

// Encode renders the query string. Keys are sorted so the same params
// always produce the same string, which doubles as the cache key.
func (p ListParams) Encode() string {
	values := url.Values{}

	keys := make([]string, 0, len(p.Filters))
	for k := range p.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		values.Set(fmt.Sprintf("filter[%s]", k), p.Filters[k])
	}

	if p.PageNumber > 0 {
		values.Set("page[number]", strconv.Itoa(p.PageNumber))
	}
	if p.PageSize > 0 {
		values.Set("page[size]", strconv.Itoa(p.PageSize))
	}
	if len(p.Include) > 0 {
		values.Set("include", strings.Join(p.Include, ","))
	}

	return values.Encode()
}

// cacheKey builds the request signature a read is cached under.
func cacheKey(resource, query string) string {
	if query == "" {
		return resource
	}
	return resource + "?" + query
}
