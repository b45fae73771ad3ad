package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/contaflow/contaflow/internal/model"
)

// Report endpoints are plain JSON tables, not JSON:API resources.
type reportEnvelope struct {
	Data struct {
		Title   string     `json:"title"`
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
		Period  string     `json:"period"`
	} `json:"data"`
}

func (c *Client) GetReport(ctx context.Context, name model.ReportName, params ListParams) (*model.Report, error) {
	if !name.Valid() {
		return nil, fmt.Errorf("unknown report '%s'", name)
	}

	query := params.Encode()
	key := cacheKey("accounting/reports/"+string(name), query)

	body, err := c.cachedGet(ctx, key, "/accounting/reports/"+string(name), query)
	if err != nil {
		return nil, err
	}

	var envelope reportEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode report '%s': %w", name, err)
	}

	report := &model.Report{
		Name:    name,
		Title:   envelope.Data.Title,
		Columns: envelope.Data.Columns,
		Rows:    envelope.Data.Rows,
		Period:  envelope.Data.Period,
	}
	if report.Title == "" {
		report.Title = name.Title()
	}

	return report, nil
}
