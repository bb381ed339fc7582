package backend

import (
	"context"
	"net/http"
	"net/url"
)

// GetMasterList fetches a flat id+name catalog (tags, industries, job
// categories, prefectures, welfare benefits, submission objects).
func (c *Client) GetMasterList(ctx context.Context, resource string) ([]Record, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, listPath+"/"+resource, nil)
	if err != nil {
		return nil, err
	}

	records, _, err := decodeRecords(body)
	return records, err
}

// GetMasterSelection fetches the subset of a master list matching the given
// ids, passed as repeated query parameters whose name differs per resource.
// An empty response body means an empty selection.
func (c *Client) GetMasterSelection(ctx context.Context, resource, paramName string, ids []string) ([]Record, error) {

	params := url.Values{}
	for _, id := range ids {
		params.Add(paramName, id)
	}

	body, err := c.sendRequest(ctx, http.MethodGet, listPath+"/"+resource+"/selection?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return []Record{}, nil
	}

	records, _, err := decodeRecords(body)
	return records, err
}
