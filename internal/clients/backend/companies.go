package backend

import (
	"context"
	"net/http"
)

func (c *Client) GetCompany(ctx context.Context, id string) (Record, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, companiesPath+"/"+id, nil)
	if err != nil {
		return nil, err
	}

	return decodeRecord(body)
}

func (c *Client) UpdateCompany(ctx context.Context, id string, data any) (Record, error) {

	body, err := c.sendJSON(ctx, http.MethodPut, companiesPath+"/"+id, data)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	return decodeRecord(body)
}

// GetGenericResource fetches a resource that has no nested ownership by its
// bare id under the /api root.
func (c *Client) GetGenericResource(ctx context.Context, resource string, id string) (Record, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, "/api/"+resource+"/"+id, nil)
	if err != nil {
		return nil, err
	}

	return decodeRecord(body)
}
