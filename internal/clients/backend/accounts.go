package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetAccounts lists administrative accounts. The backend filters by company
// name through the generic "name" query parameter.
func (c *Client) GetAccounts(ctx context.Context, companyName string, page, perPage int) ([]Record, int, error) {

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	if companyName != "" {
		params.Set("name", companyName)
	}

	body, err := c.sendRequest(ctx, http.MethodGet, adminCompaniesPath+"/accounts?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}

	return decodeRecords(body)
}

func (c *Client) GetAccount(ctx context.Context, id string) (Record, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, adminCompaniesPath+"/"+id+"/accounts", nil)
	if err != nil {
		return nil, err
	}

	return decodeRecord(body)
}

func (c *Client) CreateAccount(ctx context.Context, data any) (Record, error) {

	body, err := c.sendJSON(ctx, http.MethodPost, adminCompaniesPath+"/accounts", data)
	if err != nil {
		return nil, err
	}

	return decodeRecord(body)
}

// UpdateAccount may receive an empty response body; callers synthesize the
// result from the submitted data in that case.
func (c *Client) UpdateAccount(ctx context.Context, id string, data any) (Record, error) {

	body, err := c.sendJSON(ctx, http.MethodPut, adminCompaniesPath+"/"+id+"/accounts", data)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	return decodeRecord(body)
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	_, err := c.sendRequest(ctx, http.MethodDelete, adminCompaniesPath+"/"+id+"/accounts", nil)
	return err
}
