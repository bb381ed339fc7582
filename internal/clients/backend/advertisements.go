package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetAdminAdvertisements lists advertisements for one recruiting year across
// all companies. The year is mandatory on this endpoint.
func (c *Client) GetAdminAdvertisements(ctx context.Context, year int, companyName string, page, perPage int) ([]Record, int, error) {

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("year", strconv.Itoa(year))
	if companyName != "" {
		params.Set("name", companyName)
	}

	body, err := c.sendRequest(ctx, http.MethodGet, adminAdvertisementsPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}

	return decodeRecords(body)
}

// GetPendingAdvertisements lists advertisements waiting for approval.
func (c *Client) GetPendingAdvertisements(ctx context.Context, page, perPage int) ([]Record, int, error) {

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))

	body, err := c.sendRequest(ctx, http.MethodGet, adminAdvertisementsPath+"/pendings?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}

	return decodeRecords(body)
}

func (c *Client) GetCompanyAdvertisements(ctx context.Context, companyID string) ([]Record, int, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, companiesPath+"/"+companyID+"/advertisements", nil)
	if err != nil {
		return nil, 0, err
	}

	return decodeRecords(body)
}

func (c *Client) GetAdvertisement(ctx context.Context, companyID, id string) (Record, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, companiesPath+"/"+companyID+"/advertisements/"+id, nil)
	if err != nil {
		return nil, err
	}

	return decodeRecord(body)
}

func (c *Client) CreateAdvertisement(ctx context.Context, companyID string, data any) (Record, error) {

	body, err := c.sendJSON(ctx, http.MethodPost, companiesPath+"/"+companyID+"/advertisements", data)
	if err != nil {
		return nil, err
	}

	return decodeRecord(body)
}

func (c *Client) UpdateAdvertisement(ctx context.Context, companyID, id string, data any) (Record, error) {

	body, err := c.sendJSON(ctx, http.MethodPut, companiesPath+"/"+companyID+"/advertisements/"+id, data)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	return decodeRecord(body)
}

func (c *Client) DeleteAdvertisement(ctx context.Context, companyID, id string) error {
	_, err := c.sendRequest(ctx, http.MethodDelete, companiesPath+"/"+companyID+"/advertisements/"+id, nil)
	return err
}

// Approval state transitions live outside the generic CRUD paths.

func (c *Client) ApproveAdvertisement(ctx context.Context, id string) error {
	_, err := c.sendRequest(ctx, http.MethodPut, adminAdvertisementsPath+"/"+id+"/approval", nil)
	return err
}

func (c *Client) RejectAdvertisement(ctx context.Context, id string) error {
	_, err := c.sendRequest(ctx, http.MethodPut, adminAdvertisementsPath+"/"+id+"/rejection", nil)
	return err
}

func (c *Client) BulkApproveAdvertisements(ctx context.Context, ids []string) error {

	params := url.Values{}
	for _, id := range ids {
		params.Add("advertisement_ids", id)
	}

	_, err := c.sendRequest(ctx, http.MethodPut, adminAdvertisementsPath+"/approval?"+params.Encode(), nil)
	return err
}
