package backend

import (
	"context"
	"net/http"
)

func requirementsBase(companyID, advertisementID string) string {
	return companiesPath + "/" + companyID + "/advertisements/" + advertisementID + "/requirements"
}

func (c *Client) GetRequirements(ctx context.Context, companyID, advertisementID string) ([]Record, int, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, requirementsBase(companyID, advertisementID), nil)
	if err != nil {
		return nil, 0, err
	}

	return decodeRecords(body)
}

func (c *Client) GetRequirement(ctx context.Context, companyID, advertisementID, id string) (Record, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, requirementsBase(companyID, advertisementID)+"/"+id, nil)
	if err != nil {
		return nil, err
	}

	return decodeRecord(body)
}

func (c *Client) CreateRequirement(ctx context.Context, companyID, advertisementID string, data any) (Record, error) {

	body, err := c.sendJSON(ctx, http.MethodPost, requirementsBase(companyID, advertisementID), data)
	if err != nil {
		return nil, err
	}

	return decodeRecord(body)
}

func (c *Client) UpdateRequirement(ctx context.Context, companyID, advertisementID, id string, data any) (Record, error) {

	body, err := c.sendJSON(ctx, http.MethodPut, requirementsBase(companyID, advertisementID)+"/"+id, data)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	return decodeRecord(body)
}

func (c *Client) DeleteRequirement(ctx context.Context, companyID, advertisementID, id string) error {
	_, err := c.sendRequest(ctx, http.MethodDelete, requirementsBase(companyID, advertisementID)+"/"+id, nil)
	return err
}
