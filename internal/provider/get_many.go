package provider

import (
	"context"

	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/samber/lo"
)

// GetMany resolves a set of master ids. Resources with a selection
// sub-endpoint are filtered by the backend; everything else is filtered here
// against the full list, comparing ids as strings.
func (p *Provider) GetMany(ctx context.Context, resource string, params GetManyParams) (*GetManyResult, error) {
	defer trackDuration("get_many", resource)()

	if paramName, ok := selectionParams[resource]; ok {
		records, err := p.client.GetMasterSelection(ctx, resource, paramName, params.IDs)
		if err != nil {
			return nil, err
		}
		return &GetManyResult{Data: records}, nil
	}

	records, err := p.masters.get(ctx, resource)
	if err != nil {
		return nil, err
	}

	wanted := lo.SliceToMap(params.IDs, func(id string) (string, struct{}) {
		return id, struct{}{}
	})

	filtered := lo.Filter(records, func(record backend.Record, _ int) bool {
		_, ok := wanted[record.ID()]
		return ok
	})

	return &GetManyResult{Data: filtered}, nil
}
