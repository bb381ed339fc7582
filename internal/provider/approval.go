package provider

import (
	"context"
	"sync"

	"github.com/minashiro/recruit-admin/internal/events"
	"github.com/minashiro/recruit-admin/internal/metrics"
	"github.com/pkg/errors"
)

// Approve moves a pending advertisement to the approved state. The
// transition endpoint lives outside the generic CRUD paths.
func (p *Provider) Approve(ctx context.Context, advertisementID string) error {

	if advertisementID == "" {
		return ErrMissingID
	}

	if err := p.client.ApproveAdvertisement(ctx, advertisementID); err != nil {
		return err
	}

	metrics.ApprovalsCounter.WithLabelValues("approve").Inc()
	p.bus.Publish(events.AdvertisementApprovedTopic, events.AdvertisementApproved{AdvertisementID: advertisementID})
	return nil
}

func (p *Provider) Reject(ctx context.Context, advertisementID string) error {

	if advertisementID == "" {
		return ErrMissingID
	}

	if err := p.client.RejectAdvertisement(ctx, advertisementID); err != nil {
		return err
	}

	metrics.ApprovalsCounter.WithLabelValues("reject").Inc()
	p.bus.Publish(events.AdvertisementRejectedTopic, events.AdvertisementRejected{AdvertisementID: advertisementID})
	return nil
}

// UpdateMany bulk-approves pending advertisements through the dedicated
// endpoint. Every other resource falls back to one Update call per id.
func (p *Provider) UpdateMany(ctx context.Context, resource string, params UpdateManyParams) (*UpdateManyResult, error) {
	defer trackDuration("update_many", resource)()

	if resource == ResourcePendings {
		if err := p.client.BulkApproveAdvertisements(ctx, params.IDs); err != nil {
			return nil, err
		}

		for _, id := range params.IDs {
			metrics.ApprovalsCounter.WithLabelValues("approve").Inc()
			p.bus.Publish(events.AdvertisementApprovedTopic, events.AdvertisementApproved{AdvertisementID: id, Bulk: true})
		}
		return &UpdateManyResult{IDs: params.IDs}, nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(params.IDs))

	for i, id := range params.IDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = p.Update(ctx, resource, UpdateParams{ID: id, Data: params.Data})
		}(i, id)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "bulk update of %s %v failed", resource, params.IDs[i])
		}
	}

	return &UpdateManyResult{IDs: params.IDs}, nil
}
