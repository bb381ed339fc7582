package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/minashiro/recruit-admin/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func (p *Provider) Delete(ctx context.Context, resource string, params DeleteParams) (*DeleteResult, error) {
	defer trackDuration("delete", resource)()

	if params.ID == "" {
		return nil, ErrMissingID
	}

	switch resource {
	case ResourceAccounts:
		if err := p.client.DeleteAccount(ctx, params.ID); err != nil {
			return nil, err
		}

	case ResourceAdvertisements:
		companyID := backend.IDString(params.PreviousData["company_id"])
		if companyID == "" {
			var err error
			companyID, err = p.ancestors.AdvertisementCompany(ctx, params.ID)
			if err != nil {
				return nil, err
			}
		}
		if companyID == "" {
			return nil, ErrCompanyUnknown
		}

		if err := p.client.DeleteAdvertisement(ctx, companyID, params.ID); err != nil {
			return nil, err
		}
		p.forgetAdvertisement(ctx, params.ID)

	case ResourceRequirements:
		advertisementID := backend.IDString(params.PreviousData["advertisement_id"])
		companyID := backend.IDString(params.PreviousData["company_id"])

		if advertisementID == "" || companyID == "" {
			cachedAdvertisementID, cachedCompanyID, err := p.resolveRequirementAncestors(ctx, params.ID)
			if err != nil {
				return nil, err
			}
			if advertisementID == "" {
				advertisementID = cachedAdvertisementID
			}
			if companyID == "" {
				companyID = cachedCompanyID
			}
		}
		if advertisementID == "" || companyID == "" {
			return nil, ErrMissingAncestry
		}

		if err := p.client.DeleteRequirement(ctx, companyID, advertisementID, params.ID); err != nil {
			return nil, err
		}
		p.forgetRequirement(ctx, params.ID)

	default:
		return nil, errors.Wrap(ErrUnsupportedResource, resource)
	}

	return &DeleteResult{Data: backend.Record{"id": params.ID}}, nil
}

// DeleteMany is implemented only for the flat accounts resource. Deletes run
// in parallel; a failure surfaces after every delete has been attempted, and
// nothing restores the ones that already went through.
func (p *Provider) DeleteMany(ctx context.Context, resource string, params DeleteManyParams) (*DeleteManyResult, error) {
	defer trackDuration("delete_many", resource)()

	if resource != ResourceAccounts {
		return nil, errors.Wrap(ErrUnsupportedResource, resource)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(params.IDs))

	for i, id := range params.IDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			errs[i] = p.client.DeleteAccount(ctx, id)
		}(i, id)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to delete account %v: %w", params.IDs[i], err)
		}
	}

	return &DeleteManyResult{IDs: params.IDs}, nil
}

// Stale descendant links are left alone on delete; only the removed record's
// own ancestry is dropped.
func (p *Provider) forgetAdvertisement(ctx context.Context, id string) {
	if err := p.ancestors.ForgetAdvertisement(ctx, id); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to drop ancestry for advertisement %s: %v", id, err)
	}
}

func (p *Provider) forgetRequirement(ctx context.Context, id string) {
	if err := p.ancestors.ForgetRequirement(ctx, id); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to drop ancestry for requirement %s: %v", id, err)
	}
}
