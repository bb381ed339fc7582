package provider

import (
	"context"

	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/minashiro/recruit-admin/internal/logger"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// GetManyReference lists the children of a parent record: a company's
// advertisements or an advertisement's requirements. Both populate the
// ancestry store for every row returned, which is what later makes bare-id
// detail calls possible.
func (p *Provider) GetManyReference(ctx context.Context, resource string, params GetManyReferenceParams) (*GetListResult, error) {
	defer trackDuration("get_many_reference", resource)()

	switch resource {
	case ResourceAdvertisements:
		companyID := params.ID
		if companyID == "" {
			companyID = params.Filter.GetString("company_id")
		}
		if companyID == "" {
			return nil, ErrCompanyIDRequired
		}

		records, total, err := p.client.GetCompanyAdvertisements(ctx, companyID)
		if err != nil {
			return nil, err
		}

		for _, record := range records {
			if record.ID() == "" {
				continue
			}
			if err := p.ancestors.RecordAdvertisementCompany(ctx, record.ID(), companyID); err != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
					Errorf("failed to record company for advertisement %s: %v", record.ID(), err)
			}
		}

		return &GetListResult{Data: records, Total: total}, nil

	case ResourceRequirements:
		advertisementID := params.ID
		if advertisementID == "" {
			advertisementID = params.Filter.GetString("advertisement_id")
		}
		if advertisementID == "" {
			return nil, ErrAdvertisementIDRequired
		}

		companyID, err := p.ancestors.AdvertisementCompany(ctx, advertisementID)
		if err != nil {
			return nil, err
		}
		if companyID == "" {
			return nil, ErrCompanyUnknown
		}

		records, _, err := p.client.GetRequirements(ctx, companyID, advertisementID)
		if err != nil {
			return nil, err
		}

		for _, record := range records {
			if record.ID() == "" {
				continue
			}
			if err := p.ancestors.RecordRequirementAncestors(ctx, record.ID(), advertisementID, companyID); err != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
					Errorf("failed to record ancestors for requirement %s: %v", record.ID(), err)
			}
		}

		return &GetListResult{Data: records, Total: len(records)}, nil

	default:
		// Flat resources have no nested listing endpoint; filter the full
		// list by the target field instead.
		records, err := p.masters.get(ctx, resource)
		if err != nil {
			return nil, err
		}

		filtered := lo.Filter(records, func(record backend.Record, _ int) bool {
			return backend.IDString(record[params.Target]) == params.ID
		})

		return &GetListResult{Data: filtered, Total: len(filtered)}, nil
	}
}
