package provider

import (
	"context"
	"time"

	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/minashiro/recruit-admin/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func (p *Provider) Create(ctx context.Context, resource string, params CreateParams) (*CreateResult, error) {
	defer trackDuration("create", resource)()

	switch resource {
	case ResourceAccounts:
		record, err := p.client.CreateAccount(ctx, params.Data)
		if err != nil {
			return nil, err
		}
		return &CreateResult{Data: record}, nil

	case ResourceAdvertisements:
		companyID := backend.IDString(params.Data["company_id"])
		if companyID == "" {
			return nil, ErrCompanyIDRequired
		}

		payload := params.Data.Clone()
		payload["tag_ids"] = toNumberArray(params.Data["tag_ids"])

		record, err := p.client.CreateAdvertisement(ctx, companyID, payload)
		if err != nil {
			return nil, err
		}

		if record.ID() != "" {
			if err := p.ancestors.RecordAdvertisementCompany(ctx, record.ID(), companyID); err != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
					Errorf("failed to record company for created advertisement %s: %v", record.ID(), err)
			}
		}
		return &CreateResult{Data: record}, nil

	case ResourceRequirements:
		companyID := backend.IDString(params.Data["company_id"])
		advertisementID := backend.IDString(params.Data["advertisement_id"])
		if companyID == "" {
			return nil, ErrCompanyIDRequired
		}
		if advertisementID == "" {
			return nil, ErrAdvertisementIDRequired
		}

		payload, err := buildRequirementCreatePayload(params.Data, advertisementID, time.Now())
		if err != nil {
			return nil, err
		}

		record, err := p.client.CreateRequirement(ctx, companyID, advertisementID, payload)
		if err != nil {
			return nil, err
		}

		if record.ID() != "" {
			if err := p.ancestors.RecordRequirementAncestors(ctx, record.ID(), advertisementID, companyID); err != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
					Errorf("failed to record ancestors for created requirement %s: %v", record.ID(), err)
			}
			if err := p.ancestors.RecordAdvertisementCompany(ctx, advertisementID, companyID); err != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
					Errorf("failed to record company for advertisement %s: %v", advertisementID, err)
			}
		}
		return &CreateResult{Data: record}, nil

	default:
		return nil, errors.Wrap(ErrUnsupportedResource, resource)
	}
}
