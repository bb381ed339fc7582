package provider

import (
	"context"
	"time"

	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/minashiro/recruit-admin/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func (p *Provider) Update(ctx context.Context, resource string, params UpdateParams) (*UpdateResult, error) {
	defer trackDuration("update", resource)()

	if params.ID == "" {
		return nil, ErrMissingID
	}

	switch resource {
	case ResourceAccounts:
		response, err := p.client.UpdateAccount(ctx, params.ID, params.Data)
		if err != nil {
			return nil, err
		}
		return &UpdateResult{Data: mergeUpdateResult(response, params.Data, params.ID)}, nil

	case ResourceCompany:
		payload := params.Data.Clone()
		industryIDs := params.Data["industry_ids"]
		if industryIDs == nil {
			industryIDs = params.Data["industry_id"]
		}
		payload["industry_id"] = toNumberArray(industryIDs)
		delete(payload, "industry_ids")
		delete(payload, "industry_names")
		payload["updated_at"] = time.Now().Format(time.RFC3339)

		response, err := p.client.UpdateCompany(ctx, params.ID, payload)
		if err != nil {
			return nil, err
		}
		return &UpdateResult{Data: mergeUpdateResult(response, params.Data, params.ID)}, nil

	case ResourceAdvertisements:
		companyID := backend.IDString(params.Data["company_id"])
		if companyID == "" {
			return nil, ErrCompanyIDRequired
		}

		payload := params.Data.Clone()
		payload["tag_ids"] = toNumberArray(params.Data["tag_ids"])

		response, err := p.client.UpdateAdvertisement(ctx, companyID, params.ID, payload)
		if err != nil {
			return nil, err
		}

		if err := p.ancestors.RecordAdvertisementCompany(ctx, params.ID, companyID); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to record company for advertisement %s: %v", params.ID, err)
		}
		return &UpdateResult{Data: mergeUpdateResult(response, params.Data, params.ID)}, nil

	case ResourceRequirements:
		advertisementID, companyID, err := p.resolveRequirementWriteAncestors(ctx, params.ID, params.Data)
		if err != nil {
			return nil, err
		}

		payload := normalizeRequirementUpdate(params.Data, time.Now())

		response, err := p.client.UpdateRequirement(ctx, companyID, advertisementID, params.ID, payload)
		if err != nil {
			return nil, err
		}

		if err := p.ancestors.RecordRequirementAncestors(ctx, params.ID, advertisementID, companyID); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to record ancestors for requirement %s: %v", params.ID, err)
		}
		return &UpdateResult{Data: mergeUpdateResult(response, params.Data, params.ID)}, nil

	default:
		return nil, errors.Wrap(ErrUnsupportedResource, resource)
	}
}

// resolveRequirementWriteAncestors prefers ancestor ids submitted with the
// data and falls back to the ancestry store, including the advertisement's
// own company link.
func (p *Provider) resolveRequirementWriteAncestors(ctx context.Context, requirementID string, data backend.Record) (string, string, error) {

	advertisementID := backend.IDString(data["advertisement_id"])
	companyID := backend.IDString(data["company_id"])

	if advertisementID == "" || companyID == "" {
		cachedAdvertisementID, cachedCompanyID, err := p.ancestors.RequirementAncestors(ctx, requirementID)
		if err != nil {
			return "", "", err
		}
		if advertisementID == "" {
			advertisementID = cachedAdvertisementID
		}
		if companyID == "" {
			companyID = cachedCompanyID
		}
	}

	if companyID == "" && advertisementID != "" {
		var err error
		companyID, err = p.ancestors.AdvertisementCompany(ctx, advertisementID)
		if err != nil {
			return "", "", err
		}
	}

	if advertisementID == "" || companyID == "" {
		return "", "", ErrMissingAncestry
	}
	return advertisementID, companyID, nil
}
