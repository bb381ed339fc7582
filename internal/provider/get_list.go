package provider

import (
	"context"
	"time"

	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/minashiro/recruit-admin/internal/logger"
	"github.com/minashiro/recruit-admin/internal/metrics"
	log "github.com/sirupsen/logrus"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

func trackDuration(verb, resource string) func() {
	start := time.Now()
	return func() {
		metrics.ProviderRequestDuration.WithLabelValues(verb, resource).Observe(time.Since(start).Seconds())
	}
}

func (p *Provider) GetList(ctx context.Context, resource string, params GetListParams) (*GetListResult, error) {
	defer trackDuration("get_list", resource)()

	page := params.Pagination.Page
	if page <= 0 {
		page = defaultPage
	}
	perPage := params.Pagination.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	var records []backend.Record
	var total int
	var err error

	switch resource {
	case ResourceAccounts:
		records, total, err = p.client.GetAccounts(ctx, params.Filter.GetString("company_name"), page, perPage)

	case ResourceAdvertisements:
		year := params.Filter.GetInt("year")
		if year == 0 {
			year = currentRecruitingYear()
		}
		records, total, err = p.client.GetAdminAdvertisements(ctx, year, params.Filter.GetString("company_name"), page, perPage)

	case ResourcePendings:
		records, total, err = p.client.GetPendingAdvertisements(ctx, page, perPage)

	default:
		records, err = p.client.GetMasterList(ctx, resource)
		total = len(records)
	}

	if err != nil {
		return nil, err
	}

	if resource == ResourceAdvertisements || resource == ResourcePendings {
		p.recordAdvertisementAncestry(ctx, records)
	}

	return &GetListResult{Data: records, Total: total}, nil
}

// recordAdvertisementAncestry remembers each row's owning company so a later
// detail, update or delete on the bare advertisement id can rebuild the
// nested URL. Store failures degrade navigation, not the listing itself.
func (p *Provider) recordAdvertisementAncestry(ctx context.Context, records []backend.Record) {
	for _, record := range records {
		companyID := backend.IDString(record["company_id"])
		if record.ID() == "" || companyID == "" {
			continue
		}
		if err := p.ancestors.RecordAdvertisementCompany(ctx, record.ID(), companyID); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to record company for advertisement %s: %v", record.ID(), err)
		}
	}
}
