package provider

import (
	"context"
	"sync"

	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/minashiro/recruit-admin/internal/logger"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

func (p *Provider) GetOne(ctx context.Context, resource string, params GetOneParams) (*GetOneResult, error) {
	defer trackDuration("get_one", resource)()

	if params.ID == "" {
		return nil, ErrMissingID
	}

	var record backend.Record
	var err error

	switch resource {
	case ResourceAccounts:
		record, err = p.client.GetAccount(ctx, params.ID)

	case ResourceAdvertisements, ResourcePendings:
		var companyID string
		companyID, err = p.ancestors.AdvertisementCompany(ctx, params.ID)
		if err != nil {
			return nil, err
		}
		if companyID == "" {
			return nil, ErrCompanyUnknown
		}

		record, err = p.client.GetAdvertisement(ctx, companyID, params.ID)
		if err == nil {
			p.attachTagIDs(ctx, record)
		}

	case ResourceRequirements:
		advertisementID, companyID, resolveErr := p.resolveRequirementAncestors(ctx, params.ID)
		if resolveErr != nil {
			return nil, resolveErr
		}
		if advertisementID == "" || companyID == "" {
			return nil, ErrMissingAncestry
		}

		record, err = p.client.GetRequirement(ctx, companyID, advertisementID, params.ID)
		if err == nil {
			record["advertisement_id"] = advertisementID
			p.attachRequirementIDs(ctx, record)
		}

	case ResourceCompany:
		record, err = p.client.GetCompany(ctx, params.ID)
		if err == nil {
			if record.ID() == "" {
				record["id"] = params.ID
			}
			p.attachIndustryIDs(ctx, record)
		}

	default:
		record, err = p.client.GetGenericResource(ctx, resource, params.ID)
	}

	if err != nil {
		return nil, err
	}

	record[fullMarker] = true
	return &GetOneResult{Data: record}, nil
}

// attachTagIDs turns the denormalized tag names on an advertisement back into
// master ids for the edit form. A failed tag fetch degrades the mapping, not
// the read.
func (p *Provider) attachTagIDs(ctx context.Context, record backend.Record) {

	tags := record.GetStrings("tags")
	if len(tags) == 0 {
		return
	}

	list, err := p.masters.get(ctx, ResourceTags)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBackendApi).
			Errorf("failed to fetch tags for mapping: %v", err)
		return
	}

	record["tag_ids"] = mapNamesToIDs(list, tags, masterNameKeys[ResourceTags], ResourceTags)
}

// attachRequirementIDs back-fills the id fields of every many-to-many
// reference on a requirement from its denormalized name fields. The four
// catalogs are fetched concurrently; a missing catalog leaves the affected id
// field unset.
func (p *Provider) attachRequirementIDs(ctx context.Context, record backend.Record) {

	masters := p.fetchMasters(ctx,
		ResourceJobCategories, ResourceSubmissionObjects, ResourcePrefectures, ResourceWelfareBenefits)

	if isEmptyID(record["job_category_id"]) {
		searchName := firstNonEmpty(record, "job_categories_name", "job_category_name", "job_category")
		if searchName != "" {
			if id := findIDByName(masters[ResourceJobCategories], searchName, masterNameKeys[ResourceJobCategories]); id != "" {
				record["job_category_id"] = id
			}
		}
	}

	p.attachReferenceIDs(record, masters[ResourceSubmissionObjects], "submission_objects_id",
		[]string{"submission_objects", "submission_object_names"}, ResourceSubmissionObjects)
	p.attachReferenceIDs(record, masters[ResourcePrefectures], "prefecture_id",
		[]string{"prefectures", "prefecture_names"}, ResourcePrefectures)
	p.attachReferenceIDs(record, masters[ResourceWelfareBenefits], "welfare_benefits_id",
		[]string{"welfare_benefits", "welfare_benefit_names"}, ResourceWelfareBenefits)
}

func (p *Provider) attachReferenceIDs(record backend.Record, list []backend.Record, idField string, nameFields []string, masterName string) {

	if !isEmptyArray(record[idField]) {
		return
	}

	ids := make([]string, 0)
	for _, nameField := range nameFields {
		if names := record.GetStrings(nameField); len(names) > 0 {
			ids = append(ids, mapNamesToIDs(list, names, masterNameKeys[masterName], masterName)...)
			break
		}
	}
	record[idField] = ids
}

// attachIndustryIDs reverse-maps a company's industry names; the result is
// always a string-id array, even when the backend returned numbers.
func (p *Provider) attachIndustryIDs(ctx context.Context, record backend.Record) {

	if names := record.GetStrings("industry_names"); len(names) > 0 {
		list, err := p.masters.get(ctx, ResourceIndustries)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeBackendApi).
				Errorf("failed to fetch industries for mapping: %v", err)
		} else {
			record["industry_ids"] = mapNamesToIDs(list, names, masterNameKeys[ResourceIndustries], ResourceIndustries)
			return
		}
	}

	ids := record.GetArray("industry_ids")
	record["industry_ids"] = lo.Map(ids, func(item any, _ int) string {
		return backend.IDString(item)
	})
}

func (p *Provider) fetchMasters(ctx context.Context, resources ...string) map[string][]backend.Record {

	var wg sync.WaitGroup
	var mu sync.Mutex
	results := make(map[string][]backend.Record, len(resources))

	for _, resource := range resources {
		wg.Add(1)
		go func(resource string) {
			defer wg.Done()
			records, err := p.masters.get(ctx, resource)
			if err != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeBackendApi).
					Errorf("failed to fetch %s list for mapping: %v", resource, err)
				return
			}
			mu.Lock()
			results[resource] = records
			mu.Unlock()
		}(resource)
	}

	wg.Wait()
	return results
}

func isEmptyID(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == "" || v == "0"
	case float64:
		return v == 0
	case int:
		return v == 0
	default:
		return false
	}
}

func isEmptyArray(value any) bool {
	if value == nil {
		return true
	}
	if arr, ok := value.([]any); ok {
		return len(arr) == 0
	}
	if arr, ok := value.([]string); ok {
		return len(arr) == 0
	}
	return false
}

func firstNonEmpty(record backend.Record, keys ...string) string {
	for _, key := range keys {
		if value := record.GetString(key); value != "" {
			return value
		}
	}
	return ""
}
