package provider

import (
	"strings"

	"github.com/minashiro/recruit-admin/internal/clients/backend"
	log "github.com/sirupsen/logrus"
)

// masterNameKeys declares, per master list, which fields may carry the
// display name the backend denormalizes into owning records.
var masterNameKeys = map[string][]string{
	ResourceTags:              {"tag_name", "name"},
	ResourceIndustries:        {"industry_name", "name"},
	ResourceJobCategories:     {"name", "job_category_name", "job_categories_name"},
	ResourceSubmissionObjects: {"name", "submission_object_name"},
	ResourcePrefectures:       {"name", "prefecture_name"},
	ResourceWelfareBenefits:   {"name", "welfare_benefit_name"},
}

// selectionParams maps the master resources that expose a filtered selection
// sub-endpoint to the query parameter it expects.
var selectionParams = map[string]string{
	ResourceIndustries:        "industry_ids",
	ResourceTags:              "tag_ids",
	ResourceJobCategories:     "job_category_ids",
	ResourcePrefectures:       "prefecture_ids",
	ResourceWelfareBenefits:   "welfare_benefit_ids",
	ResourceSubmissionObjects: "submission_objects_ids",
}

// findIDByName resolves a denormalized display name back to its master id.
// The declared key names are probed first with an exact match; if none hits,
// every field of every master record is scanned, since some catalogs name
// their display column inconsistently. Returns "" when nothing matches.
func findIDByName(list []backend.Record, name any, possibleKeys []string) string {

	search := strings.TrimSpace(toStringSafe(name))
	if search == "" || len(list) == 0 {
		return ""
	}

	for _, item := range list {
		for _, key := range possibleKeys {
			if value, ok := item[key]; ok && value != nil && toStringSafe(value) == search {
				return item.ID()
			}
		}
	}

	for _, item := range list {
		for _, value := range item {
			if toStringSafe(value) == search {
				return item.ID()
			}
		}
	}

	return ""
}

// mapNamesToIDs reverse-maps a list of display names, dropping names that
// resolve to nothing. Misses are logged rather than failing the read.
func mapNamesToIDs(list []backend.Record, names []string, possibleKeys []string, masterName string) []string {

	ids := make([]string, 0, len(names))
	for _, name := range names {
		id := findIDByName(list, name, possibleKeys)
		if id == "" {
			log.Warnf("no %s master entry matches name %q", masterName, name)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
