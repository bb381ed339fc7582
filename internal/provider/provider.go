package provider

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/pkg/errors"
)

// Resource names as the admin UI addresses them.
const (
	ResourceAccounts          = "accounts"
	ResourceAdvertisements    = "advertisements"
	ResourcePendings          = "pendings"
	ResourceRequirements      = "requirements"
	ResourceCompany           = "company"
	ResourceTags              = "tags"
	ResourceIndustries        = "industries"
	ResourceJobCategories     = "job_categories"
	ResourcePrefectures       = "prefectures"
	ResourceWelfareBenefits   = "welfare_benefits"
	ResourceSubmissionObjects = "submission_objects"
)

// fullMarker tags a fully hydrated record so the UI can tell it apart from a
// partial one coming out of a list.
const fullMarker = "_full"

var (
	ErrMissingID               = errors.New("id is required")
	ErrUnsupportedResource     = errors.New("resource is not supported for this operation")
	ErrCompanyUnknown          = errors.New("company id unknown, the record must be opened from a list view first")
	ErrMissingAncestry         = errors.New("ancestry information is missing, open the requirement from its advertisement first")
	ErrCompanyIDRequired       = errors.New("company_id is required")
	ErrAdvertisementIDRequired = errors.New("advertisement_id is required")
)

type Pagination struct {
	Page    int
	PerPage int
}

type Sorting struct {
	Field string
	Order string
}

type Filter map[string]any

func (f Filter) GetString(key string) string {
	if f == nil {
		return ""
	}
	return backend.IDString(f[key])
}

func (f Filter) GetInt(key string) int {
	if f == nil {
		return 0
	}
	return int(toNumber(f[key]))
}

type GetListParams struct {
	Pagination Pagination
	Sort       Sorting
	Filter     Filter
}

type GetListResult struct {
	Data  []backend.Record
	Total int
}

type GetOneParams struct {
	ID string
}

type GetOneResult struct {
	Data backend.Record
}

type GetManyParams struct {
	IDs []string
}

type GetManyResult struct {
	Data []backend.Record
}

type GetManyReferenceParams struct {
	Target     string
	ID         string
	Pagination Pagination
	Sort       Sorting
	Filter     Filter
}

type CreateParams struct {
	Data backend.Record
}

type CreateResult struct {
	Data backend.Record
}

type UpdateParams struct {
	ID           string
	Data         backend.Record
	PreviousData backend.Record
}

type UpdateResult struct {
	Data backend.Record
}

type UpdateManyParams struct {
	IDs  []string
	Data backend.Record
}

type UpdateManyResult struct {
	IDs []string
}

type DeleteParams struct {
	ID           string
	PreviousData backend.Record
}

type DeleteResult struct {
	Data backend.Record
}

type DeleteManyParams struct {
	IDs []string
}

type DeleteManyResult struct {
	IDs []string
}

// AncestorStore bridges list-fetch-time knowledge of parent ids to later
// detail, update and delete calls on a bare child id. Absence of a required
// entry is a hard failure before any network call.
type AncestorStore interface {
	RecordAdvertisementCompany(ctx context.Context, advertisementID, companyID string) error
	RecordRequirementAncestors(ctx context.Context, requirementID, advertisementID, companyID string) error
	AdvertisementCompany(ctx context.Context, advertisementID string) (string, error)
	RequirementAncestors(ctx context.Context, requirementID string) (string, string, error)
	ForgetAdvertisement(ctx context.Context, advertisementID string) error
	ForgetRequirement(ctx context.Context, requirementID string) error
}

// Provider translates the admin UI's uniform CRUD verbs into the backend's
// resource-dependent endpoints.
type Provider struct {
	client    *backend.Client
	ancestors AncestorStore
	bus       EventBus.Bus
	masters   *masterCache
}

func New(client *backend.Client, ancestors AncestorStore, bus EventBus.Bus, masterListTTL time.Duration) *Provider {
	return &Provider{
		client:    client,
		ancestors: ancestors,
		bus:       bus,
		masters:   newMasterCache(client, masterListTTL),
	}
}

// currentRecruitingYear is the graduation year advertisements default to:
// students recruited now graduate two springs ahead.
func currentRecruitingYear() int {
	return time.Now().Year() + 2
}

// resolveRequirementAncestors walks the fallback chain for a bare requirement
// id: direct entries first, then the advertisement's own company link.
func (p *Provider) resolveRequirementAncestors(ctx context.Context, requirementID string) (string, string, error) {

	advertisementID, companyID, err := p.ancestors.RequirementAncestors(ctx, requirementID)
	if err != nil {
		return "", "", err
	}

	if companyID == "" && advertisementID != "" {
		companyID, err = p.ancestors.AdvertisementCompany(ctx, advertisementID)
		if err != nil {
			return "", "", err
		}
	}

	return advertisementID, companyID, nil
}
