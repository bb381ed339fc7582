package repositories

import (
	"context"
	gocache "github.com/patrickmn/go-cache"
)

type ancestorRepository interface {
	SaveAdvertisementCompany(ctx context.Context, advertisementID, companyID string) error
	SaveRequirementAncestors(ctx context.Context, requirementID, advertisementID, companyID string) error
	GetAdvertisementCompany(ctx context.Context, advertisementID string) (string, error)
	GetRequirementAncestors(ctx context.Context, requirementID string) (string, string, error)
	RemoveAdvertisementCompany(ctx context.Context, advertisementID string) error
	RemoveRequirementAncestors(ctx context.Context, requirementID string) error
}

// CachedAncestors keeps ancestry links in memory for the lifetime of the
// process and writes them through to the repository so they survive a
// restart, the way browser session storage survives a reload.
type CachedAncestors struct {
	repo  ancestorRepository
	cache *gocache.Cache
}

type requirementAncestors struct {
	advertisementID string
	companyID       string
}

func NewCachedAncestors(repo ancestorRepository) *CachedAncestors {
	return &CachedAncestors{repo: repo, cache: gocache.New(gocache.NoExpiration, 0)}
}

func advCompanyKey(advertisementID string) string {
	return "advCompany:" + advertisementID
}

func requirementKey(requirementID string) string {
	return "req:" + requirementID
}

func (c *CachedAncestors) RecordAdvertisementCompany(ctx context.Context, advertisementID, companyID string) error {
	c.cache.Set(advCompanyKey(advertisementID), companyID, gocache.NoExpiration)
	return c.repo.SaveAdvertisementCompany(ctx, advertisementID, companyID)
}

func (c *CachedAncestors) RecordRequirementAncestors(ctx context.Context, requirementID, advertisementID, companyID string) error {
	c.cache.Set(requirementKey(requirementID), requirementAncestors{
		advertisementID: advertisementID,
		companyID:       companyID,
	}, gocache.NoExpiration)
	return c.repo.SaveRequirementAncestors(ctx, requirementID, advertisementID, companyID)
}

func (c *CachedAncestors) AdvertisementCompany(ctx context.Context, advertisementID string) (string, error) {
	if value, found := c.cache.Get(advCompanyKey(advertisementID)); found {
		return value.(string), nil
	}

	companyID, err := c.repo.GetAdvertisementCompany(ctx, advertisementID)
	if companyID != "" && err == nil {
		c.cache.Set(advCompanyKey(advertisementID), companyID, gocache.NoExpiration)
	}
	return companyID, err
}

func (c *CachedAncestors) RequirementAncestors(ctx context.Context, requirementID string) (string, string, error) {
	if value, found := c.cache.Get(requirementKey(requirementID)); found {
		ancestors := value.(requirementAncestors)
		return ancestors.advertisementID, ancestors.companyID, nil
	}

	advertisementID, companyID, err := c.repo.GetRequirementAncestors(ctx, requirementID)
	if advertisementID != "" && err == nil {
		c.cache.Set(requirementKey(requirementID), requirementAncestors{
			advertisementID: advertisementID,
			companyID:       companyID,
		}, gocache.NoExpiration)
	}
	return advertisementID, companyID, err
}

func (c *CachedAncestors) ForgetAdvertisement(ctx context.Context, advertisementID string) error {
	c.cache.Delete(advCompanyKey(advertisementID))
	return c.repo.RemoveAdvertisementCompany(ctx, advertisementID)
}

func (c *CachedAncestors) ForgetRequirement(ctx context.Context, requirementID string) error {
	c.cache.Delete(requirementKey(requirementID))
	return c.repo.RemoveRequirementAncestors(ctx, requirementID)
}
