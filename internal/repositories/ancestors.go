package repositories

import (
	"context"
	"errors"
	"github.com/minashiro/recruit-admin/internal/domain/models"
	"gorm.io/gorm"
	"time"
)

type Ancestors struct {
	db *gorm.DB
}

func NewAncestorsRepository(db *gorm.DB) *Ancestors {
	return &Ancestors{db: db}
}

func (repo *Ancestors) SaveAdvertisementCompany(ctx context.Context, advertisementID, companyID string) error {
	return repo.db.WithContext(ctx).Save(&models.AncestorLink{
		ChildKind: models.ChildKindAdvertisement,
		ChildID:   advertisementID,
		CompanyID: companyID,
		UpdatedAt: time.Now(),
	}).Error
}

func (repo *Ancestors) SaveRequirementAncestors(ctx context.Context, requirementID, advertisementID, companyID string) error {
	return repo.db.WithContext(ctx).Save(&models.AncestorLink{
		ChildKind:       models.ChildKindRequirement,
		ChildID:         requirementID,
		CompanyID:       companyID,
		AdvertisementID: advertisementID,
		UpdatedAt:       time.Now(),
	}).Error
}

// GetAdvertisementCompany returns "" when no link is recorded.
func (repo *Ancestors) GetAdvertisementCompany(ctx context.Context, advertisementID string) (string, error) {

	var link models.AncestorLink
	err := repo.db.WithContext(ctx).
		First(&link, "child_kind = ? AND child_id = ?", models.ChildKindAdvertisement, advertisementID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return link.CompanyID, nil
}

// GetRequirementAncestors returns ("", "") when no link is recorded. Either
// field may be empty on a partially recorded link.
func (repo *Ancestors) GetRequirementAncestors(ctx context.Context, requirementID string) (string, string, error) {

	var link models.AncestorLink
	err := repo.db.WithContext(ctx).
		First(&link, "child_kind = ? AND child_id = ?", models.ChildKindRequirement, requirementID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", nil
		}
		return "", "", err
	}
	return link.AdvertisementID, link.CompanyID, nil
}

func (repo *Ancestors) RemoveAdvertisementCompany(ctx context.Context, advertisementID string) error {
	return repo.db.WithContext(ctx).
		Delete(&models.AncestorLink{}, "child_kind = ? AND child_id = ?", models.ChildKindAdvertisement, advertisementID).Error
}

func (repo *Ancestors) RemoveRequirementAncestors(ctx context.Context, requirementID string) error {
	return repo.db.WithContext(ctx).
		Delete(&models.AncestorLink{}, "child_kind = ? AND child_id = ?", models.ChildKindRequirement, requirementID).Error
}

func (repo *Ancestors) RemoveOldLinks(ctx context.Context, expirationTime time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&models.AncestorLink{}, "updated_at < ?", expirationTime)
	return res.RowsAffected, res.Error
}
