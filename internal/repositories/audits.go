package repositories

import (
	"context"
	"github.com/minashiro/recruit-admin/internal/domain/models"
	"gorm.io/gorm"
	"time"
)

type Audits struct {
	db *gorm.DB
}

func NewAuditsRepository(db *gorm.DB) *Audits {
	return &Audits{db: db}
}

func (repo *Audits) Add(ctx context.Context, advertisementID, action string) error {
	return repo.db.WithContext(ctx).Create(&models.ApprovalAudit{
		AdvertisementID: advertisementID,
		Action:          action,
		CreatedAt:       time.Now(),
	}).Error
}

func (repo *Audits) GetByAdvertisement(ctx context.Context, advertisementID string) ([]models.ApprovalAudit, error) {
	var audits []models.ApprovalAudit
	err := repo.db.WithContext(ctx).
		Where("advertisement_id = ?", advertisementID).
		Order("created_at").
		Find(&audits).Error
	return audits, err
}
