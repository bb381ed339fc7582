package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/minashiro/recruit-admin/internal/domain/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(models.AncestorLink{})
	if err != nil {
		return fmt.Errorf("failed to migrate AncestorLink entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.ApprovalAudit{})
	if err != nil {
		return fmt.Errorf("failed to migrate ApprovalAudit entity: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
