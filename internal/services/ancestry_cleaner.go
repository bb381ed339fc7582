package services

import (
	"context"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"time"
)

type AncestryCleanupRepository interface {
	RemoveOldLinks(ctx context.Context, expirationTime time.Time) (int64, error)
}

// AncestryCleaner ages persisted ancestry links out of the database. The
// in-memory entries stay session-scoped; only rows no admin session touched
// for the configured number of days are purged.
type AncestryCleaner struct {
	ancestors            AncestryCleanupRepository
	cron                 *cron.Cron
	expirationTimeInDays int
}

func NewAncestryCleaner(ancestors AncestryCleanupRepository, expirationInDays int) (*AncestryCleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}

	ac := &AncestryCleaner{
		ancestors:            ancestors,
		cron:                 cron.New(),
		expirationTimeInDays: expirationInDays,
	}

	_, err := ac.cron.AddFunc("0 0 * * *", ac.cleanOldLinks)
	if err != nil {
		return nil, err
	}

	ac.cron.Start()
	log.Infof("ancestry cleaner started, expiration in days: %d", ac.expirationTimeInDays)
	return ac, nil
}

func (ac *AncestryCleaner) Stop() {
	ac.cron.Stop()
}

func (ac *AncestryCleaner) cleanOldLinks() {
	expirationTime := time.Now().Add(-time.Duration(ac.expirationTimeInDays) * 24 * time.Hour)
	rowsAffected, err := ac.ancestors.RemoveOldLinks(context.Background(), expirationTime)
	if err != nil {
		log.Errorf("Failed to clean old ancestry links: %v", err)
	} else {
		log.Infof("Old ancestry links were cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
