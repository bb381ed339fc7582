package services

import (
	"context"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/minashiro/recruit-admin/internal/domain/models"
	"github.com/minashiro/recruit-admin/internal/events"
	"github.com/stretchr/testify/assert"
)

type mockAncestryRepo struct {
	removedBefore time.Time
	removed       int64
}

func (m *mockAncestryRepo) RemoveOldLinks(_ context.Context, expirationTime time.Time) (int64, error) {
	m.removedBefore = expirationTime
	return m.removed, nil
}

func Test_AncestryCleaner_RejectsNonPositiveExpiration(t *testing.T) {

	repo := &mockAncestryRepo{}

	_, err := NewAncestryCleaner(repo, 0)
	assert.Error(t, err)

	_, err = NewAncestryCleaner(repo, -3)
	assert.Error(t, err)
}

func Test_AncestryCleaner_CleansLinksOlderThanConfiguredDays(t *testing.T) {

	assert := assert.New(t)

	repo := &mockAncestryRepo{removed: 5}
	cleaner, err := NewAncestryCleaner(repo, 30)
	assert.NoError(err)
	defer cleaner.Stop()

	cleaner.cleanOldLinks()

	expected := time.Now().Add(-30 * 24 * time.Hour)
	assert.WithinDuration(expected, repo.removedBefore, time.Minute)
}

type mockAuditRepo struct {
	entries []models.ApprovalAudit
}

func (m *mockAuditRepo) Add(_ context.Context, advertisementID, action string) error {
	m.entries = append(m.entries, models.ApprovalAudit{AdvertisementID: advertisementID, Action: action})
	return nil
}

func Test_AuditRecorder_PersistsPublishedDecisions(t *testing.T) {

	assert := assert.New(t)

	bus := EventBus.New()
	repo := &mockAuditRepo{}

	_, err := NewAuditRecorder(bus, repo)
	assert.NoError(err)

	bus.Publish(events.AdvertisementApprovedTopic, events.AdvertisementApproved{AdvertisementID: "101"})
	bus.Publish(events.AdvertisementRejectedTopic, events.AdvertisementRejected{AdvertisementID: "102"})
	bus.Publish(events.AdvertisementApprovedTopic, events.AdvertisementApproved{AdvertisementID: "103", Bulk: true})

	assert.Len(repo.entries, 3)
	assert.Equal("101", repo.entries[0].AdvertisementID)
	assert.Equal(models.AuditActionApproved, repo.entries[0].Action)
	assert.Equal(models.AuditActionRejected, repo.entries[1].Action)
	assert.Equal("103", repo.entries[2].AdvertisementID)
}
