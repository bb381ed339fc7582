package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/minashiro/recruit-admin/internal/domain/models"
	"github.com/minashiro/recruit-admin/internal/events"
	"github.com/minashiro/recruit-admin/internal/logger"
	log "github.com/sirupsen/logrus"
)

type AuditRepository interface {
	Add(ctx context.Context, advertisementID, action string) error
}

// AuditRecorder persists a trail row for every approval decision published
// on the bus, so moderation history survives restarts.
type AuditRecorder struct {
	audits AuditRepository
}

func NewAuditRecorder(bus EventBus.Bus, audits AuditRepository) (*AuditRecorder, error) {

	recorder := &AuditRecorder{audits: audits}

	err := bus.Subscribe(events.AdvertisementApprovedTopic, recorder.onAdvertisementApproved)
	if err != nil {
		return nil, err
	}

	err = bus.Subscribe(events.AdvertisementRejectedTopic, recorder.onAdvertisementRejected)
	if err != nil {
		return nil, err
	}

	return recorder, nil
}

func (r *AuditRecorder) onAdvertisementApproved(event events.AdvertisementApproved) {
	err := r.audits.Add(context.Background(), event.AdvertisementID, models.AuditActionApproved)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("Failed to record approval of advertisement %s: %v", event.AdvertisementID, err)
	}
}

func (r *AuditRecorder) onAdvertisementRejected(event events.AdvertisementRejected) {
	err := r.audits.Add(context.Background(), event.AdvertisementID, models.AuditActionRejected)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("Failed to record rejection of advertisement %s: %v", event.AdvertisementID, err)
	}
}
