package models

import "time"

const (
	ChildKindAdvertisement = "advertisement"
	ChildKindRequirement   = "requirement"
)

// AncestorLink stores the parent ids of a nested resource discovered during a
// list or detail fetch. The backend does not echo ancestor ids back on
// nested-resource reads, so detail, update and delete calls on a bare id
// depend on a link recorded earlier in the session.
type AncestorLink struct {
	ChildKind       string `gorm:"primaryKey"`
	ChildID         string `gorm:"primaryKey"`
	CompanyID       string
	AdvertisementID string
	UpdatedAt       time.Time
}

// ApprovalAudit is one approval or rejection of an advertisement, recorded
// for traceability of the pending workflow.
type ApprovalAudit struct {
	ID              uint `gorm:"primaryKey"`
	AdvertisementID string
	Action          string
	CreatedAt       time.Time
}

const (
	AuditActionApproved = "approved"
	AuditActionRejected = "rejected"
)
