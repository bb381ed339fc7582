package events

var AdvertisementApprovedTopic = "AdvertisementApprovedEvent"
var AdvertisementRejectedTopic = "AdvertisementRejectedEvent"

type AdvertisementApproved struct {
	AdvertisementID string
	Bulk            bool
}

type AdvertisementRejected struct {
	AdvertisementID string
}
