package constants

// NotificationKind labels in-app notification rows.
type NotificationKind string

const (
	NotifNewOffer      NotificationKind = "NEW_OFFER"
	NotifOfferAccepted NotificationKind = "OFFER_ACCEPTED"
)
