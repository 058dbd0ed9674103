package store

// Referral link types. Every affiliate receives one link of each.
const (
	LinkTypeGeneral   = "general"
	LinkTypeFacebook  = "facebook"
	LinkTypeTwitter   = "twitter"
	LinkTypeInstagram = "instagram"
	LinkTypeTikTok    = "tiktok"
)

// LinkTypes lists the link types created at registration, in display order.
var LinkTypes = []string{
	LinkTypeGeneral,
	LinkTypeFacebook,
	LinkTypeTwitter,
	LinkTypeInstagram,
	LinkTypeTikTok,
}

const (
	AffiliateStatusActive    = "active"
	AffiliateStatusSuspended = "suspended"
)

const (
	ConversionStatusPending  = "pending"
	ConversionStatusApproved = "approved"
	ConversionStatusRejected = "rejected"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusAvailable = "available"
	TransactionStatusPaid      = "paid"
)

const TransactionSourceCommission = "commission"

const (
	NotificationStatusPending   = "pending"
	NotificationStatusSending   = "sending"
	NotificationStatusDelivered = "delivered"
	NotificationStatusFailed    = "failed"
)

const DefaultSource = "direct"
