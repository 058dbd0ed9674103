package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID             uuid.UUID `db:"id"`
	Email          string    `db:"email"`
	Name           string    `db:"name"`
	Phone          *string   `db:"phone"`
	HashedPassword *string   `db:"hashed_password"`
	CreatedAt      time.Time `db:"created_at"`
}

// Affiliate is the public profile of a registered user. Its UserID doubles as the affiliate id.
type Affiliate struct {
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Website   *string   `db:"website" json:"website,omitempty"`
	Bio       *string   `db:"bio" json:"bio,omitempty"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type ReferralLink struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	AffiliateID uuid.UUID       `db:"affiliate_id" json:"affiliateId"`
	RefCode     string          `db:"ref_code" json:"refCode"`
	LinkType    string          `db:"link_type" json:"linkType"`
	Clicks      int64           `db:"clicks" json:"clicks"`
	Conversions int64           `db:"conversions" json:"conversions"`
	Earnings    decimal.Decimal `db:"earnings" json:"earnings"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

type Click struct {
	ID               uuid.UUID           `db:"id"`
	AffiliateID      uuid.UUID           `db:"affiliate_id"`
	LinkID           uuid.UUID           `db:"link_id"`
	RefCode          string              `db:"ref_code"`
	OccurredAt       time.Time           `db:"occurred_at"`
	URL              string              `db:"url"`
	Path             string              `db:"path"`
	UserAgent        string              `db:"user_agent"`
	DeviceType       string              `db:"device_type"`
	Source           string              `db:"source"`
	Converted        bool                `db:"converted"`
	PurchaseAmount   decimal.NullDecimal `db:"purchase_amount"`
	CommissionAmount decimal.NullDecimal `db:"commission_amount"`
	CreatedAt        time.Time           `db:"created_at"`
}

type Conversion struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	AffiliateID      uuid.UUID       `db:"affiliate_id" json:"affiliateId"`
	LinkID           uuid.UUID       `db:"link_id" json:"linkId"`
	RefCode          string          `db:"ref_code" json:"refCode"`
	ClickID          *uuid.UUID      `db:"click_id" json:"clickId,omitempty"`
	PurchaseAmount   decimal.Decimal `db:"purchase_amount" json:"purchaseAmount"`
	CommissionAmount decimal.Decimal `db:"commission_amount" json:"commissionAmount"`
	PackageID        string          `db:"package_id" json:"packageId"`
	PackageName      string          `db:"package_name" json:"packageName"`
	BookingID        string          `db:"booking_id" json:"bookingId"`
	SessionID        string          `db:"session_id" json:"sessionId"`
	Currency         string          `db:"currency" json:"currency"`
	CustomerEmail    *string         `db:"customer_email" json:"customerEmail,omitempty"`
	CustomerName     *string         `db:"customer_name" json:"customerName,omitempty"`
	Status           string          `db:"status" json:"status"`
	CreatedAt        time.Time       `db:"created_at" json:"createdAt"`
}

type Balance struct {
	UserID    uuid.UUID       `db:"user_id" json:"userId"`
	Available decimal.Decimal `db:"available" json:"available"`
	Pending   decimal.Decimal `db:"pending" json:"pending"`
	Paid      decimal.Decimal `db:"paid" json:"paid"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

type EarningsTransaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Status      string          `db:"status"`
	Source      string          `db:"source"`
	Description string          `db:"description"`
	ReferenceID string          `db:"reference_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

type DailyStat struct {
	AffiliateID uuid.UUID       `db:"affiliate_id"`
	Day         time.Time       `db:"day"`
	Clicks      int64           `db:"clicks"`
	Conversions int64           `db:"conversions"`
	Earnings    decimal.Decimal `db:"earnings"`
	Revenue     decimal.Decimal `db:"revenue"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type DeviceStat struct {
	AffiliateID uuid.UUID `db:"affiliate_id"`
	DeviceType  string    `db:"device_type"`
	Day         time.Time `db:"day"`
	Clicks      int64     `db:"clicks"`
}

type SourceStat struct {
	AffiliateID uuid.UUID `db:"affiliate_id"`
	Source      string    `db:"source"`
	Day         time.Time `db:"day"`
	Clicks      int64     `db:"clicks"`
}

type LinkPerformance struct {
	AffiliateID uuid.UUID       `db:"affiliate_id"`
	LinkID      uuid.UUID       `db:"link_id"`
	Day         time.Time       `db:"day"`
	Clicks      int64           `db:"clicks"`
	Conversions int64           `db:"conversions"`
	Earnings    decimal.Decimal `db:"earnings"`
}

type AffiliateStats struct {
	AffiliateID      uuid.UUID       `db:"affiliate_id"`
	TotalClicks      int64           `db:"total_clicks"`
	TotalConversions int64           `db:"total_conversions"`
	TotalEarnings    decimal.Decimal `db:"total_earnings"`
	TotalRevenue     decimal.Decimal `db:"total_revenue"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type MonthlyEarning struct {
	AffiliateID uuid.UUID       `db:"affiliate_id"`
	Month       time.Time       `db:"month"`
	Conversions int64           `db:"conversions"`
	Earnings    decimal.Decimal `db:"earnings"`
	Revenue     decimal.Decimal `db:"revenue"`
}

type PendingNotification struct {
	ID             uuid.UUID  `db:"id"`
	Recipient      string     `db:"recipient"`
	Subject        string     `db:"subject"`
	HTMLBody       string     `db:"html_body"`
	IdempotencyKey string     `db:"idempotency_key"`
	Status         string     `db:"status"`
	Attempts       int        `db:"attempts"`
	LastError      *string    `db:"last_error"`
	ClaimedUntil   *time.Time `db:"claimed_until"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}
