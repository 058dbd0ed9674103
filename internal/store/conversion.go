package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateConversionParams represents parameters for recording a conversion
type CreateConversionParams struct {
	AffiliateID      uuid.UUID
	LinkID           uuid.UUID
	RefCode          string
	ClickID          *uuid.UUID
	PurchaseAmount   decimal.Decimal
	CommissionAmount decimal.Decimal
	PackageID        string
	PackageName      string
	BookingID        string
	SessionID        string
	Currency         string
	CustomerEmail    *string
	CustomerName     *string
}

const sqlCreateConversion = `
INSERT INTO conversions (affiliate_id, link_id, ref_code, click_id, purchase_amount, commission_amount,
                         package_id, package_name, booking_id, session_id, currency, customer_email, customer_name, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id, affiliate_id, link_id, ref_code, click_id, purchase_amount, commission_amount, package_id, package_name,
          booking_id, session_id, currency, customer_email, customer_name, status, created_at
`

// CreateConversion persists a pending conversion
func (s *Store) CreateConversion(ctx context.Context, params CreateConversionParams) (Conversion, error) {
	var conversion Conversion
	err := s.db.GetContext(ctx, &conversion, sqlCreateConversion,
		params.AffiliateID,
		params.LinkID,
		params.RefCode,
		params.ClickID,
		params.PurchaseAmount,
		params.CommissionAmount,
		params.PackageID,
		params.PackageName,
		params.BookingID,
		params.SessionID,
		params.Currency,
		params.CustomerEmail,
		params.CustomerName,
		ConversionStatusPending)
	if err != nil {
		s.logger.Error(ctx, "failed to create conversion", err)
		return Conversion{}, fmt.Errorf("failed to create conversion: %w", err)
	}
	return conversion, nil
}

const sqlGetRecentConversions = `
SELECT id, affiliate_id, link_id, ref_code, click_id, purchase_amount, commission_amount, package_id, package_name,
       booking_id, session_id, currency, customer_email, customer_name, status, created_at
FROM conversions
WHERE affiliate_id = $1
ORDER BY created_at DESC, id
LIMIT $2
`

// GetRecentConversions returns the newest conversions of an affiliate, newest first
func (s *Store) GetRecentConversions(ctx context.Context, affiliateID uuid.UUID, limit int) ([]Conversion, error) {
	conversions := []Conversion{}
	err := s.db.SelectContext(ctx, &conversions, sqlGetRecentConversions, affiliateID, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get recent conversions", err)
		return nil, fmt.Errorf("failed to get recent conversions: %w", err)
	}
	return conversions, nil
}
