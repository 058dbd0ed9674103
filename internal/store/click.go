package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateClickParams represents parameters for recording a click
type CreateClickParams struct {
	AffiliateID uuid.UUID
	LinkID      uuid.UUID
	RefCode     string
	OccurredAt  time.Time
	URL         string
	Path        string
	UserAgent   string
	DeviceType  string
	Source      string
}

const sqlCreateClick = `
INSERT INTO clicks (affiliate_id, link_id, ref_code, occurred_at, url, path, user_agent, device_type, source, converted)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE)
RETURNING id, affiliate_id, link_id, ref_code, occurred_at, url, path, user_agent, device_type, source,
          converted, purchase_amount, commission_amount, created_at
`

// CreateClick records an unconverted click
func (s *Store) CreateClick(ctx context.Context, params CreateClickParams) (Click, error) {
	var click Click
	err := s.db.GetContext(ctx, &click, sqlCreateClick,
		params.AffiliateID,
		params.LinkID,
		params.RefCode,
		params.OccurredAt,
		params.URL,
		params.Path,
		params.UserAgent,
		params.DeviceType,
		params.Source)
	if err != nil {
		s.logger.Error(ctx, "failed to create click", err)
		return Click{}, fmt.Errorf("failed to create click: %w", err)
	}
	return click, nil
}

const sqlMarkClickConverted = `
UPDATE clicks
SET converted = TRUE,
    purchase_amount = $2,
    commission_amount = $3
WHERE id = $1 AND affiliate_id = $4 AND converted = FALSE
`

// MarkClickConverted flags a click of the affiliate as converted and stores the amounts. A click
// converts at most once: ErrNotFound is returned when the click is missing, already converted or
// belongs to another affiliate.
func (s *Store) MarkClickConverted(ctx context.Context, affiliateID, clickID uuid.UUID, purchase, commission decimal.Decimal) error {
	res, err := s.db.ExecContext(ctx, sqlMarkClickConverted, clickID, purchase, commission, affiliateID)
	if err != nil {
		s.logger.Error(ctx, "failed to mark click converted", err)
		return fmt.Errorf("failed to mark click converted: %w", err)
	}
	return requireAffected(res)
}
