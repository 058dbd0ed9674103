package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const sqlGetReferralLinkByCode = `
SELECT id, affiliate_id, ref_code, link_type, clicks, conversions, earnings, created_at
FROM referral_links
WHERE ref_code = $1
`

// GetReferralLinkByCode retrieves a referral link by exact ref code match
func (s *Store) GetReferralLinkByCode(ctx context.Context, refCode string) (ReferralLink, error) {
	var link ReferralLink
	err := s.db.GetContext(ctx, &link, sqlGetReferralLinkByCode, refCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralLink{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral link by code", err)
		return ReferralLink{}, fmt.Errorf("failed to get referral link by code: %w", err)
	}
	return link, nil
}

const sqlGetReferralLinksByAffiliate = `
SELECT id, affiliate_id, ref_code, link_type, clicks, conversions, earnings, created_at
FROM referral_links
WHERE affiliate_id = $1
ORDER BY created_at, link_type
`

// GetReferralLinksByAffiliate retrieves all links owned by an affiliate
func (s *Store) GetReferralLinksByAffiliate(ctx context.Context, affiliateID uuid.UUID) ([]ReferralLink, error) {
	links := []ReferralLink{}
	err := s.db.SelectContext(ctx, &links, sqlGetReferralLinksByAffiliate, affiliateID)
	if err != nil {
		s.logger.Error(ctx, "failed to get referral links by affiliate", err)
		return nil, fmt.Errorf("failed to get referral links by affiliate: %w", err)
	}
	return links, nil
}

const sqlIncrementLinkClicks = `
UPDATE referral_links
SET clicks = clicks + 1
WHERE id = $1
`

// IncrementLinkClicks adds one click to a link
func (s *Store) IncrementLinkClicks(ctx context.Context, linkID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlIncrementLinkClicks, linkID)
	if err != nil {
		s.logger.Error(ctx, "failed to increment link clicks", err)
		return fmt.Errorf("failed to increment link clicks: %w", err)
	}
	return requireAffected(res)
}

const sqlIncrementLinkConversion = `
UPDATE referral_links
SET conversions = conversions + 1,
    earnings = earnings + $2
WHERE id = $1
`

// IncrementLinkConversion adds one conversion and the commission earned to a link
func (s *Store) IncrementLinkConversion(ctx context.Context, linkID uuid.UUID, commission decimal.Decimal) error {
	res, err := s.db.ExecContext(ctx, sqlIncrementLinkConversion, linkID, commission)
	if err != nil {
		s.logger.Error(ctx, "failed to increment link conversion", err)
		return fmt.Errorf("failed to increment link conversion: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
