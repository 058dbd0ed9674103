package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// uniqueCode never collides across tests sharing the database.
func uniqueCode(userID uuid.UUID, linkType string) string {
	return fmt.Sprintf("%s-%s-%s", userID.String()[:4], linkType[:2], uuid.New().String()[:8])
}

// --- Affiliate Fixtures ---

type AffiliateOpts struct {
	Name  string
	Email string
}

func DefaultAffiliateOpts() AffiliateOpts {
	return AffiliateOpts{
		Name:  "Test Affiliate",
		Email: fmt.Sprintf("affiliate-%s@example.com", uuid.New().String()),
	}
}

// CreateAffiliate registers an affiliate with all five links and a zero balance.
func (f *Fixtures) CreateAffiliate(opts ...func(*AffiliateOpts)) RegisteredAffiliate {
	f.t.Helper()
	o := DefaultAffiliateOpts()
	for _, fn := range opts {
		fn(&o)
	}

	registered, err := f.testDB.Store.RegisterAffiliate(f.ctx, RegisterAffiliateParams{
		Name:            o.Name,
		Email:           o.Email,
		LinkTypes:       LinkTypes,
		GenerateCode:    uniqueCode,
		MaxCodeAttempts: 3,
	})
	require.NoError(f.t, err, "failed to create test affiliate")
	return registered
}

// --- Click Fixtures ---

// CreateClick records a click on the given link.
func (f *Fixtures) CreateClick(link ReferralLink) Click {
	f.t.Helper()
	click, err := f.testDB.Store.CreateClick(f.ctx, CreateClickParams{
		AffiliateID: link.AffiliateID,
		LinkID:      link.ID,
		RefCode:     link.RefCode,
		OccurredAt:  time.Now(),
		URL:         "https://example.com/landing",
		Path:        "/landing",
		UserAgent:   "Mozilla/5.0",
		DeviceType:  "desktop",
		Source:      DefaultSource,
	})
	require.NoError(f.t, err, "failed to create test click")
	return click
}

// --- Conversion Fixtures ---

// CreateConversion records a pending conversion on the given link.
func (f *Fixtures) CreateConversion(link ReferralLink, purchase string) Conversion {
	f.t.Helper()
	amount := decimal.RequireFromString(purchase)
	conversion, err := f.testDB.Store.CreateConversion(f.ctx, CreateConversionParams{
		AffiliateID:      link.AffiliateID,
		LinkID:           link.ID,
		RefCode:          link.RefCode,
		PurchaseAmount:   amount,
		CommissionAmount: amount.Mul(decimal.RequireFromString("0.10")).Round(2),
		PackageID:        "pkg-1",
		PackageName:      "Starter",
		BookingID:        "booking-" + uuid.New().String()[:8],
		SessionID:        "session-" + uuid.New().String()[:8],
		Currency:         "USD",
	})
	require.NoError(f.t, err, "failed to create test conversion")
	return conversion
}

// --- Read-back helpers ---

// Click reads a click row back.
func (f *Fixtures) Click(clickID uuid.UUID) Click {
	f.t.Helper()
	var click Click
	err := f.testDB.db.GetContext(f.ctx, &click, `
SELECT id, affiliate_id, link_id, ref_code, occurred_at, url, path, user_agent, device_type, source,
       converted, purchase_amount, commission_amount, created_at
FROM clicks
WHERE id = $1`, clickID)
	require.NoError(f.t, err, "failed to read click")
	return click
}

// DailyStat reads an affiliate-day row back.
func (f *Fixtures) DailyStat(affiliateID uuid.UUID, day time.Time) DailyStat {
	f.t.Helper()
	var stat DailyStat
	err := f.testDB.db.GetContext(f.ctx, &stat, `
SELECT affiliate_id, day, clicks, conversions, earnings, revenue, updated_at
FROM daily_stats
WHERE affiliate_id = $1 AND day = $2`, affiliateID, day.Format(dayLayout))
	require.NoError(f.t, err, "failed to read daily stats")
	return stat
}

// EarningsTransactions lists the ledger entries of a user.
func (f *Fixtures) EarningsTransactions(userID uuid.UUID) []EarningsTransaction {
	f.t.Helper()
	txns := []EarningsTransaction{}
	err := f.testDB.db.SelectContext(f.ctx, &txns, `
SELECT id, user_id, amount, status, source, description, reference_id, created_at
FROM earnings_transactions
WHERE user_id = $1
ORDER BY created_at DESC`, userID)
	require.NoError(f.t, err, "failed to read earnings transactions")
	return txns
}
