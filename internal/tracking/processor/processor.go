package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"affiliate-server/internal/notification"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrReferralLinkNotFound  = errors.New("referral link not found")
	ErrInvalidPurchaseAmount = errors.New("purchase amount must be positive")
	ErrFailedRecordClick     = errors.New("failed to record click")
	ErrFailedConversion      = errors.New("failed to record conversion")
)

// TrackingStore is the persistence the tracking flows need.
type TrackingStore interface {
	GetReferralLinkByCode(ctx context.Context, refCode string) (store.ReferralLink, error)
	CreateClick(ctx context.Context, params store.CreateClickParams) (store.Click, error)
	IncrementLinkClicks(ctx context.Context, linkID uuid.UUID) error
	CreateConversion(ctx context.Context, params store.CreateConversionParams) (store.Conversion, error)
	MarkClickConverted(ctx context.Context, affiliateID, clickID uuid.UUID, purchase, commission decimal.Decimal) error
	IncrementLinkConversion(ctx context.Context, linkID uuid.UUID, commission decimal.Decimal) error
	GetAffiliateByUserID(ctx context.Context, userID uuid.UUID) (store.Affiliate, error)
}

// BalanceCreditor is satisfied by ledger.Ledger.
type BalanceCreditor interface {
	Credit(ctx context.Context, affiliateID uuid.UUID, amount decimal.Decimal) (store.Balance, error)
}

// StatsRecorder is satisfied by stats.Aggregator.
type StatsRecorder interface {
	RecordClick(ctx context.Context, affiliateID, linkID uuid.UUID, deviceType, source string) error
	RecordConversion(ctx context.Context, affiliateID, linkID uuid.UUID, purchaseAmount, commissionAmount decimal.Decimal) error
}

// ConversionNotifier is satisfied by notification.Notifier.
type ConversionNotifier interface {
	NotifyConversion(ctx context.Context, details notification.ConversionDetails) error
}

// EventPublisher is satisfied by events.Publisher.
type EventPublisher interface {
	PublishClickRecorded(ctx context.Context, click store.Click) error
	PublishConversionRecorded(ctx context.Context, conversion store.Conversion) error
}

type TrackingProcessor struct {
	store          TrackingStore
	ledger         BalanceCreditor
	stats          StatsRecorder
	notifier       ConversionNotifier
	events         EventPublisher
	commissionRate decimal.Decimal
	logger         *observability.Logger
	fanout         fanout
	now            func() time.Time
}

func New(
	store TrackingStore,
	ledger BalanceCreditor,
	stats StatsRecorder,
	notifier ConversionNotifier,
	events EventPublisher,
	commissionRate decimal.Decimal,
	logger *observability.Logger,
) TrackingProcessor {
	return TrackingProcessor{
		store:          store,
		ledger:         ledger,
		stats:          stats,
		notifier:       notifier,
		events:         events,
		commissionRate: commissionRate,
		logger:         logger,
		fanout:         newFanout(logger),
		now:            time.Now,
	}
}

type RecordClickParams struct {
	RefCode    string
	URL        string
	Path       string
	UserAgent  string
	DeviceType string
	Source     string
	Timestamp  *time.Time
}

// RecordClick stores a click on a referral link and updates its counters. Only the click row
// itself is required to succeed.
func (p *TrackingProcessor) RecordClick(ctx context.Context, params RecordClickParams) (store.Click, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "ref_code", Value: params.RefCode})

	link, err := p.resolveLink(ctx, params.RefCode)
	if err != nil {
		return store.Click{}, err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: link.AffiliateID.String()},
		observability.Field{Key: "link_id", Value: link.ID.String()},
	)

	deviceType := strings.TrimSpace(params.DeviceType)
	if deviceType == "" {
		deviceType = observability.DeviceTypeFromUserAgent(params.UserAgent)
	}
	source := strings.TrimSpace(params.Source)
	if source == "" {
		source = store.DefaultSource
	}
	occurredAt := p.now()
	if params.Timestamp != nil && !params.Timestamp.IsZero() {
		occurredAt = *params.Timestamp
	}

	click, err := p.store.CreateClick(ctx, store.CreateClickParams{
		AffiliateID: link.AffiliateID,
		LinkID:      link.ID,
		RefCode:     link.RefCode,
		OccurredAt:  occurredAt,
		URL:         params.URL,
		Path:        params.Path,
		UserAgent:   params.UserAgent,
		DeviceType:  deviceType,
		Source:      source,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create click", err)
		return store.Click{}, fmt.Errorf("%w: %v", ErrFailedRecordClick, err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "click_id", Value: click.ID.String()})

	if err := p.fanout.run(ctx, []task{
		{name: "increment_link_clicks", policy: once, run: func(ctx context.Context) error {
			return p.store.IncrementLinkClicks(ctx, link.ID)
		}},
		{name: "record_click_stats", policy: once, run: func(ctx context.Context) error {
			return p.stats.RecordClick(ctx, link.AffiliateID, link.ID, deviceType, source)
		}},
		{name: "publish_click_event", policy: retried, run: func(ctx context.Context) error {
			return p.events.PublishClickRecorded(ctx, click)
		}},
	}); err != nil {
		p.logger.Warn(ctx, "click recorded with partial side-effect failures")
	}

	p.logger.Info(ctx, "click recorded")
	return click, nil
}

type RecordConversionParams struct {
	AffiliateCode  string
	ClickID        *uuid.UUID
	PurchaseAmount decimal.Decimal
	PackageID      string
	PackageName    string
	BookingID      string
	SessionID      string
	Currency       string
	CustomerEmail  *string
	CustomerName   *string
}

// Commission is the affiliate's share of a purchase, rounded half away from zero to cents.
func (p *TrackingProcessor) Commission(purchaseAmount decimal.Decimal) decimal.Decimal {
	return purchaseAmount.Mul(p.commissionRate).Round(2)
}

// RecordConversion attributes a purchase to a referral link. Once the conversion row exists the
// call succeeds; click correlation, counters, the ledger credit, stats and notifications are
// best-effort. Submitting the same purchase twice records it twice.
func (p *TrackingProcessor) RecordConversion(ctx context.Context, params RecordConversionParams) (store.Conversion, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "ref_code", Value: params.AffiliateCode})

	if !params.PurchaseAmount.IsPositive() {
		return store.Conversion{}, ErrInvalidPurchaseAmount
	}

	link, err := p.resolveLink(ctx, params.AffiliateCode)
	if err != nil {
		return store.Conversion{}, err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: link.AffiliateID.String()},
		observability.Field{Key: "link_id", Value: link.ID.String()},
	)

	purchase := params.PurchaseAmount.Round(2)
	commission := p.Commission(purchase)

	conversion, err := p.store.CreateConversion(ctx, store.CreateConversionParams{
		AffiliateID:      link.AffiliateID,
		LinkID:           link.ID,
		RefCode:          link.RefCode,
		ClickID:          params.ClickID,
		PurchaseAmount:   purchase,
		CommissionAmount: commission,
		PackageID:        params.PackageID,
		PackageName:      params.PackageName,
		BookingID:        params.BookingID,
		SessionID:        params.SessionID,
		Currency:         params.Currency,
		CustomerEmail:    params.CustomerEmail,
		CustomerName:     params.CustomerName,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create conversion", err)
		return store.Conversion{}, fmt.Errorf("%w: %v", ErrFailedConversion, err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "conversion_id", Value: conversion.ID.String()})

	tasks := []task{
		{name: "increment_link_conversions", policy: once, run: func(ctx context.Context) error {
			return p.store.IncrementLinkConversion(ctx, link.ID, commission)
		}},
		{name: "credit_balance", policy: once, run: func(ctx context.Context) error {
			if commission.IsZero() {
				return nil
			}
			_, err := p.ledger.Credit(ctx, link.AffiliateID, commission)
			return err
		}},
		{name: "record_conversion_stats", policy: once, run: func(ctx context.Context) error {
			return p.stats.RecordConversion(ctx, link.AffiliateID, link.ID, purchase, commission)
		}},
		{name: "notify_conversion", policy: once, run: func(ctx context.Context) error {
			return p.notifier.NotifyConversion(ctx, notification.ConversionDetails{
				Conversion: conversion,
				Affiliate:  p.loadAffiliate(ctx, link.AffiliateID),
			})
		}},
		{name: "publish_conversion_event", policy: retried, run: func(ctx context.Context) error {
			return p.events.PublishConversionRecorded(ctx, conversion)
		}},
	}
	if params.ClickID != nil {
		clickID := *params.ClickID
		tasks = append(tasks, task{name: "mark_click_converted", policy: retried, run: func(ctx context.Context) error {
			err := p.store.MarkClickConverted(ctx, link.AffiliateID, clickID, purchase, commission)
			if errors.Is(err, store.ErrNotFound) {
				// unknown, already converted or another affiliate's click; nothing to retry
				p.logger.Warn(ctx, "click not found or already converted")
				return nil
			}
			return err
		}})
	}

	if err := p.fanout.run(ctx, tasks); err != nil {
		p.logger.Warn(ctx, "conversion recorded with partial side-effect failures")
	}

	p.logger.Info(ctx, fmt.Sprintf("conversion recorded: purchase %s, commission %s",
		purchase.StringFixed(2), commission.StringFixed(2)))
	return conversion, nil
}

func (p *TrackingProcessor) resolveLink(ctx context.Context, refCode string) (store.ReferralLink, error) {
	if strings.TrimSpace(refCode) == "" {
		return store.ReferralLink{}, ErrReferralLinkNotFound
	}
	link, err := p.store.GetReferralLinkByCode(ctx, refCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralLink{}, ErrReferralLinkNotFound
		}
		p.logger.Error(ctx, "failed to resolve referral link", err)
		return store.ReferralLink{}, fmt.Errorf("failed to resolve referral link: %w", err)
	}
	return link, nil
}

// loadAffiliate returns nil when the profile cannot be read, so only admins get notified.
func (p *TrackingProcessor) loadAffiliate(ctx context.Context, affiliateID uuid.UUID) *store.Affiliate {
	affiliate, err := p.store.GetAffiliateByUserID(ctx, affiliateID)
	if err != nil {
		p.logger.Warn(ctx, fmt.Sprintf("affiliate profile unavailable for notification: %v", err))
		return nil
	}
	return &affiliate
}
