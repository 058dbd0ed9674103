package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrProfileNotFound        = errors.New("affiliate profile not found")
	ErrFailedRegistration     = errors.New("failed to register affiliate")
	ErrFailedGetDashboard     = errors.New("failed to load dashboard")
)

const (
	recentConversionsLimit = 10
	maxCodeAttempts        = 5
)

// AffiliateStore is the persistence registration and the dashboard need.
type AffiliateStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	RegisterAffiliate(ctx context.Context, params store.RegisterAffiliateParams) (store.RegisteredAffiliate, error)
	GetAffiliateByUserID(ctx context.Context, userID uuid.UUID) (store.Affiliate, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (store.Balance, error)
	GetReferralLinksByAffiliate(ctx context.Context, affiliateID uuid.UUID) ([]store.ReferralLink, error)
	GetRecentConversions(ctx context.Context, affiliateID uuid.UUID, limit int) ([]store.Conversion, error)
	GetAffiliateStats(ctx context.Context, affiliateID uuid.UUID) (store.AffiliateStats, error)
}

// CodeGenerator is satisfied by referral.Generator.
type CodeGenerator interface {
	Generate(userID uuid.UUID, linkType string) string
}

// RegistrationNotifier is satisfied by notification.Notifier.
type RegistrationNotifier interface {
	NotifyRegistration(ctx context.Context, affiliate store.Affiliate, links []store.ReferralLink) error
}

// RegistrationPublisher is satisfied by events.Publisher.
type RegistrationPublisher interface {
	PublishAffiliateRegistered(ctx context.Context, affiliate store.Affiliate) error
}

// TokenIssuer is satisfied by the auth processor.
type TokenIssuer interface {
	GenerateToken(ctx context.Context, user store.User) (string, error)
}

type AffiliateProcessor struct {
	store         AffiliateStore
	codes         CodeGenerator
	notifier      RegistrationNotifier
	events        RegistrationPublisher
	tokens        TokenIssuer
	minimumPayout decimal.Decimal
	logger        *observability.Logger
}

func New(
	store AffiliateStore,
	codes CodeGenerator,
	notifier RegistrationNotifier,
	events RegistrationPublisher,
	tokens TokenIssuer,
	minimumPayout decimal.Decimal,
	logger *observability.Logger,
) AffiliateProcessor {
	return AffiliateProcessor{
		store:         store,
		codes:         codes,
		notifier:      notifier,
		events:        events,
		tokens:        tokens,
		minimumPayout: minimumPayout,
		logger:        logger,
	}
}

type RegisterParams struct {
	Name     string
	Email    string
	Phone    *string
	Website  *string
	Bio      *string
	Password string
}

type Registration struct {
	UserID    uuid.UUID
	Token     string
	Affiliate store.Affiliate
	Links     []store.ReferralLink
}

// Register creates the identity, profile, one link per link type and an empty balance, then
// sends the welcome emails. Email delivery and event publishing never fail a registration.
func (p *AffiliateProcessor) Register(ctx context.Context, params RegisterParams) (Registration, error) {
	email := strings.TrimSpace(params.Email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	exists, err := p.store.EmailExists(ctx, email)
	if err != nil {
		p.logger.Error(ctx, "failed to check if email exists", err)
		return Registration{}, ErrFailedRegistration
	}
	if exists {
		return Registration{}, ErrEmailAlreadyRegistered
	}

	var hashedPassword *string
	if params.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
		if err != nil {
			p.logger.Error(ctx, "failed to hash password", err)
			return Registration{}, ErrFailedRegistration
		}
		h := string(hash)
		hashedPassword = &h
	}

	registered, err := p.store.RegisterAffiliate(ctx, store.RegisterAffiliateParams{
		Name:            strings.TrimSpace(params.Name),
		Email:           email,
		Phone:           params.Phone,
		Website:         params.Website,
		Bio:             params.Bio,
		HashedPassword:  hashedPassword,
		LinkTypes:       store.LinkTypes,
		GenerateCode:    p.codes.Generate,
		MaxCodeAttempts: maxCodeAttempts,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyRegistered) {
			return Registration{}, ErrEmailAlreadyRegistered
		}
		p.logger.Error(ctx, "failed to register affiliate", err)
		return Registration{}, ErrFailedRegistration
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: registered.User.ID.String()})

	if err := p.notifier.NotifyRegistration(ctx, registered.Affiliate, registered.Links); err != nil {
		p.logger.Error(ctx, "failed to send registration notifications", err)
	}
	if err := p.events.PublishAffiliateRegistered(ctx, registered.Affiliate); err != nil {
		p.logger.Error(ctx, "failed to publish affiliate registered event", err)
	}

	token, err := p.tokens.GenerateToken(ctx, registered.User)
	if err != nil {
		p.logger.Warn(ctx, fmt.Sprintf("registered without a token: %v", err))
		token = ""
	}

	p.logger.Info(ctx, fmt.Sprintf("affiliate registered with %d referral links", len(registered.Links)))
	return Registration{
		UserID:    registered.User.ID,
		Token:     token,
		Affiliate: registered.Affiliate,
		Links:     registered.Links,
	}, nil
}

type Dashboard struct {
	Profile          store.Affiliate      `json:"profile"`
	Balance          store.Balance        `json:"balance"`
	Stats            store.AffiliateStats `json:"stats"`
	Links            []store.ReferralLink `json:"links"`
	Conversions      []store.Conversion   `json:"conversions"`
	CanRequestPayout bool                 `json:"canRequestPayout"`
}

// Dashboard returns the affiliate's profile, balance, links and latest conversions.
func (p *AffiliateProcessor) Dashboard(ctx context.Context, userID uuid.UUID) (Dashboard, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: userID.String()})

	profile, err := p.store.GetAffiliateByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Dashboard{}, ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to get affiliate profile", err)
		return Dashboard{}, ErrFailedGetDashboard
	}

	balance, err := p.store.GetBalance(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		balance = store.Balance{UserID: userID}
	case err != nil:
		p.logger.Error(ctx, "failed to get balance", err)
		return Dashboard{}, ErrFailedGetDashboard
	}

	totals, err := p.store.GetAffiliateStats(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		totals = store.AffiliateStats{AffiliateID: userID, TotalEarnings: decimal.Zero, TotalRevenue: decimal.Zero}
	case err != nil:
		p.logger.Error(ctx, "failed to get affiliate stats", err)
		return Dashboard{}, ErrFailedGetDashboard
	}

	links, err := p.store.GetReferralLinksByAffiliate(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to get referral links", err)
		return Dashboard{}, ErrFailedGetDashboard
	}

	conversions, err := p.store.GetRecentConversions(ctx, userID, recentConversionsLimit)
	if err != nil {
		p.logger.Error(ctx, "failed to get recent conversions", err)
		return Dashboard{}, ErrFailedGetDashboard
	}

	if links == nil {
		links = []store.ReferralLink{}
	}
	if conversions == nil {
		conversions = []store.Conversion{}
	}

	return Dashboard{
		Profile:          profile,
		Balance:          balance,
		Stats:            totals,
		Links:            links,
		Conversions:      conversions,
		CanRequestPayout: balance.Available.GreaterThanOrEqual(p.minimumPayout),
	}, nil
}
