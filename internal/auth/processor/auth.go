package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=auth.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "affiliate-server"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrParseJWTToken      = errors.New("failed to parse jwt token")
	ErrExpiredToken       = errors.New("token expired")
	ErrAuthNotConfigured  = errors.New("token signing secret is not configured")
	ErrFailedSignIn       = errors.New("failed to sign in")
)

// UserStore is the persistence login needs.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
}

type AuthProcessor struct {
	store     UserStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    *observability.Logger
	now       func() time.Time
}

func New(store UserStore, jwtSecret string, tokenTTL time.Duration, logger *observability.Logger) AuthProcessor {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return AuthProcessor{
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// Ready reports whether tokens can be issued and checked.
func (p *AuthProcessor) Ready() bool {
	return p.jwtSecret != ""
}

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf,omitempty"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	Email          string           `json:"email,omitempty"`
}

type LoggedInAffiliate struct {
	User  store.User
	Token string
}

// Login checks the password of an affiliate who registered with one and issues a bearer token.
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (LoggedInAffiliate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoggedInAffiliate{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return LoggedInAffiliate{}, ErrFailedSignIn
	}

	if user.HashedPassword == nil {
		p.logger.Info(ctx, "login attempted for affiliate without password")
		return LoggedInAffiliate{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(password)); err != nil {
		p.logger.InfoWithError(ctx, "password mismatch", err)
		return LoggedInAffiliate{}, ErrInvalidCredentials
	}

	token, err := p.GenerateToken(ctx, user)
	if err != nil {
		return LoggedInAffiliate{}, err
	}
	return LoggedInAffiliate{User: user, Token: token}, nil
}
