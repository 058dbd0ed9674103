package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// RefCodeFunc produces a candidate referral code for a user and link type.
type RefCodeFunc func(userID uuid.UUID, linkType string) string

// RegisterAffiliateParams represents parameters for registering an affiliate
type RegisterAffiliateParams struct {
	Name           string
	Email          string
	Phone          *string
	Website        *string
	Bio            *string
	HashedPassword *string
	LinkTypes      []string
	GenerateCode   RefCodeFunc
	// MaxCodeAttempts bounds regeneration when a candidate code is already taken.
	MaxCodeAttempts int
}

// RegisteredAffiliate is everything created by a registration.
type RegisteredAffiliate struct {
	User      User
	Affiliate Affiliate
	Links     []ReferralLink
	Balance   Balance
}

const sqlEmailExists = `
SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))
`

// EmailExists reports whether a user with the given email already exists
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, sqlEmailExists, email); err != nil {
		s.logger.Error(ctx, "failed to check if email exists", err)
		return false, fmt.Errorf("failed to check if email exists: %w", err)
	}
	return exists, nil
}

const sqlCreateUser = `
INSERT INTO users (email, name, phone, hashed_password)
VALUES ($1, $2, $3, $4)
RETURNING id, email, name, phone, hashed_password, created_at
`

const sqlCreateAffiliate = `
INSERT INTO affiliates (user_id, name, email, phone, website, bio, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING user_id, name, email, phone, website, bio, status, created_at, updated_at
`

const sqlCreateReferralLink = `
INSERT INTO referral_links (affiliate_id, ref_code, link_type)
VALUES ($1, $2, $3)
ON CONFLICT (ref_code) DO NOTHING
RETURNING id, affiliate_id, ref_code, link_type, clicks, conversions, earnings, created_at
`

const sqlCreateBalance = `
INSERT INTO balances (user_id, available, pending, paid)
VALUES ($1, 0, 0, 0)
RETURNING user_id, available, pending, paid, updated_at
`

// RegisterAffiliate creates the user, the affiliate profile, one referral link per link type and a
// zero balance in a single transaction.
func (s *Store) RegisterAffiliate(ctx context.Context, params RegisterAffiliateParams) (RegisteredAffiliate, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return RegisteredAffiliate{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.rollback(ctx, tx)

	var result RegisteredAffiliate
	err = tx.GetContext(ctx, &result.User, sqlCreateUser, params.Email, params.Name, params.Phone, params.HashedPassword)
	if err != nil {
		if isUniqueViolation(err) {
			return RegisteredAffiliate{}, ErrEmailAlreadyRegistered
		}
		s.logger.Error(ctx, "failed to create user", err)
		return RegisteredAffiliate{}, fmt.Errorf("failed to create user: %w", err)
	}

	err = tx.GetContext(ctx, &result.Affiliate, sqlCreateAffiliate,
		result.User.ID,
		params.Name,
		params.Email,
		params.Phone,
		params.Website,
		params.Bio,
		AffiliateStatusActive)
	if err != nil {
		s.logger.Error(ctx, "failed to create affiliate profile", err)
		return RegisteredAffiliate{}, fmt.Errorf("failed to create affiliate profile: %w", err)
	}

	attempts := params.MaxCodeAttempts
	if attempts < 1 {
		attempts = 1
	}
	for _, linkType := range params.LinkTypes {
		var link ReferralLink
		created := false
		for i := 0; i < attempts; i++ {
			code := params.GenerateCode(result.User.ID, linkType)
			err = tx.GetContext(ctx, &link, sqlCreateReferralLink, result.User.ID, code, linkType)
			if errors.Is(err, sql.ErrNoRows) {
				// code already taken, try another
				continue
			}
			if err != nil {
				s.logger.Error(ctx, "failed to create referral link", err)
				return RegisteredAffiliate{}, fmt.Errorf("failed to create referral link: %w", err)
			}
			created = true
			break
		}
		if !created {
			return RegisteredAffiliate{}, fmt.Errorf("%s link: %w", linkType, ErrRefCodeExhausted)
		}
		result.Links = append(result.Links, link)
	}

	err = tx.GetContext(ctx, &result.Balance, sqlCreateBalance, result.User.ID)
	if err != nil {
		s.logger.Error(ctx, "failed to create balance", err)
		return RegisteredAffiliate{}, fmt.Errorf("failed to create balance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return RegisteredAffiliate{}, ErrEmailAlreadyRegistered
		}
		s.logger.Error(ctx, "failed to commit transaction", err)
		return RegisteredAffiliate{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return result, nil
}

const sqlGetAffiliateByUserID = `
SELECT user_id, name, email, phone, website, bio, status, created_at, updated_at
FROM affiliates
WHERE user_id = $1
`

// GetAffiliateByUserID retrieves an affiliate profile
func (s *Store) GetAffiliateByUserID(ctx context.Context, userID uuid.UUID) (Affiliate, error) {
	var affiliate Affiliate
	err := s.db.GetContext(ctx, &affiliate, sqlGetAffiliateByUserID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Affiliate{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get affiliate by user id", err)
		return Affiliate{}, fmt.Errorf("failed to get affiliate by user id: %w", err)
	}
	return affiliate, nil
}

const sqlGetUserByEmail = `
SELECT id, email, name, phone, hashed_password, created_at
FROM users
WHERE LOWER(email) = LOWER($1)
`

// GetUserByEmail retrieves a user by email, case-insensitively
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by email", err)
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}
