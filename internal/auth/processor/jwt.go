package processor

import (
	"context"
	"errors"
	"fmt"

	"affiliate-server/internal/store"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues an HS256 token whose subject is the affiliate's user id.
func (p *AuthProcessor) GenerateToken(ctx context.Context, user store.User) (string, error) {
	if !p.Ready() {
		p.logger.Error(ctx, "cannot sign token", ErrAuthNotConfigured)
		return "", ErrAuthNotConfigured
	}

	now := p.now()
	claims := BaseClaims{
		ExpirationTime: jwt.NewNumericDate(now.Add(p.tokenTTL)),
		IssuedAt:       jwt.NewNumericDate(now),
		Issuer:         issuer,
		Subject:        user.ID.String(),
		Audience:       jwt.ClaimStrings{issuer},
		Email:          user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedSignIn
	}
	return tokenString, nil
}

func (b *BaseClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *BaseClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *BaseClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *BaseClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *BaseClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *BaseClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}

// ValidateJWTToken verifies signature, expiry, issuer and audience.
func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	if !p.Ready() {
		return BaseClaims{}, ErrAuthNotConfigured
	}

	var claims BaseClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.InfoWithError(ctx, "token expired", err)
			return BaseClaims{}, ErrExpiredToken
		}
		p.logger.InfoWithError(ctx, "failed to parse token", err)
		return BaseClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return BaseClaims{}, ErrInvalidJWTToken
	}
	return claims, nil
}
