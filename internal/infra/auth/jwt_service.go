// Package auth provides the local HS256 token mode used when the Firebase auth
// emulator is not available.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"pymerp/config"
	"pymerp/internal/domain/service"
)

const (
	issuer          = "pymerp-local"
	companyIDClaim  = "company_id"
	defaultTokenTTL = time.Hour
)

// jwtService signs and verifies HS256 tokens shaped like Firebase ID tokens.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// JWTService mints development tokens and verifies them.
type JWTService interface {
	service.TokenVerifier

	// Mint signs a token for uid. companyID is omitted when empty.
	Mint(uid, email, companyID string) (string, error)
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (JWTService, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    defaultTokenTTL,
		now:    time.Now,
	}, nil
}

// NewTokenVerifier exposes the jwt service as a TokenVerifier.
func NewTokenVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	return NewJWTService(cfg)
}

// Mint creates a signed token with the same claims the Firebase verifier reads.
func (s *jwtService) Mint(uid, email, companyID string) (string, error) {
	if uid == "" {
		return "", errors.New("uid is required")
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":   uid,
		"email": email,
		"iss":   issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}
	if companyID != "" {
		claims[companyIDClaim] = companyID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}

// VerifyToken checks signature, issuer and expiry.
func (s *jwtService) VerifyToken(_ context.Context, tokenString string) (*service.VerifiedToken, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("token has no subject")
	}

	verified := &service.VerifiedToken{UID: sub}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		verified.ExpiresAt = exp.Time.UTC()
	}
	if email, ok := claims["email"].(string); ok {
		verified.Email = email
	}
	if companyID, ok := claims[companyIDClaim].(string); ok {
		verified.CompanyID = companyID
	}

	return verified, nil
}
