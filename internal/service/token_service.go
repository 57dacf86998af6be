package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pathly/run-planner/internal/domain"
)

const tokenIssuer = "pathly"

var (
	ErrTokenGeneration = errors.New("failed to generate owner token")
	ErrInvalidToken    = errors.New("invalid owner token")
)

// OwnerClaims is the JWT payload binding a client to the profile it onboarded.
type OwnerClaims struct {
	OwnerID string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies owner tokens.
type TokenService interface {
	Issue(profile *domain.UserProfile) (string, error)
	Verify(token string) (uuid.UUID, error)
}

type tokenService struct {
	rt         Runtime
	secret     []byte
	expiration time.Duration
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(rt Runtime, secret string, expiration time.Duration) TokenService {
	if secret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if expiration <= 0 {
		expiration = 30 * 24 * time.Hour
	}
	return &tokenService{rt: rt, secret: []byte(secret), expiration: expiration}
}

func (s *tokenService) Issue(profile *domain.UserProfile) (string, error) {
	now := s.rt.Now()
	claims := &OwnerClaims{
		OwnerID: profile.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return signed, nil
}

// Verify checks signature, algorithm, expiry and issuer and returns the owner id.
func (s *tokenService) Verify(token string) (uuid.UUID, error) {
	claims := &OwnerClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || !claims.VerifyIssuer(tokenIssuer, true) {
		return uuid.Nil, ErrInvalidToken
	}
	ownerID, err := uuid.Parse(claims.OwnerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return ownerID, nil
}
