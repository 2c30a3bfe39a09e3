// Package auth validates the bearer tokens issued by the portal's identity
// provider. Sessions are established elsewhere; this service only checks
// signature, issuer and expiry and extracts the user id.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kamrul-CSE-official/ksa-backend/pkg/ctxutil"
)

// ErrInvalidToken wraps every validation failure.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and validates HS256 access tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Department string `json:"dept,omitempty"`
}

// GenerateAccessToken creates a signed token with userID as subject. It is
// used by operator tooling and tests; production tokens come from the
// identity provider.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, department string) (string, error) {
	now := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Department: department,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates an access token and returns the
// caller it names: the user id from the subject and the optional dept claim.
func (m *JWTManager) ValidateAccessToken(tokenString string) (ctxutil.Principal, error) {
	if tokenString == "" {
		return ctxutil.Principal{}, fmt.Errorf("token is empty: %w", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return ctxutil.Principal{}, fmt.Errorf("parse token: %v: %w", err, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return ctxutil.Principal{}, fmt.Errorf("invalid claims: %w", ErrInvalidToken)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return ctxutil.Principal{}, fmt.Errorf("invalid subject %q: %w", claims.Subject, ErrInvalidToken)
	}

	return ctxutil.Principal{UserID: userID, Department: strings.TrimSpace(claims.Department)}, nil
}
