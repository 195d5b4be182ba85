package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrExpiredToken means the token was well formed but its expiry has passed
	ErrExpiredToken = errors.New("token expired")
	// ErrMalformedToken covers every other validation failure: bad structure,
	// bad signature, wrong algorithm, unparseable claims
	ErrMalformedToken = errors.New("invalid token")
)

// Claims carried by an access token. Subject holds the username.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 access tokens
type TokenService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	now        func() time.Time
}

// NewTokenService creates a token service with the given signing secret
func NewTokenService(secret string, expiration time.Duration, issuer string) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		expiration: expiration,
		issuer:     issuer,
		now:        time.Now,
	}
}

// WithClock overrides the time source, for tests
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Generate issues a signed token for the given user
func (s *TokenService) Generate(userID uuid.UUID, username string) (string, error) {
	issuedAt := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.expiration)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token string. An expired token returns
// ErrExpiredToken; any other failure returns ErrMalformedToken.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrMalformedToken
	}
	if !token.Valid {
		return nil, ErrMalformedToken
	}
	return claims, nil
}
