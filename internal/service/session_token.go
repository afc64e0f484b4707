package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims ties a signed token to one form session.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// SessionTokenService signs and verifies view-session handles (HMAC-SHA256).
// It identifies a form session; it does not identify a person.
type SessionTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionTokenService(secret string, ttl time.Duration) *SessionTokenService {
	return &SessionTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueToken returns a signed token for sessionID valid for the configured TTL.
func (s *SessionTokenService) IssueToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("session id is empty")
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		SessionID: sessionID,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry and returns the session id.
func (s *SessionTokenService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidSessionToken
	}
	return claims.SessionID, nil
}
