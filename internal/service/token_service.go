package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/azurecafe/cafe-service/config"
)

const (
	// RoleAdmin marks administrator sessions.
	RoleAdmin = "admin"
	// RoleUser marks customer sessions.
	RoleUser = "user"
)

// ErrInvalidToken is returned when a session token is invalid or expired.
var ErrInvalidToken = errors.New("invalid or expired session token")

// Session is an authenticated console session backed by a signed token.
type Session struct {
	Token     string
	SessionID string
	Username  string
	Role      string
	ExpiresAt time.Time
}

// Claims carries the identity encoded in a session token.
type Claims struct {
	SessionID string
	Username  string
	Role      string
}

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates session tokens.
type TokenService interface {
	Issue(username, role string) (*Session, error)
	Validate(tokenString string) (*Claims, error)
}

// TokenServiceImpl implements TokenService with HMAC-signed JWTs.
type TokenServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
}

// NewTokenService creates a token service from the auth configuration.
func NewTokenService(cfg config.AuthConfig) *TokenServiceImpl {
	return &TokenServiceImpl{
		secretKey: []byte(cfg.JWTSecretKey),
		ttl:       cfg.SessionTTL,
	}
}

// Issue signs a new session token for the given identity.
func (s *TokenServiceImpl) Issue(username, role string) (*Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	sessionID := uuid.NewString()

	claims := sessionClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &Session{
		Token:     token,
		SessionID: sessionID,
		Username:  username,
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate parses a session token and returns its claims.
func (s *TokenServiceImpl) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &Claims{
		SessionID: claims.ID,
		Username:  claims.Username,
		Role:      claims.Role,
	}, nil
}
