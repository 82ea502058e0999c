package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is wrapped by every verification failure.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenMalformed = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrTokenSignature = fmt.Errorf("%w: bad signature", ErrInvalidToken)
	ErrTokenExpired   = fmt.Errorf("%w: expired", ErrInvalidToken)
)

// JWTClaims custom claims for JWT
type JWTClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Token is a signed access token and its lifetime
type Token struct {
	Value     string
	UserID    int64
	ExpiresAt time.Time
	ExpiresIn int64 // seconds
}

// JWTUtil issues, verifies and refreshes HS256 tokens
type JWTUtil struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, ttl time.Duration) *JWTUtil {
	return &JWTUtil{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
}

// TTL is the validity window of issued tokens.
func (ju *JWTUtil) TTL() time.Duration {
	return ju.ttl
}

// Issue generates a new token for the user
func (ju *JWTUtil) Issue(userID int64) (Token, error) {
	now := ju.now()
	exp := now.Add(ju.ttl)
	claims := &JWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(userID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ju.secretKey)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return Token{Value: tokenString, UserID: userID, ExpiresAt: exp, ExpiresIn: int64(ju.ttl / time.Second)}, nil
}

// Verify validates signature and expiry and returns the subject's user id
func (ju *JWTUtil) Verify(tokenString string) (int64, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ju.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return ju.secretKey, nil
	})
	if err != nil {
		return 0, classify(err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenMalformed
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 || userID != claims.UserID {
		return 0, ErrTokenMalformed
	}
	return userID, nil
}

// Refresh re-issues a token for the same subject. Expired tokens are rejected.
func (ju *JWTUtil) Refresh(tokenString string) (Token, error) {
	userID, err := ju.Verify(tokenString)
	if err != nil {
		return Token{}, err
	}
	return ju.Issue(userID)
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrTokenSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}
