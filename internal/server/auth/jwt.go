package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ourchat/ourchat/internal/common"
)

// Claims is the token payload. Field order is the wire order:
// {"user_id":1,"iat":1700000000,"exp":1700086400}.
type Claims struct {
	UserID    *int64 `json:"user_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt *int64 `json:"exp,omitempty"`
}

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == nil {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(*c.ExpiresAt, 0)), nil
}

func (c Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

func (c Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c Claims) GetIssuer() (string, error)              { return "", nil }
func (c Claims) GetSubject() (string, error)             { return "", nil }
func (c Claims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }

var parser = jwt.NewParser(
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	jwt.WithoutClaimsValidation(),
	jwt.WithPaddingAllowed(),
)

// GenerateToken issues an HS256 token for userID that expires ttl from now,
// truncated to whole seconds.
func GenerateToken(userID int64, secretKey []byte, ttl time.Duration) (string, error) {
	return generateToken(userID, secretKey, ttl, time.Now())
}

// GetUserIDFromToken verifies the signature and expiry of tokenString and
// returns the user id it carries.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	return verifyToken(tokenString, secretKey, time.Now())
}

func generateToken(userID int64, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	iat := now.Unix()
	exp := iat + int64(ttl/time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:    &userID,
		IssuedAt:  iat,
		ExpiresAt: &exp,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func verifyToken(tokenString string, secretKey []byte, now time.Time) (int64, error) {
	claims := &Claims{}

	_, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if claims.UserID == nil {
		return 0, fmt.Errorf("%w: missing user_id", common.ErrInvalidToken)
	}
	if claims.ExpiresAt != nil && now.Unix() > *claims.ExpiresAt {
		return 0, common.ErrTokenExpired
	}

	return *claims.UserID, nil
}

// TokenCodec binds a signing secret, a token lifetime and a clock.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the lifetime of issued tokens.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

func (c *TokenCodec) Issue(userID int64) (string, error) {
	return generateToken(userID, c.secret, c.ttl, c.now())
}

func (c *TokenCodec) Verify(token string) (int64, error) {
	return verifyToken(token, c.secret, c.now())
}

// IsInvalid reports whether err came from token verification.
func IsInvalid(err error) bool {
	return errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired)
}
