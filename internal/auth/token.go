package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "bloghub/internal/errors"
)

// ResetTokenExpiry is the duration for which password reset tokens are valid.
const ResetTokenExpiry = 30 * time.Minute

// ResetClaims are the JWT claims carried by a password reset token.
type ResetClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed password reset tokens. Tokens are
// not persisted anywhere; validity rests on the signature and expiry alone.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a token service with the given signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: ResetTokenExpiry}
}

// Issue signs a reset token embedding the user id, expiring after the
// configured window.
func (s *TokenService) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := &ResetClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the embedded user id if the signature is valid and the
// token has not expired, and ErrTokenInvalid otherwise.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResetClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*ResetClaims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, apperrors.ErrTokenInvalid
	}
	return claims.UserID, nil
}
