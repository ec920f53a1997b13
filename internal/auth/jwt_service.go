package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"orders/internal/model"
)

// TokenExpiry is the lifetime of issued bearer tokens.
const TokenExpiry = 30 * 24 * time.Hour

// Claims are a snapshot of the user at issuance time; they are not refreshed
// until re-login.
type Claims struct {
	Role      string `json:"role"`
	Document  string `json:"document"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Photo     string `json:"photo"`
	CityID    int    `json:"cityId"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// GenerateToken signs a bearer token carrying the user's profile claims.
// No issuer or audience is set.
func (s *JWTService) GenerateToken(user *model.User) (string, time.Time, error) {
	expiration := time.Now().Add(TokenExpiry)
	claims := &Claims{
		Role:      string(user.UserType),
		Document:  user.Document,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Address:   user.Address,
		Photo:     user.Photo,
		CityID:    user.CityID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiration, nil
}

// ValidateToken checks signature and expiry only and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
