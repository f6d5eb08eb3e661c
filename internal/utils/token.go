package utils

import (
	"fmt"
	"time"

	"forumapi/internal/apperror"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// TokenManager signs and checks the HS256 access and refresh tokens.
type TokenManager struct {
	accessKey  []byte
	refreshKey []byte
	accessAge  time.Duration
}

func NewTokenManager(accessKey, refreshKey string, accessAge time.Duration) *TokenManager {
	return &TokenManager{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		accessAge:  accessAge,
	}
}

func (m *TokenManager) CreateAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(m.accessAge).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.accessKey)
}

// CreateRefreshToken 不设置过期时间，由 authentications 表控制有效性
func (m *TokenManager) CreateRefreshToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": time.Now().Unix(),
		"jti": uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.refreshKey)
}

func (m *TokenManager) VerifyRefreshToken(token string) (string, error) {
	claims, err := decode(token, m.refreshKey)
	if err != nil {
		return "", apperror.Invariant("refresh token tidak valid")
	}
	id, _ := claims["id"].(string)
	return id, nil
}

// DecodeAccessToken returns the user id carried by a valid access token.
func (m *TokenManager) DecodeAccessToken(token string) (string, error) {
	claims, err := decode(token, m.accessKey)
	if err != nil {
		return "", err
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("token has no user id")
	}
	return id, nil
}

func decode(tokenString string, key []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid or expired token")
}
