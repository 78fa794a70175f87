package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"Backend-Hostel-Billing/src/services/sessions"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims ข้อมูลใน cookie ของนักศึกษา ชี้ไปยัง session ฝั่งเซิร์ฟเวอร์
type SessionClaims struct {
	SessionID string `json:"sid"`
	RegNo     string `json:"regNo"`
	jwt.RegisteredClaims
}

func GenerateSessionToken(secret []byte, s *sessions.Session) (string, error) {
	claims := SessionClaims{
		SessionID: s.ID,
		RegNo:     s.RegNo,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseSessionToken(secret []byte, tokenStr string) (*SessionClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("empty token string")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || token == nil {
		return nil, fmt.Errorf("token parsing failed: %v", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// GenerateRandomString generates a random string of specified length
func GenerateRandomString(length int) string {
	bytes := make([]byte, length/2)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}
	return hex.EncodeToString(bytes)
}
