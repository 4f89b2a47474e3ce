package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

const adminTokenTTL = 24 * time.Hour

type adminAuthService struct {
	passwordHash string
	jwtSecret    []byte
}

func NewAdminAuthService() ports.AdminAuthService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Println("Warning: JWT_SECRET not set")
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		fmt.Println("Warning: ADMIN_PASSWORD_HASH not set")
	}

	return &adminAuthService{
		passwordHash: hash,
		jwtSecret:    []byte(secret),
	}
}

func (s *adminAuthService) Login(password string) (string, error) {
	if s.passwordHash == "" {
		return "", fmt.Errorf("admin password hash not configured")
	}

	sum := sha256.Sum256([]byte(password))
	if !hmac.Equal([]byte(hex.EncodeToString(sum[:])), []byte(s.passwordHash)) {
		return "", domain.ErrUnauthorized
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(adminTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *adminAuthService) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return domain.ErrUnauthorized
	}
	return nil
}
