package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT creates a signed session token. The subject is the user's
// email; role and vertical ride along as claims so the middleware can gate
// admin routes without a database lookup.
func GenerateJWT(email, role, vertical string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not configured")
	}

	expMinutes := 60
	if val := os.Getenv("JWT_EXP_MIN"); val != "" {
		if mins, err := strconv.Atoi(val); err == nil {
			expMinutes = mins
		}
	}

	claims := jwt.MapClaims{
		"sub":      email,
		"role":     role,
		"vertical": vertical,
		"iat":      time.Now().Unix(),
		"iss":      "nss-portal-api",
		"exp":      time.Now().Add(time.Minute * time.Duration(expMinutes)).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
