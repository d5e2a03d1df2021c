package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateSessionJWT(deviceID, secret string, jwtExpiryTime int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"device_id": deviceID,
		"exp":       time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GenerateDeviceSecret returns the opaque credential handed to a device once
// at registration. Only its bcrypt hash is persisted.
func GenerateDeviceSecret() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateExportObjectName(year int, month time.Month, format string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("exports/roster-%04d-%02d_%s.%s", year, int(month), timestamp, format)
}
