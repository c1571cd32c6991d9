package utils

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const resetCodePrefix = "resetCode:"

// generateSecureCode generates a secure random code of the specified length.
// It returns a base32 encoded string (without padding) truncated to the desired length.
func generateSecureCode(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	code := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(code) > length {
		code = code[:length]
	}
	return code, nil
}

// InitiatePasswordReset generates a reset code, stores it in Redis with a
// 15-minute TTL keyed by email, and hands it to the delivery hook. Delivery
// currently logs the code; swap in a mail provider when one is wired.
func InitiatePasswordReset(email string) error {
	code, err := generateSecureCode(6)
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	ctx := context.Background()
	client := GetResetCacheClient()
	if err := client.Set(ctx, resetCodePrefix+email, code, 15*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	GetLogger().Info("Password reset code issued", zap.String("email", email), zap.String("code", code))
	return nil
}

// VerifyPasswordResetCode checks the submitted code against the stored one and
// consumes it on success.
func VerifyPasswordResetCode(email, code string) error {
	ctx := context.Background()
	client := GetResetCacheClient()

	stored, err := client.Get(ctx, resetCodePrefix+email).Result()
	if err != nil {
		return fmt.Errorf("reset code expired or not found")
	}
	if stored != code {
		return fmt.Errorf("invalid reset code")
	}

	client.Del(ctx, resetCodePrefix+email)
	return nil
}
