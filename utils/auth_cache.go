package utils

import (
	"context"
	"time"

	"alcahub/config"

	"go.uber.org/zap"
)

// AuthCachePrefix keys cached auth sessions by user id.
const AuthCachePrefix = "authSession:"

func authSessionTTL() time.Duration {
	if config.AppConfig.SessionTTLMinutes > 0 {
		return time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	}
	return 30 * time.Minute
}

// CacheAuthSession stores the user's current token hash so auth checks can
// skip the database until the session TTL lapses. A no-op when the auth cache
// is not initialized.
func CacheAuthSession(userID, tokenHash string) {
	if AuthCacheClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := AuthCacheClient.Set(ctx, AuthCachePrefix+userID, tokenHash, authSessionTTL()).Err(); err != nil {
		GetLogger().Warn("failed to cache auth session", zap.String("userID", userID), zap.Error(err))
	}
}

// InvalidateAuthSession drops the cached session for a user, forcing the next
// request back to the database.
func InvalidateAuthSession(userID string) {
	if AuthCacheClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := AuthCacheClient.Del(ctx, AuthCachePrefix+userID).Err(); err != nil {
		GetLogger().Warn("failed to invalidate auth session", zap.String("userID", userID), zap.Error(err))
	}
}
