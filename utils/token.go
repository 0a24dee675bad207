package utils

import (
	"errors"
	"sync"
	"time"
)

var (
	blacklistedTokens = make(map[string]time.Time)
	blacklistMutex    sync.RWMutex
)

// BlacklistToken rejects the token until the given expiry, after which it would fail validation anyway.
func BlacklistToken(token string, until time.Time) {
	blacklistMutex.Lock()
	defer blacklistMutex.Unlock()

	now := time.Now()
	for t, expiry := range blacklistedTokens {
		if now.After(expiry) {
			delete(blacklistedTokens, t)
		}
	}
	blacklistedTokens[token] = until
}

func IsTokenBlacklisted(token string) bool {
	blacklistMutex.RLock()
	defer blacklistMutex.RUnlock()

	expiry, exists := blacklistedTokens[token]
	return exists && time.Now().Before(expiry)
}

func ValidateToken(tokenString string) (*CustomClaims, error) {
	if IsTokenBlacklisted(tokenString) {
		return nil, errors.New("token has been revoked")
	}
	return ParseToken(tokenString)
}
