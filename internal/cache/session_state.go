package cache

import "fmt"

// SessionKey builds the cache key for one user's dialogue session.
func SessionKey(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}
