package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching LLM analysis responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a request payload. Identical payloads
// (same case, evidence and strategy sent to the same model) map to the
// same key, so repeated analyses reuse the stored response.
func Key(payload []byte) string {
	hash := sha256.Sum256(payload)
	return "caselens:v1:" + hex.EncodeToString(hash[:])
}
