package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// AnalysisCache provides in-memory caching of analysis responses. Identical
// inputs always produce identical results, so responses are cached under a
// digest of the canonical request.
type AnalysisCache struct {
	cache   *cache.Cache
	ttl     time.Duration
	maxSize int
}

// NewAnalysisCache creates a new response cache.
func NewAnalysisCache(ttl time.Duration, maxSize int) *AnalysisCache {
	return &AnalysisCache{
		cache:   cache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Key derives the cache key for a request from its canonical JSON form.
func (ac *AnalysisCache) Key(request AnalyzeRequest) string {
	payload, err := json.Marshal(request)
	if err != nil {
		return ""
	}
	digest := sha256.Sum256(payload)
	return hex.EncodeToString(digest[:])
}

// Get retrieves a cached response.
func (ac *AnalysisCache) Get(key string) *AnalyzeResponse {
	if key == "" {
		return nil
	}
	if cached, found := ac.cache.Get(key); found {
		if response, ok := cached.(*AnalyzeResponse); ok {
			return response
		}
	}
	return nil
}

// Set stores a response, evicting expired entries when the cache is full.
func (ac *AnalysisCache) Set(key string, response *AnalyzeResponse) {
	if key == "" {
		return
	}
	if ac.cache.ItemCount() >= ac.maxSize {
		ac.cache.DeleteExpired()
	}
	ac.cache.Set(key, response, ac.ttl)
}
