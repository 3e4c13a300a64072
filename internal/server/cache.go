package server

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/patrickmn/go-cache"
)

// resultCache keeps recent optimization responses keyed by a hash of the
// configuration bytes that produced them.
type resultCache struct {
	store *cache.Cache
}

func newResultCache(ttl time.Duration) *resultCache {
	if ttl <= 0 {
		return nil
	}
	return &resultCache{store: cache.New(ttl, 2*ttl)}
}

func cacheKey(configBytes []byte) string {
	return "optimize:" + strconv.FormatUint(xxhash.Sum64(configBytes), 16)
}

func (c *resultCache) get(configBytes []byte) (optimizeResponse, bool) {
	if c == nil {
		return optimizeResponse{}, false
	}
	value, ok := c.store.Get(cacheKey(configBytes))
	if !ok {
		return optimizeResponse{}, false
	}
	resp, ok := value.(optimizeResponse)
	return resp, ok
}

func (c *resultCache) set(configBytes []byte, resp optimizeResponse) {
	if c == nil {
		return
	}
	c.store.SetDefault(cacheKey(configBytes), resp)
}
