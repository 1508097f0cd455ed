package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/synthspec/synthspec/internal/config"
	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/logging"
	"github.com/synthspec/synthspec/pkg/errors"
	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// SpectraCache stores synthesis results keyed by the full request identity.
// Only seeded requests are cacheable: Cacheable rejects everything else and
// the service layer checks it before calling Get or Set.
type SpectraCache struct {
	client *Client
	cfg    config.CacheConfig
	logger logging.Logger
}

// NewSpectraCache wraps a connected client with the configured TTL and key
// prefix.
func NewSpectraCache(client *Client, cfg config.CacheConfig, log logging.Logger) *SpectraCache {
	return &SpectraCache{client: client, cfg: cfg, logger: log}
}

// Cacheable reports whether the request's result may be cached.  Unseeded
// synthesis is intentionally non-deterministic, so only seeded requests
// qualify.
func Cacheable(req stypes.SynthesisRequest) bool {
	return req.Seed != nil
}

// Key derives the cache key.  The descriptor is hashed so arbitrary user
// input never appears verbatim in the keyspace.
func (c *SpectraCache) Key(req stypes.SynthesisRequest) string {
	sum := sha1.Sum([]byte(req.Descriptor))
	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	}
	return fmt.Sprintf("%sspectra:%s:%s:%s:%d",
		c.cfg.KeyPrefix, hex.EncodeToString(sum[:]), req.Modality, req.Nucleus, seed)
}

// Get returns the cached result for the request, or nil on a miss.
func (c *SpectraCache) Get(ctx context.Context, req stypes.SynthesisRequest) (*stypes.SynthesisResult, error) {
	if !Cacheable(req) {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, c.Key(req))
	if err != nil || raw == nil {
		return nil, err
	}
	var res stypes.SynthesisResult
	if err := json.Unmarshal(raw, &res); err != nil {
		// A corrupt entry is treated as a miss; the rewrite will heal it.
		c.logger.Warn("discarding corrupt cache entry", logging.Err(err))
		return nil, nil
	}
	return &res, nil
}

// Set stores the result under the request's key with the configured TTL.
func (c *SpectraCache) Set(ctx context.Context, req stypes.SynthesisRequest, res stypes.SynthesisResult) error {
	if !Cacheable(req) {
		return nil
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return errors.Wrap(err, errors.CodeSerialization, "marshal synthesis result")
	}
	return c.client.Set(ctx, c.Key(req), raw, c.cfg.TTL)
}
