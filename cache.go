package main

import (
	"context"
	"fmt"
	"time"

	"go.devnw.com/ttl"
)

// DEFAULTCACHETTL is how long a loaded zone stays cached when no
// cache.ttl is configured.
const DEFAULTCACHETTL = time.Minute

// CachedLoader is a Loader which keeps parsed zones in a ttl cache so that
// a file listed more than once in a run is only parsed once. Failed loads
// are not cached.
type CachedLoader struct {
	next   Loader
	logger Logger
	ttl    time.Duration
	cache  *ttl.Cache[string, Zone]
}

// NewCachedLoader wraps next. The cache lives until ctx is canceled.
func NewCachedLoader(
	ctx context.Context,
	logger Logger,
	next Loader,
	timeout time.Duration,
) (*CachedLoader, error) {
	err := checkNil(ctx, logger, next)
	if err != nil {
		return nil, err
	}

	if timeout <= 0 {
		timeout = DEFAULTCACHETTL
	}

	return &CachedLoader{
		next:   next,
		logger: logger,
		ttl:    timeout,
		cache:  ttl.NewCache[string, Zone](ctx, timeout, false),
	}, nil
}

func (c *CachedLoader) Load(
	ctx context.Context,
	domain, path string,
) (Zone, error) {
	key := cacheKey(domain, path)

	z, ok := c.cache.Get(ctx, key)
	if ok && z != nil {
		c.logger.Debugw("zone cache hit", "domain", domain, "file", path)
		return z, nil
	}

	z, err := c.next.Load(ctx, domain, path)
	if err != nil {
		return nil, err
	}

	err = c.cache.SetTTL(ctx, key, z, c.ttl)
	if err != nil {
		c.logger.Warnw("failed to cache zone",
			"domain", domain,
			"file", path,
			"error", err,
		)
	}

	return z, nil
}

func cacheKey(domain, path string) string {
	return fmt.Sprintf("%s:%s", domain, path)
}
