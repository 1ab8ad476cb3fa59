package service

import (
	"context"
	"sync"

	"moto-catalog-backend/internal/cache"
	"moto-catalog-backend/internal/logger"
	"moto-catalog-backend/internal/metrics"

	"github.com/google/uuid"
)

// CacheInvalidator drops cached read-views after a mutation. Invalidation
// runs in the background and never fails the write that triggered it.
type CacheInvalidator struct {
	cache cache.QueryCache
	wg    sync.WaitGroup
}

// NewCacheInvalidator creates a new cache invalidator
func NewCacheInvalidator(queryCache cache.QueryCache) *CacheInvalidator {
	if queryCache == nil {
		queryCache = cache.NoopCache{}
	}
	return &CacheInvalidator{cache: queryCache}
}

// InvalidationsFor lists what a mutation touching yearIDs makes stale: each
// year's own entry, the whole multi-year namespace and every
// configurations-scoped entry
func InvalidationsFor(yearIDs []uuid.UUID) []cache.Invalidation {
	out := make([]cache.Invalidation, 0, len(yearIDs)+2)
	seen := make(map[uuid.UUID]bool, len(yearIDs))
	for _, id := range yearIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, cache.Exact(cache.YearKey(id)))
	}
	out = append(out, cache.WholeNamespace(cache.NamespaceMultiYear), cache.AllConfigurations())
	return out
}

// InvalidateAfterMutation schedules the invalidations for yearIDs and returns
// immediately. Cancellation of ctx does not stop it.
func (c *CacheInvalidator) InvalidateAfterMutation(ctx context.Context, yearIDs []uuid.UUID) {
	invalidations := InvalidationsFor(yearIDs)
	detached := context.WithoutCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.apply(detached, invalidations)
	}()
}

// Wait blocks until every scheduled invalidation has finished
func (c *CacheInvalidator) Wait() {
	c.wg.Wait()
}

func (c *CacheInvalidator) apply(ctx context.Context, invalidations []cache.Invalidation) {
	for _, inv := range invalidations {
		if err := c.cache.Invalidate(ctx, inv); err != nil {
			metrics.Invalidations.WithLabelValues(inv.Label(), metrics.StatusError).Inc()
			logger.WithContext(ctx).WithError(err).WithField("invalidation", inv.String()).Error("Cache invalidation failed")
			continue
		}
		metrics.Invalidations.WithLabelValues(inv.Label(), metrics.StatusOK).Inc()
	}
	logger.WithContext(ctx).WithField("count", len(invalidations)).Debug("Cache invalidated after mutation")
}
