// Package pricing owns every external price lookup. The cache deduplicates
// concurrent requests for the same item and serves stale data when the
// upstream fails, so the rest of the engine never talks to the price service
// directly.
package pricing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"gp_tracker/internal/domain"
	"gp_tracker/internal/domain/entity"
	"gp_tracker/pkg/contextx"
	"gp_tracker/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Fetcher is the upstream the cache shields; *Client satisfies it.
type Fetcher interface {
	Latest(ctx context.Context, itemIDs []int) (map[int]entity.PriceQuote, error)
}

// Cache is the sole shared mutable state between requests. Entries are stored
// without store-level expiry so an expired quote stays around as the stale
// fallback; freshness is judged against the quote's own fetch time.
type Cache struct {
	fetcher      Fetcher
	ttl          time.Duration
	fetchTimeout time.Duration
	store        *gocache.Cache
	group        singleflight.Group
}

func NewCache(fetcher Fetcher, ttl, fetchTimeout time.Duration) *Cache {
	return &Cache{
		fetcher:      fetcher,
		ttl:          ttl,
		fetchTimeout: fetchTimeout,
		store:        gocache.New(gocache.NoExpiration, 0),
	}
}

// Price returns a quote for the item: fresh from cache when possible, freshly
// fetched on miss or expiry, stale-but-marked when the upstream fails and an
// old quote exists. Concurrent callers for the same item share one fetch.
func (c *Cache) Price(ctx context.Context, itemID int) (entity.PriceQuote, error) {
	if quote, ok := c.lookup(itemID); ok {
		metricCacheHits.Inc()
		return quote, nil
	}

	metricCacheMisses.Inc()

	v, err, shared := c.group.Do(strconv.Itoa(itemID), func() (any, error) {
		// Another caller may have completed the fetch while this one was
		// queued on the flight key.
		if quote, ok := c.lookup(itemID); ok {
			return quote, nil
		}

		return c.fetchOne(ctx, itemID)
	})
	if shared {
		metricCoalesced.Inc()
	}
	if err != nil {
		return entity.PriceQuote{}, err
	}

	return v.(entity.PriceQuote), nil
}

// Warm bulk-fetches, in one upstream call, the given items the cache has no
// fresh quote for. Fresh entries are left untouched so periodic warming never
// burns upstream calls on data the read path would not refetch either.
func (c *Cache) Warm(ctx context.Context, itemIDs []int) error {
	missing := make([]int, 0, len(itemIDs))

	for _, id := range itemIDs {
		if _, ok := c.lookup(id); !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	quotes, err := c.fetcher.Latest(fetchCtx, missing)
	if err != nil {
		metricUpstreamErrors.Inc()
		return fmt.Errorf("fetcher.Latest: %w", err)
	}

	for id, quote := range quotes {
		c.store.Set(strconv.Itoa(id), quote, gocache.NoExpiration)
	}

	logger(ctx).Debug("price cache warmed", "requested", len(missing), "received", len(quotes))

	return nil
}

// lookup returns the cached quote only while it is fresh.
func (c *Cache) lookup(itemID int) (entity.PriceQuote, bool) {
	v, ok := c.store.Get(strconv.Itoa(itemID))
	if !ok {
		return entity.PriceQuote{}, false
	}

	quote := v.(entity.PriceQuote)
	if time.Since(quote.FetchedAt) >= c.ttl {
		return entity.PriceQuote{}, false
	}

	return quote, true
}

// fetchOne runs inside the singleflight group: exactly one upstream call per
// item id no matter how many callers are waiting.
func (c *Cache) fetchOne(ctx context.Context, itemID int) (entity.PriceQuote, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	quotes, err := c.fetcher.Latest(fetchCtx, []int{itemID})

	quote, found := quotes[itemID]
	if err == nil && !found {
		err = fmt.Errorf("item %d missing from upstream response", itemID)
	}

	if err != nil {
		metricUpstreamErrors.Inc()

		// An expired quote beats no quote: serve it explicitly marked stale.
		if expired, ok := c.expired(itemID); ok {
			metricStaleServed.Inc()
			logger(ctx).Warn("price fetch failed, serving stale quote",
				"item_id", itemID, "age", time.Since(expired.FetchedAt).String(), "error", err)

			expired.Stale = true

			return expired, nil
		}

		return entity.PriceQuote{}, domain.WrapError(err, errcodes.PriceUnavailable,
			fmt.Sprintf("price unavailable for item %d", itemID))
	}

	c.store.Set(strconv.Itoa(itemID), quote, gocache.NoExpiration)

	return quote, nil
}

func (c *Cache) expired(itemID int) (entity.PriceQuote, bool) {
	v, ok := c.store.Get(strconv.Itoa(itemID))
	if !ok {
		return entity.PriceQuote{}, false
	}

	return v.(entity.PriceQuote), true
}
