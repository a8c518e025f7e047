package pricing_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gp_tracker/internal/domain"
	"gp_tracker/internal/domain/entity"
	"gp_tracker/internal/infrastructure/pricing"
	"gp_tracker/pkg/errcodes"
)

type fakeFetcher struct {
	mu     sync.Mutex
	calls  atomic.Int64
	quotes map[int]entity.PriceQuote
	err    error
	delay  time.Duration
}

func (f *fakeFetcher) Latest(_ context.Context, itemIDs []int) (map[int]entity.PriceQuote, error) {
	f.calls.Add(1)

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	out := make(map[int]entity.PriceQuote, len(itemIDs))
	for _, id := range itemIDs {
		if q, ok := f.quotes[id]; ok {
			q.FetchedAt = time.Now()
			out[id] = q
		}
	}
	return out, nil
}

func (f *fakeFetcher) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func TestPriceFetchesOnceWhileFresh(t *testing.T) {
	rq := require.New(t)

	fetcher := &fakeFetcher{quotes: map[int]entity.PriceQuote{
		219: {ItemID: 219, High: 6500, Low: 6296},
	}}
	cache := pricing.NewCache(fetcher, time.Minute, time.Second)

	for range 5 {
		quote, err := cache.Price(context.Background(), 219)
		rq.NoError(err)
		rq.InDelta(6398.0, quote.Unit(), 1e-9)
		rq.False(quote.Stale)
	}

	rq.EqualValues(1, fetcher.calls.Load())
}

func TestPriceCoalescesConcurrentCallers(t *testing.T) {
	rq := require.New(t)

	fetcher := &fakeFetcher{
		quotes: map[int]entity.PriceQuote{219: {ItemID: 219, High: 6500, Low: 6296}},
		delay:  50 * time.Millisecond,
	}
	cache := pricing.NewCache(fetcher, time.Minute, time.Second)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			quote, err := cache.Price(context.Background(), 219)
			rq.NoError(err)
			rq.Equal(219, quote.ItemID)
		}()
	}
	wg.Wait()

	// 20 concurrent callers share a single upstream fetch
	rq.EqualValues(1, fetcher.calls.Load())
}

func TestPriceRefetchesAfterTTL(t *testing.T) {
	rq := require.New(t)

	fetcher := &fakeFetcher{quotes: map[int]entity.PriceQuote{
		219: {ItemID: 219, High: 6500, Low: 6296},
	}}
	cache := pricing.NewCache(fetcher, 10*time.Millisecond, time.Second)

	_, err := cache.Price(context.Background(), 219)
	rq.NoError(err)

	time.Sleep(20 * time.Millisecond)

	_, err = cache.Price(context.Background(), 219)
	rq.NoError(err)

	rq.EqualValues(2, fetcher.calls.Load())
}

func TestPriceServesStaleOnUpstreamFailure(t *testing.T) {
	rq := require.New(t)

	fetcher := &fakeFetcher{quotes: map[int]entity.PriceQuote{
		219: {ItemID: 219, High: 6500, Low: 6296},
	}}
	cache := pricing.NewCache(fetcher, 10*time.Millisecond, time.Second)

	fresh, err := cache.Price(context.Background(), 219)
	rq.NoError(err)
	rq.False(fresh.Stale)

	time.Sleep(20 * time.Millisecond)
	fetcher.setErr(errors.New("upstream down"))

	stale, err := cache.Price(context.Background(), 219)
	rq.NoError(err)
	rq.True(stale.Stale)
	rq.InDelta(fresh.Unit(), stale.Unit(), 1e-9)
}

func TestPriceUnavailableWithoutFallback(t *testing.T) {
	rq := require.New(t)

	fetcher := &fakeFetcher{err: errors.New("upstream down")}
	cache := pricing.NewCache(fetcher, time.Minute, time.Second)

	_, err := cache.Price(context.Background(), 219)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.PriceUnavailable, code)
}

func TestWarmFetchesOnlyMissing(t *testing.T) {
	rq := require.New(t)

	fetcher := &fakeFetcher{quotes: map[int]entity.PriceQuote{
		219:  {ItemID: 219, High: 6500, Low: 6296},
		5309: {ItemID: 5309, High: 5, Low: 3},
	}}
	cache := pricing.NewCache(fetcher, time.Minute, time.Second)

	rq.NoError(cache.Warm(context.Background(), []int{219, 5309}))
	rq.EqualValues(1, fetcher.calls.Load())

	// everything fresh: no upstream call at all
	rq.NoError(cache.Warm(context.Background(), []int{219, 5309}))
	rq.EqualValues(1, fetcher.calls.Load())

	quote, err := cache.Price(context.Background(), 5309)
	rq.NoError(err)
	rq.InDelta(4.0, quote.Unit(), 1e-9)
	rq.EqualValues(1, fetcher.calls.Load())
}
