package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // prometheus collectors are process-wide by design of the registry
var (
	metricCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_cache_hits_total",
		Help: "Price cache hits served without an upstream call.",
	})
	metricCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_cache_misses_total",
		Help: "Price cache misses or expiries that triggered an upstream fetch.",
	})
	metricStaleServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_cache_stale_served_total",
		Help: "Expired quotes served because the upstream fetch failed.",
	})
	metricUpstreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_upstream_errors_total",
		Help: "Failed upstream price fetches.",
	})
	metricCoalesced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_fetch_coalesced_total",
		Help: "Callers that shared another caller's in-flight fetch.",
	})
)
