package config

import "time"

// Prices configures the upstream price API client and the quote cache.
//
// UserAgent is mandatory: the upstream operators require a descriptive
// User-Agent with contact details on every request, and the client refuses
// to start without one.
//
// The upstream refreshes roughly once a minute, so polling faster than 60s
// only returns the same data. CacheTTL below MinCacheTTL is rejected unless
// AllowFastPoll is set explicitly.
type Prices struct {
	BaseURL       string        `env:"PRICES_BASE_URL" envDefault:"https://prices.runescape.wiki/api/v1/osrs"`
	UserAgent     string        `env:"PRICES_USER_AGENT,notEmpty"`
	CacheTTL      time.Duration `env:"PRICES_CACHE_TTL" envDefault:"2m"`
	FetchTimeout  time.Duration `env:"PRICES_FETCH_TIMEOUT" envDefault:"5s"`
	AllowFastPoll bool          `env:"PRICES_ALLOW_FAST_POLL" envDefault:"false"`
}

const MinCacheTTL = time.Minute

// EffectiveTTL clamps the configured TTL to the upstream refresh cadence
// unless the operator opted into fast polling.
func (p Prices) EffectiveTTL() time.Duration {
	if p.CacheTTL < MinCacheTTL && !p.AllowFastPoll {
		return MinCacheTTL
	}
	return p.CacheTTL
}
