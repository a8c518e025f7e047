package entity

import "time"

// PriceQuote is one Grand Exchange price observation. Immutable once fetched;
// a newer quote replaces the old one in the cache.
type PriceQuote struct {
	ItemID    int       `json:"item_id"`
	High      int64     `json:"high"`
	Low       int64     `json:"low"`
	FetchedAt time.Time `json:"fetched_at"`
	// Stale is set on the served copy when the quote outlived its TTL but the
	// upstream could not produce a fresher one.
	Stale bool `json:"stale,omitempty"`
}

// Unit returns the price used in calculations: the mean of high and low,
// falling back to whichever side the upstream reported.
func (q PriceQuote) Unit() float64 {
	switch {
	case q.High > 0 && q.Low > 0:
		return float64(q.High+q.Low) / 2
	case q.High > 0:
		return float64(q.High)
	default:
		return float64(q.Low)
	}
}
