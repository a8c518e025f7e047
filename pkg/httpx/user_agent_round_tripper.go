package httpx

import (
	"fmt"
	"net/http"
)

// UserAgentRoundTripper stamps every outgoing request with the operator
// identification the upstream requires. Construct it through
// NewUserAgentRoundTripper so an empty value cannot slip through.
type UserAgentRoundTripper struct {
	next      http.RoundTripper
	userAgent string
}

func NewUserAgentRoundTripper(
	next http.RoundTripper,
	userAgent string,
) (UserAgentRoundTripper, error) {
	if userAgent == "" {
		return UserAgentRoundTripper{}, fmt.Errorf("user agent must not be empty")
	}

	if next == nil {
		next = http.DefaultTransport
	}

	return UserAgentRoundTripper{
		next:      next,
		userAgent: userAgent,
	}, nil
}

func (rt UserAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", rt.userAgent)

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
