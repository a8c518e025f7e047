package pricing

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"gp_tracker/internal/domain/entity"
	"gp_tracker/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Client talks to the live price service (`GET {base}/latest?id=...`). The
// upstream rejects anonymous callers, so the operator User-Agent is a
// constructor requirement, not an option.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*clientOptions)

type clientOptions struct {
	timeout   time.Duration
	transport http.RoundTripper
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

func WithTransport(transport http.RoundTripper) ClientOption {
	return func(o *clientOptions) {
		o.transport = transport
	}
}

func NewClient(baseURL, userAgent string, opts ...ClientOption) (*Client, error) {
	options := clientOptions{
		timeout: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(&options)
	}

	rt, err := httpx.NewUserAgentRoundTripper(options.transport, userAgent)
	if err != nil {
		return nil, fmt.Errorf("httpx.NewUserAgentRoundTripper: %w", err)
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: rt,
			Timeout:   options.timeout,
		},
	}, nil
}

// latestResponse mirrors the upstream payload: a mapping keyed by item id.
// Either side of a quote may be null when the item has not traded recently.
type latestResponse struct {
	Data map[string]struct {
		High *int64 `json:"high"`
		Low  *int64 `json:"low"`
	} `json:"data"`
}

// Latest fetches quotes for the given item ids in one request.
func (c *Client) Latest(ctx context.Context, itemIDs []int) (map[int]entity.PriceQuote, error) {
	if len(itemIDs) == 0 {
		return map[int]entity.PriceQuote{}, nil
	}

	ids := make([]string, len(itemIDs))
	for i, id := range itemIDs {
		ids[i] = strconv.Itoa(id)
	}

	url := fmt.Sprintf("%s/latest?id=%s", c.baseURL, strings.Join(ids, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price service returned status %d", resp.StatusCode)
	}

	var payload latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	now := time.Now()
	quotes := make(map[int]entity.PriceQuote, len(payload.Data))

	for _, id := range itemIDs {
		data, ok := payload.Data[strconv.Itoa(id)]
		if !ok {
			continue
		}

		quote := entity.PriceQuote{ItemID: id, FetchedAt: now}
		if data.High != nil {
			quote.High = *data.High
		}
		if data.Low != nil {
			quote.Low = *data.Low
		}

		// Both sides null means the item has never traded; skip it so the
		// cache treats it as unavailable rather than free.
		if quote.High == 0 && quote.Low == 0 {
			continue
		}

		quotes[id] = quote
	}

	return quotes, nil
}
