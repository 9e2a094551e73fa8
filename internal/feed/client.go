package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirenwatch/sirenwatch/internal/weather"
	"github.com/sirupsen/logrus"
)

// ErrFetch marks a network or upstream failure while pulling a feed. The
// pass for that tenant is aborted and retried on the next schedule.
var ErrFetch = errors.New("feed: fetch failed")

const (
	fetchAttempts = 3
	fetchBackoff  = 500 * time.Millisecond
	maxBackoff    = 5 * time.Second
)

// Client pulls the encrypted incident feed and the weather alert feed.
// The two feeds carry their own timeouts over a shared transport.
type Client struct {
	feedHTTP       *http.Client
	weatherHTTP    *http.Client
	feedBaseURL    string
	weatherBaseURL string
	logger         *logrus.Logger
}

func NewClient(feedBaseURL, weatherBaseURL string, feedTimeout, weatherTimeout time.Duration, logger *logrus.Logger) *Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &Client{
		feedHTTP:       &http.Client{Timeout: feedTimeout, Transport: tr},
		weatherHTTP:    &http.Client{Timeout: weatherTimeout, Transport: tr},
		feedBaseURL:    feedBaseURL,
		weatherBaseURL: weatherBaseURL,
		logger:         logger,
	}
}

// FetchEnvelope downloads the encrypted incident envelope for an agency.
func (c *Client) FetchEnvelope(ctx context.Context, agencyID string) (*Envelope, error) {
	u := fmt.Sprintf("%s/incidents?agency_id=%s", strings.TrimRight(c.feedBaseURL, "/"), url.QueryEscape(agencyID))

	c.logger.WithField("agency_id", agencyID).Debug("Fetching incident feed envelope")

	var env Envelope
	if err := c.getJSON(ctx, c.feedHTTP, u, &env); err != nil {
		return nil, fmt.Errorf("%w: incident feed for agency %s: %v", ErrFetch, agencyID, err)
	}
	if env.CT == "" {
		return nil, fmt.Errorf("%w: incident feed for agency %s returned empty envelope", ErrFetch, agencyID)
	}
	return &env, nil
}

// FetchAlerts downloads the current weather alert batch for a set of zones.
// Message order in the response is preserved.
func (c *Client) FetchAlerts(ctx context.Context, zones []string) ([]weather.Message, error) {
	if len(zones) == 0 {
		return nil, nil
	}
	u := fmt.Sprintf("%s/alerts?zone=%s", strings.TrimRight(c.weatherBaseURL, "/"), url.QueryEscape(strings.Join(zones, ",")))

	var resp struct {
		Alerts []weather.Message `json:"alerts"`
	}
	if err := c.getJSON(ctx, c.weatherHTTP, u, &resp); err != nil {
		return nil, fmt.Errorf("%w: weather feed: %v", ErrFetch, err)
	}
	return resp.Alerts, nil
}

func (c *Client) getJSON(ctx context.Context, httpClient *http.Client, u string, out any) error {
	return retry(ctx, fetchAttempts, fetchBackoff, maxBackoff, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(out)
	})
}

// retry runs fn with exponential backoff between attempts.
func retry(ctx context.Context, attempts int, initial, max time.Duration, fn func() error) error {
	if attempts <= 1 {
		return fn()
	}
	d := initial
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return ctx.Err()
			}
			if d < max {
				d *= 2
				if d > max {
					d = max
				}
			}
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}
