package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeedClient(feedURL, weatherURL string) *Client {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewClient(feedURL, weatherURL, 2*time.Second, time.Second, logger)
}

func TestNewClient_PerFeedTimeouts(t *testing.T) {
	c := newTestFeedClient("http://feed.local", "http://weather.local")

	assert.Equal(t, 2*time.Second, c.feedHTTP.Timeout)
	assert.Equal(t, time.Second, c.weatherHTTP.Timeout)
}

func TestFetchEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "agency-1", r.URL.Query().Get("agency_id"))
		json.NewEncoder(w).Encode(Envelope{CT: "Y2lwaGVydGV4dA==", IV: "00", Salt: "00"})
	}))
	defer srv.Close()

	c := newTestFeedClient(srv.URL, srv.URL)

	env, err := c.FetchEnvelope(context.Background(), "agency-1")
	require.NoError(t, err)
	assert.Equal(t, "Y2lwaGVydGV4dA==", env.CT)
}

func TestFetchEnvelope_EmptyEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(Envelope{})
	}))
	defer srv.Close()

	c := newTestFeedClient(srv.URL, srv.URL)

	_, err := c.FetchEnvelope(context.Background(), "agency-1")
	require.ErrorIs(t, err, ErrFetch)
}

func TestFetchAlerts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Z1,Z2", r.URL.Query().Get("zone"))
		json.NewEncoder(w).Encode(map[string]any{
			"alerts": []map[string]any{
				{"id": "X1", "messageType": "Alert", "event": "Tornado Warning"},
			},
		})
	}))
	defer srv.Close()

	c := newTestFeedClient(srv.URL, srv.URL)

	msgs, err := c.FetchAlerts(context.Background(), []string{"Z1", "Z2"})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "X1", msgs[0].ID)
	assert.Equal(t, "Tornado Warning", msgs[0].Event)
}

func TestFetchAlerts_NoZones(t *testing.T) {
	c := newTestFeedClient("http://feed.local", "http://weather.local")

	msgs, err := c.FetchAlerts(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, msgs)
}
