package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Client talks to the Graph-style social platform API: OAuth token
// exchanges plus page post publish/update. Token refresh scheduling is the
// administrative code's responsibility; this client only performs the
// exchanges it is asked for.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appID      string
	appSecret  string
	logger     *logrus.Logger
}

func NewClient(baseURL, appID, appSecret string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		appID:      appID,
		appSecret:  appSecret,
		logger:     logger,
	}
}

// Token is an OAuth access token with its lifetime.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// ExchangeCode trades an OAuth authorization code for a short-lived token.
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (*Token, error) {
	q := url.Values{
		"client_id":     {c.appID},
		"client_secret": {c.appSecret},
		"redirect_uri":  {redirectURI},
		"code":          {code},
	}
	var tok Token
	if err := c.get(ctx, "/oauth/access_token", q, &tok); err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return &tok, nil
}

// LongLivedToken upgrades a short-lived user token to a long-lived one.
func (c *Client) LongLivedToken(ctx context.Context, shortToken string) (*Token, error) {
	q := url.Values{
		"grant_type":        {"fb_exchange_token"},
		"client_id":         {c.appID},
		"client_secret":     {c.appSecret},
		"fb_exchange_token": {shortToken},
	}
	var tok Token
	if err := c.get(ctx, "/oauth/access_token", q, &tok); err != nil {
		return nil, fmt.Errorf("failed to upgrade to long-lived token: %w", err)
	}
	return &tok, nil
}

// PageToken retrieves the page access token for a page the user manages.
func (c *Client) PageToken(ctx context.Context, userToken, pageID string) (string, error) {
	q := url.Values{
		"fields":       {"access_token"},
		"access_token": {userToken},
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.get(ctx, "/"+url.PathEscape(pageID), q, &resp); err != nil {
		return "", fmt.Errorf("failed to retrieve page token: %w", err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("page %s returned no access token", pageID)
	}
	return resp.AccessToken, nil
}

// CreatePost publishes a new post on the page feed and returns its id.
func (c *Client) CreatePost(ctx context.Context, pageID, pageToken, message string) (string, error) {
	c.logger.WithField("page_id", pageID).Debug("Publishing page post")

	form := url.Values{
		"message":      {message},
		"access_token": {pageToken},
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.postForm(ctx, "/"+url.PathEscape(pageID)+"/feed", form, &resp); err != nil {
		return "", fmt.Errorf("failed to create post: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("platform returned no post id")
	}
	return resp.ID, nil
}

// UpdatePost edits an existing post in place.
func (c *Client) UpdatePost(ctx context.Context, postID, pageToken, message string) error {
	form := url.Values{
		"message":      {message},
		"access_token": {pageToken},
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.postForm(ctx, "/"+url.PathEscape(postID), form, &resp); err != nil {
		return fmt.Errorf("failed to update post %s: %w", postID, err)
	}
	if !resp.Success {
		return fmt.Errorf("platform rejected update of post %s", postID)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("platform error %d (%s): %s", apiErr.Error.Code, apiErr.Error.Type, apiErr.Error.Message)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
