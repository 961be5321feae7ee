package villaapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"villadash/dto"
	"villadash/errors"
	"villadash/services/logger"
)

const (
	loginPath   = "/auth/login/"
	refreshPath = "/auth/refresh/"
	maxPages    = 50
)

// TokenStore holds the token pair of one dashboard session.
type TokenStore interface {
	AccessToken() string
	RefreshToken() string
	SetTokens(access, refresh string)
	Clear()
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenStore
	Refresher  *Refresher
	Logger     logger.Logger
}

// Client calls the villa API on behalf of one session. A 401 triggers at
// most one token refresh and one replay of the request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	refresher  *Refresher
	logger     logger.Logger
}

func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = &MemoryTokens{}
	}
	refresher := opts.Refresher
	if refresher == nil {
		refresher = NewRefresher(RefresherOptions{BaseURL: opts.BaseURL, HTTPClient: httpClient, Logger: log})
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		refresher:  refresher,
		logger:     log,
	}
}

// Tokens exposes the session's token store.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

// Do sends a JSON request to path and decodes the reply into out when out is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	return c.doURL(ctx, method, c.url(path, query), path, in, out)
}

func (c *Client) url(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) doURL(ctx context.Context, method, fullURL, path string, in, out interface{}) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
	}

	sentToken := c.tokens.AccessToken()
	status, data, err := c.send(ctx, method, fullURL, payload, sentToken)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && path != refreshPath && path != loginPath {
		access, err := c.renew(ctx, sentToken)
		if err != nil {
			return err
		}
		status, data, err = c.send(ctx, method, fullURL, payload, access)
		if err != nil {
			return err
		}
	}

	if status >= http.StatusBadRequest {
		return toAppError(status, data)
	}

	if out == nil || status == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.NewAppError(errors.ErrCodeAPI, "Unexpected response from the villa service", fmt.Errorf("decode %s %s: %w", method, path, err))
	}
	return nil
}

// renew returns an access token to replay with. When another request of the
// same session already rotated the pair, that token is reused.
func (c *Client) renew(ctx context.Context, sentToken string) (string, error) {
	if current := c.tokens.AccessToken(); current != "" && current != sentToken {
		return current, nil
	}

	refresh := c.tokens.RefreshToken()
	if refresh == "" {
		c.tokens.Clear()
		return "", errors.ErrSessionExpired
	}

	res, err := c.refresher.Refresh(ctx, refresh)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeSessionExpired) {
			c.tokens.Clear()
		}
		return "", err
	}

	c.tokens.SetTokens(res.Access, res.Refresh)
	return res.Access, nil
}

func (c *Client) send(ctx context.Context, method, fullURL string, payload []byte, token string) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("%s %s failed: %v", method, fullURL, err)
		return 0, nil, errors.NewAppError(errors.ErrCodeNetwork, "Unable to reach the villa service", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.NewAppError(errors.ErrCodeNetwork, "Connection to the villa service was interrupted", err)
	}
	c.logger.Debug("%s %s -> %d (%s)", method, fullURL, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	return resp.StatusCode, data, nil
}

func toAppError(status int, data []byte) error {
	apiErr := errors.NewAPIError(status, data)
	switch status {
	case http.StatusUnauthorized:
		return errors.NewAppError(errors.ErrCodeUnauthorized, apiErr.Message, apiErr)
	case http.StatusNotFound:
		return errors.NewAppError(errors.ErrCodeNotFound, apiErr.Message, apiErr)
	default:
		return errors.NewAppError(errors.ErrCodeAPI, apiErr.Message, apiErr)
	}
}

// getAll fetches a list endpoint, following "next" links when the API paginates.
func getAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var all []T
	next := c.url(path, query)
	for page := 0; next != "" && page < maxPages; page++ {
		var raw json.RawMessage
		if err := c.doURL(ctx, http.MethodGet, next, path, nil, &raw); err != nil {
			return nil, err
		}
		items, nextURL, err := decodeList[T](raw)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeAPI, "Unexpected list response from the villa service", err)
		}
		all = append(all, items...)
		if nextURL == "" {
			break
		}
		if next, err = c.resolveNext(nextURL); err != nil {
			return nil, err
		}
	}
	if all == nil {
		all = []T{}
	}
	return all, nil
}

// resolveNext resolves a "next" link against the base URL. Links to another
// scheme or host are refused so the bearer token never leaves the API.
func (c *Client) resolveNext(link string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	u, err := base.Parse(link)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeAPI, "Unexpected list response from the villa service", err)
	}
	if u.Scheme != base.Scheme || u.Host != base.Host {
		c.logger.Error("refusing pagination link to %s://%s", u.Scheme, u.Host)
		return "", errors.NewAppError(errors.ErrCodeAPI, "Unexpected list response from the villa service",
			fmt.Errorf("next link %q is outside %s", link, c.baseURL))
	}
	return u.String(), nil
}

// decodeList accepts a bare array or a {count, next, results} page.
func decodeList[T any](raw []byte) ([]T, string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, "", nil
	}
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, "", err
		}
		return items, "", nil
	}
	var page dto.Page[T]
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, "", err
	}
	next := ""
	if page.Next != nil {
		next = *page.Next
	}
	return page.Results, next, nil
}
