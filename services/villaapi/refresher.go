package villaapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"

	"villadash/dto"
	"villadash/errors"
	"villadash/services/logger"
)

const defaultRotationTTL = 30 * time.Second

// RefresherOptions configures a Refresher.
type RefresherOptions struct {
	BaseURL     string
	HTTPClient  *http.Client
	Logger      logger.Logger
	RotationTTL time.Duration
}

// Refresher exchanges refresh tokens for new access tokens. It is shared by
// every Client in the process: concurrent refreshes of the same token share
// one call, and a rotation stays reusable for RotationTTL so requests that
// saw a 401 just after it completed do not refresh again.
type Refresher struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
	ttl        time.Duration

	group singleflight.Group

	mu     sync.Mutex
	recent map[string]rotation
}

type rotation struct {
	res dto.RefreshResponse
	at  time.Time
}

func NewRefresher(opts RefresherOptions) *Refresher {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	ttl := opts.RotationTTL
	if ttl <= 0 {
		ttl = defaultRotationTTL
	}
	return &Refresher{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: httpClient,
		logger:     log,
		ttl:        ttl,
		recent:     make(map[string]rotation),
	}
}

// Refresh returns the new token pair for refreshToken. A 401 from the API
// yields SESSION_EXPIRED; any other failure leaves the session usable.
func (r *Refresher) Refresh(ctx context.Context, refreshToken string) (dto.RefreshResponse, error) {
	if refreshToken == "" {
		return dto.RefreshResponse{}, errors.ErrSessionExpired
	}
	if res, ok := r.lookup(refreshToken); ok {
		return res, nil
	}

	v, err, shared := r.group.Do(refreshToken, func() (interface{}, error) {
		res, err := r.call(context.WithoutCancel(ctx), refreshToken)
		if err != nil {
			return nil, err
		}
		r.remember(refreshToken, res)
		return res, nil
	})
	if err != nil {
		return dto.RefreshResponse{}, err
	}
	if shared {
		r.logger.Debug("token refresh shared with a concurrent request")
	}
	return v.(dto.RefreshResponse), nil
}

func (r *Refresher) call(ctx context.Context, refreshToken string) (dto.RefreshResponse, error) {
	payload, err := json.Marshal(dto.RefreshRequest{Refresh: refreshToken})
	if err != nil {
		return dto.RefreshResponse{}, fmt.Errorf("encode refresh request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		return dto.RefreshResponse{}, fmt.Errorf("build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Error("token refresh failed: %v", err)
		return dto.RefreshResponse{}, errors.NewAppError(errors.ErrCodeNetwork, "Unable to refresh the session, please retry", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return dto.RefreshResponse{}, errors.NewAppError(errors.ErrCodeNetwork, "Unable to refresh the session, please retry", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		r.logger.Info("refresh token rejected, session expired")
		return dto.RefreshResponse{}, errors.NewAppError(errors.ErrCodeSessionExpired, "Session expired, please log in again", errors.NewAPIError(resp.StatusCode, data))
	case resp.StatusCode >= http.StatusBadRequest:
		apiErr := errors.NewAPIError(resp.StatusCode, data)
		r.logger.Error("token refresh returned %d: %s", resp.StatusCode, apiErr.Message)
		return dto.RefreshResponse{}, errors.NewAppError(errors.ErrCodeAPI, apiErr.Message, apiErr)
	}

	var res dto.RefreshResponse
	if err := json.Unmarshal(data, &res); err != nil || res.Access == "" {
		return dto.RefreshResponse{}, errors.NewAppError(errors.ErrCodeAPI, "Unexpected refresh response", err)
	}
	if res.Refresh == "" {
		res.Refresh = refreshToken
	}
	r.logger.Info("access token refreshed")
	return res, nil
}

func (r *Refresher) lookup(refreshToken string) (dto.RefreshResponse, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rot, ok := r.recent[refreshToken]
	if !ok {
		return dto.RefreshResponse{}, false
	}
	if time.Since(rot.at) > r.ttl {
		delete(r.recent, refreshToken)
		return dto.RefreshResponse{}, false
	}
	return rot.res, true
}

func (r *Refresher) remember(refreshToken string, res dto.RefreshResponse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for k, rot := range r.recent {
		if now.Sub(rot.at) > r.ttl {
			delete(r.recent, k)
		}
	}
	r.recent[refreshToken] = rotation{res: res, at: now}
}
