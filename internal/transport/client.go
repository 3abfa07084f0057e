package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/spec-kit/erp-admin-client/internal/domain"
	"github.com/spec-kit/erp-admin-client/internal/observability"
	"github.com/spec-kit/erp-admin-client/internal/tokenstore"
	"github.com/spec-kit/erp-admin-client/pkg/util"
)

const refreshPath = "/auth/refresh/"

var errNoRefreshToken = errors.New("no refresh token available")

// Client is the authenticated HTTP core. Every outgoing request gets a
// bearer header when an access token is stored; a 401 triggers one
// shared refresh followed by a single retry of the failed request.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	store         tokenstore.Store
	logger        *zap.Logger
	metrics       *observability.Metrics
	refreshGroup  singleflight.Group
	onAuthExpired func()
}

// Options tunes client construction.
type Options struct {
	// Timeout is the per-request ceiling; a request exceeding it is
	// reported as a network failure. Zero means no ceiling.
	Timeout time.Duration
	// OnAuthExpired runs once per failed refresh, after the token
	// store has been cleared. The CLI uses it to steer the operator
	// back to login.
	OnAuthExpired func()
	Metrics       *observability.Metrics
}

// NewClient creates a client with connection pooling against the given
// API base URL.
func NewClient(baseURL string, store tokenstore.Store, logger *zap.Logger, opts Options) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		store:         store,
		logger:        logger,
		metrics:       opts.Metrics,
		onAuthExpired: opts.OnAuthExpired,
	}
}

// BaseURL returns the configured API base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes one request against the API. Non-2xx responses are
// consumed and returned as classified errors; 2xx responses are handed
// to the caller, who owns the body.
func (c *Client) Do(ctx context.Context, method, path string, body []byte, contentType string) (*http.Response, error) {
	resp, err := c.send(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		firstBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		resp.Body.Close()

		if refreshErr := c.refreshTokens(ctx); refreshErr != nil {
			if errors.Is(refreshErr, errNoRefreshToken) {
				// Nothing to refresh with: the original 401 stands.
				return nil, util.FromResponse(http.StatusUnauthorized, firstBody)
			}
			return nil, refreshErr
		}

		if c.metrics != nil {
			c.metrics.RecordRetry()
		}
		c.logger.Debug("retrying request with refreshed token",
			zap.String("method", method), zap.String("path", path))

		// Exactly one retry. A second 401 falls through to normal
		// classification below and never refreshes again.
		resp, err = c.send(ctx, method, path, body, contentType)
		if err != nil {
			return nil, err
		}
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, util.FromResponse(resp.StatusCode, respBody)
	}

	return resp, nil
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, contentType string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// An absent token sends the request unauthenticated.
	if pair, ok, err := c.store.Read(ctx); err == nil && ok {
		req.Header.Set("Authorization", "Bearer "+pair.Access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordNetworkFailure()
		}
		c.logger.Warn("network unreachable",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, util.NewNetworkError(err)
	}

	if c.metrics != nil {
		c.metrics.RecordRequest(method, path, resp.StatusCode)
	}
	return resp, nil
}

// refreshTokens exchanges the stored refresh token for a new access
// token. Concurrent 401 handlers share one in-flight refresh; each
// originating request causes at most one refresh call. A failed
// refresh clears the store and fires the auth-expired hook once.
func (c *Client) refreshTokens(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		pair, _, err := c.store.Read(ctx)
		if err != nil {
			return nil, err
		}
		if pair.Refresh == "" {
			return nil, errNoRefreshToken
		}

		if c.metrics != nil {
			c.metrics.RecordRefresh()
		}

		access, err := c.callRefresh(ctx, pair.Refresh)
		if err != nil {
			c.logger.Warn("token refresh failed", zap.Error(err))
			if clearErr := c.store.Clear(ctx); clearErr != nil {
				c.logger.Error("failed to clear token store", zap.Error(clearErr))
			}
			if c.onAuthExpired != nil {
				c.onAuthExpired()
			}
			return nil, err
		}

		if err := c.store.Save(ctx, domain.TokenPair{Access: access, Refresh: pair.Refresh}); err != nil {
			return nil, fmt.Errorf("persist refreshed token: %w", err)
		}
		c.logger.Debug("access token refreshed")
		return nil, nil
	})
	return err
}

// callRefresh performs the raw refresh exchange. It deliberately skips
// the bearer header: the stale access token must not ride along.
func (c *Client) callRefresh(ctx context.Context, refreshToken string) (string, error) {
	payload, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", util.NewNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		return "", util.FromResponse(resp.StatusCode, respBody)
	}

	var result struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", util.NewDecodeError("refresh response", err)
	}
	if result.Access == "" {
		return "", util.NewDecodeError("refresh response missing access token", nil)
	}
	return result.Access, nil
}
