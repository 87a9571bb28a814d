package fm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"studiohub/internal/domain"
	"studiohub/internal/ports"
)

const defaultFindLimit = 100

// Client executes authenticated read operations against the Data API.
// On an auth-expiry signature it invalidates the session, re-acquires,
// and retries the request exactly once; a second failure propagates.
type Client struct {
	base    string
	httpc   *http.Client
	session ports.SessionManager
	logger  *zap.Logger
	timeout time.Duration
}

var _ ports.RecordSource = (*Client)(nil)

type ClientOption func(*Client)

func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *Client) { c.httpc = httpc }
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

func WithRequestTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { c.timeout = timeout }
}

func NewClient(creds Credentials, session ports.SessionManager, opts ...ClientOption) *Client {
	c := &Client{
		base:    creds.BaseURL(),
		session: session,
		logger:  zap.NewNop(),
		timeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpc == nil {
		c.httpc = NewHTTPClient(creds)
	}
	return c
}

// Find runs a disjunctive query. A no-records response is an empty
// slice, not an error.
func (c *Client) Find(ctx context.Context, layout string, query domain.Query, limit int) ([]domain.RawRecord, error) {
	if limit <= 0 {
		limit = defaultFindLimit
	}

	body, err := json.Marshal(findRequest{Query: query, Limit: strconv.Itoa(limit)})
	if err != nil {
		return nil, fmt.Errorf("encode find request: %w", err)
	}

	env, err := c.do(ctx, http.MethodPost, "/layouts/"+url.PathEscape(layout)+"/_find", nil, body)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.noRecords() {
			return []domain.RawRecord{}, nil
		}
		return nil, fmt.Errorf("find %s: %w", layout, err)
	}

	return env.records(), nil
}

// GetAll pages a layout with the store's 1-based offset.
func (c *Client) GetAll(ctx context.Context, layout string, limit, offset int) ([]domain.RawRecord, error) {
	if limit <= 0 {
		limit = defaultFindLimit
	}
	if offset <= 0 {
		offset = 1
	}

	params := url.Values{}
	params.Set("_limit", strconv.Itoa(limit))
	params.Set("_offset", strconv.Itoa(offset))

	env, err := c.do(ctx, http.MethodGet, "/layouts/"+url.PathEscape(layout)+"/records", params, nil)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.noRecords() {
			return []domain.RawRecord{}, nil
		}
		return nil, fmt.Errorf("get records %s: %w", layout, err)
	}

	return env.records(), nil
}

// GetByID fetches a single record, failing with domain.ErrNotFound when
// the store has no such record.
func (c *Client) GetByID(ctx context.Context, layout, id string) (domain.RawRecord, error) {
	env, err := c.do(ctx, http.MethodGet, "/layouts/"+url.PathEscape(layout)+"/records/"+url.PathEscape(id), nil, nil)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.recordMissing() {
			return domain.RawRecord{}, fmt.Errorf("record %s/%s: %w", layout, id, domain.ErrNotFound)
		}
		return domain.RawRecord{}, fmt.Errorf("get record %s/%s: %w", layout, id, err)
	}

	records := env.records()
	if len(records) == 0 {
		return domain.RawRecord{}, fmt.Errorf("record %s/%s: %w", layout, id, domain.ErrNotFound)
	}
	return records[0], nil
}

// LayoutMetadata describes a layout's fields.
func (c *Client) LayoutMetadata(ctx context.Context, layout string) (domain.LayoutMetadata, error) {
	env, err := c.do(ctx, http.MethodGet, "/layouts/"+url.PathEscape(layout), nil, nil)
	if err != nil {
		return domain.LayoutMetadata{}, fmt.Errorf("layout metadata %s: %w", layout, err)
	}
	return env.layoutMetadata(), nil
}

// do executes one authenticated request with the single auth retry.
// Timeouts and other transport failures surface immediately; only the
// auth-expiry signature earns the retry.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body []byte) (*envelope, error) {
	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	env, err := c.doOnce(ctx, method, path, params, body)
	if err == nil {
		return env, nil
	}

	var apiErr *apiError
	if !errors.As(err, &apiErr) || !apiErr.authExpired() {
		return nil, err
	}

	c.logger.Debug("session rejected, retrying once", zap.String("path", path))
	c.session.Invalidate()

	env, retryErr := c.doOnce(ctx, method, path, params, body)
	if retryErr == nil {
		return env, nil
	}
	var retryAPIErr *apiError
	if errors.As(retryErr, &retryAPIErr) && retryAPIErr.authExpired() {
		// The store rejected a freshly minted token twice; no third
		// attempt is made.
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionExpired, retryErr)
	}
	return nil, fmt.Errorf("retry after re-authentication: %w", retryErr)
}

func (c *Client) doOnce(ctx context.Context, method, path string, params url.Values, body []byte) (*envelope, error) {
	token, err := c.session.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := c.base + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeEnvelope(resp)
}

// requestContext bounds total call latency when the caller supplied no
// deadline of its own.
func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}
