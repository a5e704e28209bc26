package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/positiondraft/internal/adapter/http/dto"
	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/infrastructure/metrics"
	"github.com/iho/positiondraft/internal/usecase"
)

// IdempotencyKeyHeader carries the key that lets the server drop duplicate saves.
const IdempotencyKeyHeader = "Idempotency-Key"

// Config configures a Client.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// StatusError is a non-2xx answer of the positions API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("positions api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("positions api returned %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well known statuses to domain errors.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return domain.ErrEntityNotFound
	default:
		return nil
	}
}

func (e *StatusError) retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Client implements usecase.PositionsGateway over the positions HTTP API.
type Client struct {
	baseURL         string
	httpClient      *http.Client
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	idGen           usecase.IDGenerator
	logger          zerolog.Logger
	metrics         *metrics.Metrics
}

// New creates a new Client. idGen supplies idempotency keys.
func New(cfg Config, idGen usecase.IDGenerator, logger zerolog.Logger, m *metrics.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	initial := cfg.InitialInterval
	if initial <= 0 {
		initial = 100 * time.Millisecond
	}
	maxInterval := cfg.MaxInterval
	if maxInterval <= 0 {
		maxInterval = 2 * time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:      &http.Client{Timeout: timeout},
		maxRetries:      maxRetries,
		initialInterval: initial,
		maxInterval:     maxInterval,
		idGen:           idGen,
		logger:          logger,
		metrics:         m,
	}
}

// UpdatePositions posts one save request. Retries reuse the same idempotency key.
func (c *Client) UpdatePositions(ctx context.Context, update domain.PositionUpdate) error {
	body, err := json.Marshal(dto.UpdateRequestFromDomain(update))
	if err != nil {
		return fmt.Errorf("failed to encode update: %w", err)
	}

	var resp dto.UpdatePositionsResponse
	headers := http.Header{IdempotencyKeyHeader: []string{c.idGen.Generate()}}
	return c.do(ctx, "update_positions", http.MethodPost, "/api/v1/positions", body, headers, &resp)
}

// RefreshEntity fetches the current positions of one entity.
func (c *Client) RefreshEntity(ctx context.Context, entityID string) (*domain.EntityPosition, error) {
	var resp dto.PositionResponse
	path := "/api/v1/entities/" + url.PathEscape(entityID) + "/positions"
	if err := c.do(ctx, "refresh_entity", http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain()
}

// FetchEntities lists all entities.
func (c *Client) FetchEntities(ctx context.Context) ([]domain.Entity, error) {
	var resp dto.EntitiesResponse
	if err := c.do(ctx, "fetch_entities", http.MethodGet, "/api/v1/entities", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain(), nil
}

// FetchSnapshot fetches the positions of every entity.
func (c *Client) FetchSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var resp dto.PositionsResponse
	if err := c.do(ctx, "fetch_snapshot", http.MethodGet, "/api/v1/positions", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain()
}

func (c *Client) do(ctx context.Context, op, method, path string, body []byte, headers http.Header, out any) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.MaxInterval = c.maxInterval

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		if attempt > 1 {
			c.countRetry(op)
		}

		err := c.send(ctx, method, path, body, headers, out)
		if err == nil {
			c.countRequest(op, "ok")
			return nil
		}

		var statusErr *StatusError
		var permanent *backoff.PermanentError
		switch {
		case errors.As(err, &permanent):
			c.countRequest(op, "error")
			return err
		case errors.As(err, &statusErr):
			c.countRequest(op, strconv.Itoa(statusErr.StatusCode))
			if !statusErr.retryable() {
				return backoff.Permanent(err)
			}
		case ctx.Err() != nil:
			c.countRequest(op, "canceled")
			return backoff.Permanent(err)
		default:
			c.countRequest(op, "transport_error")
		}

		c.logger.Warn().
			Err(err).
			Str("operation", op).
			Int("attempt", attempt).
			Msg("positions api request failed")
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxRetries)), ctx))
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, headers http.Header, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header[k] = v
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readStatusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := dto.Decode(resp.Body, out); err != nil {
		return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

func readStatusError(resp *http.Response) error {
	statusErr := &StatusError{StatusCode: resp.StatusCode}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var errResp dto.ErrorResponse
	if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
		statusErr.Message = errResp.Error
		if errResp.Message != "" {
			statusErr.Message += ": " + errResp.Message
		}
	} else {
		statusErr.Message = strings.TrimSpace(string(data))
	}
	return statusErr
}

func (c *Client) countRequest(op, status string) {
	if c.metrics != nil {
		c.metrics.APIRequests.WithLabelValues(op, status).Inc()
	}
}

func (c *Client) countRetry(op string) {
	if c.metrics != nil {
		c.metrics.APIRetries.WithLabelValues(op).Inc()
	}
}
