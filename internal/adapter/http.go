package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-sif-keeper/internal/config"
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/utils"
	"github.com/MKhiriev/go-sif-keeper/models"
)

const (
	companionFetchPath = "/api/companion/fetch"
	versionPath        = "/api/version"
)

type httpCompanionAdapter struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	logger *logger.Logger
}

// NewHTTPCompanionAdapter constructs an HTTP/REST implementation of
// [CompanionAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout, limits outbound requests to
// adapterCfg.RateLimit per second and signs request bodies with
// appCfg.HashKey.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCompanionAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (CompanionAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	limit := rate.Limit(adapterCfg.RateLimit)
	if adapterCfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := adapterCfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &httpCompanionAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, utils.NewHasher(appCfg.HashKey)),
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Fetch implements [CompanionAdapter]. It POSTs the item identity to
// POST /api/companion/fetch with a HashSHA256 signature of the body and
// decodes the returned [models.FetchGrant].
func (h *httpCompanionAdapter) Fetch(ctx context.Context, id models.ItemID) (models.FetchGrant, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return models.FetchGrant{}, ctx.Err()
		}
		return models.FetchGrant{}, fmt.Errorf("%w: rate limited: %v", ErrTimeout, err)
	}

	body, err := json.Marshal(id)
	if err != nil {
		return models.FetchGrant{}, fmt.Errorf("%w: encode fetch request: %v", ErrTransport, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(companionFetchPath)
	if err != nil {
		return models.FetchGrant{}, classifyRequestError(ctx, "fetch request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "*httpCompanionAdapter.Fetch").Str("item", id.String()).
			Int("status", resp.StatusCode()).Msg("companion refused fetch")
		return models.FetchGrant{}, err
	}

	var grant models.FetchGrant
	if err = json.Unmarshal(resp.Body(), &grant); err != nil {
		return models.FetchGrant{}, fmt.Errorf("%w: decode fetch grant: %v", ErrTransport, err)
	}
	return grant, nil
}

// Version implements [CompanionAdapter]. It GETs /api/version.
func (h *httpCompanionAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", classifyRequestError(ctx, "version request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}

func classifyRequestError(ctx context.Context, op string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return ctx.Err()
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %s: %v", ErrTimeout, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrTransport, op, err)
	}
}
