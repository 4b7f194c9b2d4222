package yahoo

import (
	"github.com/wonny/fairvalue/pkg/config"
	"github.com/wonny/fairvalue/pkg/httputil"
	"github.com/wonny/fairvalue/pkg/logger"
)

// Client fetches market data from Yahoo Finance
// ⭐ SSOT: Yahoo Finance 호출은 이 패키지에서만
type Client struct {
	httpClient *httputil.Client
	cfg        config.YahooConfig
	logger     *logger.Logger
}

// NewClient creates a new Yahoo Finance client. Requests share one
// client-side rate limiter so sequential ticker fetches stay polite.
func NewClient(cfg config.YahooConfig, log *logger.Logger) *Client {
	httpClient := httputil.New(log, cfg.RequestTimeout).
		WithRateLimit(cfg.RequestsPerSec)

	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		logger:     log,
	}
}

// browserHeaders returns headers Yahoo expects from a browser-like client
func browserHeaders() map[string]string {
	return map[string]string{
		"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
		"Accept":     "application/json, text/html;q=0.9,*/*;q=0.8",
	}
}
