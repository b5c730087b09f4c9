package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"onboardctl/internal/config"
	"onboardctl/pkg/logging"

	"github.com/hashicorp/go-retryablehttp"
)

const clientSubsystem = "SettingsClient"

// Client talks to the plugin's settings endpoints.
type Client struct {
	http       *retryablehttp.Client
	squareURL  string
	gatewayURL string
	username   string
	password   string
}

// NewClient builds a client for the configured site.
func NewClient(cfg config.OnboardConfig) (*Client, error) {
	if cfg.Site == "" {
		return nil, fmt.Errorf("site is not configured")
	}
	base := strings.TrimRight(cfg.Site, "/") + "/" + strings.Trim(cfg.API.BasePath, "/")

	hc := retryablehttp.NewClient()
	hc.RetryMax = cfg.API.RetryMax
	hc.RetryWaitMin = 250 * time.Millisecond
	hc.RetryWaitMax = 2 * time.Second
	hc.HTTPClient.Timeout = cfg.API.Timeout
	hc.Logger = leveledLogger{}

	return &Client{
		http:       hc,
		squareURL:  base + "/" + strings.Trim(cfg.API.SquareSettingsPath, "/"),
		gatewayURL: base + "/" + strings.Trim(cfg.API.GatewaySettingsPath, "/"),
		username:   cfg.API.Username,
		password:   cfg.API.Password,
	}, nil
}

// FetchSquare reads the Square plugin settings.
func (c *Client) FetchSquare(ctx context.Context) (SquareSettings, error) {
	var s SquareSettings
	if err := c.do(ctx, http.MethodGet, c.squareURL, nil, &s); err != nil {
		return SquareSettings{}, fmt.Errorf("fetching square settings: %w", err)
	}
	return s, nil
}

// FetchGateway reads the payment-gateway settings.
func (c *Client) FetchGateway(ctx context.Context) (GatewaySettings, error) {
	g := GatewaySettings{}
	if err := c.do(ctx, http.MethodGet, c.gatewayURL, nil, &g); err != nil {
		return nil, fmt.Errorf("fetching gateway settings: %w", err)
	}
	return g, nil
}

// SaveSquare writes the Square plugin settings.
func (c *Client) SaveSquare(ctx context.Context, s SquareSettings) error {
	if err := c.do(ctx, http.MethodPost, c.squareURL, s, nil); err != nil {
		return fmt.Errorf("saving square settings: %w", err)
	}
	return nil
}

// SaveGateway writes the payment-gateway settings.
func (c *Client) SaveGateway(ctx context.Context, g GatewaySettings) error {
	if err := c.do(ctx, http.MethodPost, c.gatewayURL, g, nil); err != nil {
		return fmt.Errorf("saving gateway settings: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, url string, in, out any) error {
	var body any
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = data
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, url, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// leveledLogger routes retryablehttp's logging into pkg/logging.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, kv ...interface{}) {
	logging.Error(clientSubsystem, nil, "%s %v", msg, kv)
}

func (leveledLogger) Info(msg string, kv ...interface{}) {
	logging.Debug(clientSubsystem, "%s %v", msg, kv)
}

func (leveledLogger) Debug(msg string, kv ...interface{}) {
	logging.Debug(clientSubsystem, "%s %v", msg, kv)
}

func (leveledLogger) Warn(msg string, kv ...interface{}) {
	logging.Warn(clientSubsystem, "%s %v", msg, kv)
}
