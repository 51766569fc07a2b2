package appconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/saasfoundry/controlplane/pkg/flagrules"
)

// versionHeader carries the snapshot version published with each
// configuration deployment.
const versionHeader = "Configuration-Version"

// Config contains the settings for reaching the local configuration agent.
// The application, environment and profile names identify the deployed
// configuration document.
type Config struct {
	Endpoint    string        `env:"APPCONFIG_ENDPOINT" envDefault:"http://localhost:2772"` // Endpoint is the base URL of the local configuration agent.
	Application string        `env:"CONFIG_APP_NAME,required"`
	Environment string        `env:"CONFIG_ENV_NAME,required"`
	Profile     string        `env:"CONFIG_PROFILE_NAME,required"`
	Timeout     time.Duration `env:"APPCONFIG_TIMEOUT" envDefault:"3s"` // Timeout bounds a single fetch; the agent is a sidecar and should answer fast.
}

// Source supplies the current feature ruleset snapshot. Implementations own
// freshness and atomic publication; callers only ever observe whole
// snapshots.
type Source interface {
	// Fetch returns the current ruleset and its version identifier.
	Fetch(ctx context.Context) (flagrules.Ruleset, string, error)
}

// Client fetches ruleset snapshots from an AppConfig-style local agent over
// HTTP. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	url        string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Useful for testing.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient returns a Client for the configuration identified by cfg.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		url: fmt.Sprintf("%s/applications/%s/environments/%s/configurations/%s",
			cfg.Endpoint, cfg.Application, cfg.Environment, cfg.Profile),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves and parses the current ruleset snapshot. Transport-level
// failures and non-2xx agent responses wrap ErrFetch; a response body that
// fails to parse wraps ErrMalformed.
func (c *Client) Fetch(ctx context.Context) (flagrules.Ruleset, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, "", errors.Join(ErrFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", errors.Join(ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", errors.Join(ErrFetch, fmt.Errorf("agent returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Join(ErrFetch, err)
	}

	rs, err := flagrules.ParseRuleset(body)
	if err != nil {
		return nil, "", errors.Join(ErrMalformed, err)
	}

	return rs, resp.Header.Get(versionHeader), nil
}
