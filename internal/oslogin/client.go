// Package oslogin is a minimal client for the OS Login API, covering the
// single call this tool needs: fetching a user's login profile with the
// SECURITY_KEY view.
package oslogin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/skssh/skssh/internal/errors"
	"github.com/skssh/skssh/internal/logger"
)

// DefaultEndpoint is the production OS Login API endpoint.
const DefaultEndpoint = "https://oslogin.googleapis.com"

// apiVersion is the API surface that exposes the SECURITY_KEY profile view.
const apiVersion = "v1beta"

// ViewSecurityKey asks the service for the security-key scoped profile.
const ViewSecurityKey = "SECURITY_KEY"

// TokenSource supplies a bearer token for API requests. Token acquisition
// itself (gcloud, service accounts, metadata server) happens outside this
// package; the source just hands over whatever was pre-provisioned.
type TokenSource func() (string, error)

// StaticToken returns a TokenSource that always yields the given token.
func StaticToken(token string) TokenSource {
	return func() (string, error) { return token, nil }
}

// Client talks to the OS Login API. Build one per run and pass it
// explicitly; it holds no state beyond its HTTP client and credentials.
type Client struct {
	endpoint string
	http     *http.Client
	tokens   TokenSource
	log      logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint (used for tests and private
// service perimeters).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates an OS Login client authenticating with the given
// token source.
func NewClient(tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
		tokens:   tokens,
		log:      logger.NewEnvLogger("[oslogin]"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetLoginProfile fetches the login profile for a user, requesting the
// SECURITY_KEY view. userKey is a primary email, alias email, or unique
// user ID; it is passed through unvalidated.
//
// The call is not retried. Failures map onto the error taxonomy:
// AUTH for 401/403, NOTFOUND for 404 (and for profiles with no posix
// accounts), NETWORK for transport failures and other non-2xx statuses.
func (c *Client) GetLoginProfile(ctx context.Context, userKey string) (*Profile, error) {
	token, err := c.tokens()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrAuth,
			"No API credentials available",
			"Set token in the config file or export SKSSH_TOKEN")
	}

	u := fmt.Sprintf("%s/%s/users/%s/loginProfile?view=%s",
		c.endpoint, apiVersion, url.PathEscape(userKey), ViewSecurityKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrNetwork,
			"Failed to build login profile request",
			"Check the endpoint URL in your config")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("GET %s", u)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrNetwork,
			"Cannot reach the OS Login API",
			"Check your network connection and the endpoint in your config")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errors.WrapWithCode(apiError(resp), errors.ErrAuth,
			"OS Login API rejected the credentials",
			"Refresh your access token; it may have expired")
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.WrapWithCode(apiError(resp), errors.ErrNotFound,
			fmt.Sprintf("No login profile found for %q", userKey),
			"Check the --user_key value (email, alias, or unique user ID)")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.WrapWithCode(apiError(resp), errors.ErrNetwork,
			"OS Login API request failed",
			"")
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrNetwork,
			"Failed to decode login profile response",
			"")
	}

	if len(profile.PosixAccounts) == 0 {
		return nil, errors.New(errors.ErrNotFound,
			fmt.Sprintf("Login profile for %q has no POSIX accounts", userKey),
			"The account is not provisioned for OS Login on any project")
	}

	c.log.Debug("profile %s: %d posix accounts, %d security keys",
		profile.Name, len(profile.PosixAccounts), len(profile.SecurityKeys))

	return &profile, nil
}

// apiError turns a non-2xx response into an error carrying the status and
// a body excerpt.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if len(body) == 0 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
}
