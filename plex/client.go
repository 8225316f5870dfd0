package plex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client wraps the Plex media server HTTP API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Plex client and verifies the server is reachable
func NewClient(baseURL, token string, logger zerolog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("plex URL is required")
	}
	if token == "" {
		return nil, ErrTokenRequired
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}

	// Test the connection
	if err := client.TestConnection(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to Plex: %w", err)
	}

	return client, nil
}

// TestConnection tests the connection to the Plex server
func (c *Client) TestConnection(ctx context.Context) error {
	body, err := c.get(ctx, "/identity", nil)
	if err != nil {
		return err
	}
	c.logger.Debug().Int("bytes", len(body)).Msg("Plex identity check succeeded")
	return nil
}

// GetSections retrieves all library sections from the server
func (c *Client) GetSections(ctx context.Context) ([]Section, error) {
	body, err := c.get(ctx, "/library/sections", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}

	var resp sectionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode sections response: %w", err)
	}

	c.logger.Debug().Int("count", len(resp.MediaContainer.Directory)).Msg("Retrieved library sections")
	return resp.MediaContainer.Directory, nil
}

// GetTVSections retrieves the show-type library sections
func (c *Client) GetTVSections(ctx context.Context) ([]Section, error) {
	sections, err := c.GetSections(ctx)
	if err != nil {
		return nil, err
	}

	var tv []Section
	for _, section := range sections {
		if section.IsTV() {
			tv = append(tv, section)
		}
	}
	return tv, nil
}

// GetShows retrieves all shows in a section, in server order
func (c *Client) GetShows(ctx context.Context, sectionKey string) ([]Show, error) {
	params := url.Values{"includeGuids": {"1"}}

	body, err := c.get(ctx, fmt.Sprintf("/library/sections/%s/all", url.PathEscape(sectionKey)), params)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows in section %s: %w", sectionKey, err)
	}

	var resp showsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode shows response: %w", err)
	}

	c.logger.Debug().
		Str("section", sectionKey).
		Int("count", len(resp.MediaContainer.Metadata)).
		Msg("Retrieved shows")
	return resp.MediaContainer.Metadata, nil
}

// get performs an authenticated GET request. Errors carry the URL without
// the token parameter so the token never reaches logs or the terminal.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	plainURL := c.baseURL + endpoint
	if len(params) > 0 {
		plainURL += "?" + params.Encode()
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("X-Plex-Token", c.token)
	requestURL := c.baseURL + endpoint + "?" + params.Encode()

	c.logger.Debug().Str("url", plainURL).Msg("Making Plex API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", plainURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", plainURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", plainURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			URL:        plainURL,
			Body:       string(body),
		}
	}

	return body, nil
}
