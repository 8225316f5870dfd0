package sonarr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golift.io/starr"
	"golift.io/starr/sonarr"
)

// Client wraps the starr Sonarr client for the monitored-status lookup
type Client struct {
	client *sonarr.Sonarr
	logger zerolog.Logger
}

// NewClient creates a new Sonarr client
func NewClient(url, apiKey string, logger zerolog.Logger) (*Client, error) {
	config := starr.New(apiKey, url, 30*time.Second)
	sonarrClient := sonarr.New(config)

	// Test the connection
	if _, err := sonarrClient.GetSystemStatus(); err != nil {
		return nil, fmt.Errorf("failed to connect to Sonarr: %w", err)
	}

	return &Client{
		client: sonarrClient,
		logger: logger,
	}, nil
}

// MonitoredByTitle fetches all series once and returns a case-insensitive
// title -> monitored lookup for enriching the backlog report
func (c *Client) MonitoredByTitle(ctx context.Context) (map[string]bool, error) {
	series, err := c.client.GetAllSeriesContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get series: %w", err)
	}

	c.logger.Debug().Msgf("Retrieved %d series from Sonarr", len(series))

	monitored := make(map[string]bool, len(series))
	for _, s := range series {
		monitored[strings.ToLower(s.Title)] = s.Monitored
	}
	return monitored, nil
}

// Lookup resolves a show title against the monitored map, nil when the
// show is unknown to Sonarr
func Lookup(monitored map[string]bool, title string) *bool {
	if monitored == nil {
		return nil
	}
	value, ok := monitored[strings.ToLower(title)]
	if !ok {
		return nil
	}
	return &value
}
