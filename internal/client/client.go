// Package client fetches map datasets from the garden API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jengzang/victory-garden-go/internal/models"
)

const (
	ProducePath = "/api/produce_data"
	ClimatePath = "/api/climate_zones"
)

// Client is an HTTP data source for the map viewer
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ProduceData fetches GET /api/produce_data
func (c *Client) ProduceData(ctx context.Context) ([]models.ProduceLocation, error) {
	var out []models.ProduceLocation
	if err := c.getJSON(ctx, ProducePath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClimateZones fetches GET /api/climate_zones
func (c *Client) ClimateZones(ctx context.Context) ([]models.ClimateZone, error) {
	var out []models.ClimateZone
	if err := c.getJSON(ctx, ClimatePath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
