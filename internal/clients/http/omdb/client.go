// Package omdb implements the external movie catalog lookup against an
// OMDb-compatible API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
)

// Client performs title lookups against the catalog API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient instantiates the catalog client with sane defaults.
func NewClient(baseURL, apiKey string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("catalog base URL is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("catalog API key is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient}, nil
}

// fetchedMovie mirrors the upstream response shape. Response acts as the
// discriminator: "False" means the title was not found and Error carries the
// upstream message.
type fetchedMovie struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Title    string `json:"Title"`
	Released string `json:"Released"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
}

// FetchByTitle performs one outbound lookup keyed by title. A "not found"
// response maps to ports.ErrMovieNotFound carrying the upstream message; on a
// successful shape the field names normalize to the internal attribute set.
// No retries; transport failures propagate as-is.
func (c *Client) FetchByTitle(ctx context.Context, title string) (ports.CatalogMovie, error) {
	if c == nil || c.httpClient == nil {
		return ports.CatalogMovie{}, errors.New("catalog client not configured")
	}

	query := url.Values{}
	query.Set("apikey", c.apiKey)
	query.Set("t", title)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+query.Encode(), nil)
	if err != nil {
		return ports.CatalogMovie{}, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.CatalogMovie{}, fmt.Errorf("call catalog API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return ports.CatalogMovie{}, fmt.Errorf("catalog API returned status %s", resp.Status)
	}

	var payload fetchedMovie
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.CatalogMovie{}, fmt.Errorf("decode catalog response: %w", err)
	}

	if payload.Response == "False" {
		message := strings.TrimSpace(payload.Error)
		if message == "" {
			message = "movie not found in catalog"
		}
		return ports.CatalogMovie{}, fmt.Errorf("%w: %s", ports.ErrMovieNotFound, message)
	}

	return ports.CatalogMovie{
		Title:    payload.Title,
		Released: payload.Released,
		Genre:    payload.Genre,
		Director: payload.Director,
	}, nil
}

var _ ports.MetadataSource = (*Client)(nil)
