package nager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"planner-backend/pkg/logger"

	redis "github.com/redis/go-redis/v9"
)

// DefaultBaseURL is the public Nager.Date endpoint
const DefaultBaseURL = "https://date.nager.at"

const (
	fetchTimeout = 10 * time.Second
	cacheTTL     = 24 * time.Hour
)

// ErrCountryNotFound is returned when the provider does not know the country code.
var ErrCountryNotFound = errors.New("unknown country code")

// ErrUnavailable is returned when the provider cannot be reached or answers
// with an unexpected status or body.
var ErrUnavailable = errors.New("holiday provider unavailable")

// Holiday is a single public-holiday record as served by Nager.Date
type Holiday struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Global      bool   `json:"global"`
}

// Client fetches public holidays from the Nager.Date API. When a redis client
// is supplied, successful responses are cached per country/year; cache errors
// fall through to the provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *redis.Client
}

// NewClient creates a Nager.Date client. cache may be nil.
func NewClient(baseURL string, cache *redis.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: fetchTimeout},
		cache:      cache,
	}
}

// PublicHolidays returns the public holidays of a country for a year.
func (c *Client) PublicHolidays(ctx context.Context, year int, country string) ([]Holiday, error) {
	country = strings.ToUpper(country)
	cacheKey := fmt.Sprintf("nager:%d:%s", year, country)

	if c.cache != nil {
		if raw, err := c.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var holidays []Holiday
			if err := json.Unmarshal(raw, &holidays); err == nil {
				return holidays, nil
			}
		}
	}

	url := fmt.Sprintf("%s/api/v3/PublicHolidays/%d/%s", c.baseURL, year, country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ErrUnavailable
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrCountryNotFound
	case resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent:
		return nil, ErrUnavailable
	}

	var holidays []Holiday
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
			return nil, ErrUnavailable
		}
	}

	if c.cache != nil {
		if raw, err := json.Marshal(holidays); err == nil {
			if err := c.cache.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
				logger.Warn("failed to cache holiday response", "key", cacheKey, "error", err)
			}
		}
	}

	return holidays, nil
}
