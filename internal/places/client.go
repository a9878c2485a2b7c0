package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"MoodEat/internal/config"
)

// nearbySearchBase is the provider's nearby-search endpoint. Declared as a
// var so tests can substitute an httptest server.
var nearbySearchBase = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

const photoBase = "https://maps.googleapis.com/maps/api/place/photo"

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// NearbyQuery describes one nearby-search call.
type NearbyQuery struct {
	Lat       float64
	Lng       float64
	Radius    int
	Keyword   string
	Type      string
	MaxPrice  int
	OpenNow   bool
	PageToken string
}

// NearbyResult is one decoded page of provider results.
type NearbyResult struct {
	Places        []Place
	NextPageToken string
}

// Searcher is the outbound boundary of the nearby-search provider.
type Searcher interface {
	Configured() bool
	NearbySearch(ctx context.Context, q NearbyQuery) (*NearbyResult, error)
	PhotoURL(ref string) string
}

type Client struct {
	apiKey     string
	language   string
	httpClient *http.Client
}

func NewClient(c config.PlacesConf) *Client {
	timeoutSeconds := c.TimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}

	return &Client{
		apiKey:   c.APIKey,
		language: c.Language,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

// Configured reports whether a provider credential is present. Callers
// short-circuit to empty results when it is not.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) NearbySearch(ctx context.Context, q NearbyQuery) (*NearbyResult, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("places: no API key configured")
	}

	params := url.Values{
		"key": {c.apiKey},
	}
	if q.PageToken != "" {
		// A page token encodes the original query; the provider rejects
		// requests that repeat the other parameters alongside it.
		params.Set("pagetoken", q.PageToken)
	} else {
		params.Set("location", fmt.Sprintf("%f,%f", q.Lat, q.Lng))
		params.Set("radius", strconv.Itoa(q.Radius))
		if q.Keyword != "" {
			params.Set("keyword", q.Keyword)
		}
		if q.Type != "" {
			params.Set("type", q.Type)
		}
		if c.language != "" {
			params.Set("language", c.language)
		}
		if q.MaxPrice > 0 {
			params.Set("maxprice", strconv.Itoa(q.MaxPrice))
		}
		if q.OpenNow {
			params.Set("opennow", "true")
		}
	}

	reqURL := nearbySearchBase + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("places: creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: nearby search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places: nearby search returned HTTP %d", resp.StatusCode)
	}

	var decoded nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("places: parsing nearby search response: %w", err)
	}

	if decoded.Status != statusOK && decoded.Status != statusZeroResults {
		return nil, fmt.Errorf("places: nearby search status %s: %s", decoded.Status, decoded.ErrorMessage)
	}

	return &NearbyResult{
		Places:        decoded.Results,
		NextPageToken: decoded.NextPageToken,
	}, nil
}

// PhotoURL builds a fetchable image URL for a provider photo reference.
// Empty when the reference is missing or no credential is configured.
func (c *Client) PhotoURL(ref string) string {
	if ref == "" || !c.Configured() {
		return ""
	}
	params := url.Values{
		"maxwidth":       {"800"},
		"photoreference": {ref},
		"key":            {c.apiKey},
	}
	return photoBase + "?" + params.Encode()
}
