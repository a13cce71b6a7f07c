// Package cfapi is a thin client for the Cloudflare v4 REST API, covering
// the resources this tool touches: accounts, zones, and zone-scoped Logpush
// jobs. Every call makes exactly one outbound request; there are no retries.
package cfapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the production Cloudflare API endpoint.
	DefaultBaseURL = "https://api.cloudflare.com/client/v4"

	// perPage is the page size used for all paginated listings.
	perPage = 50
)

// Config holds the settings needed to construct a Client.
type Config struct {
	APIToken string
	BaseURL  string       // defaults to DefaultBaseURL
	HTTP     *http.Client // defaults to a 10s-timeout client
}

// Client issues authenticated calls against the Cloudflare API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a Client. The API token is required.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("API token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL:    baseURL,
		apiToken:   cfg.APIToken,
		httpClient: httpClient,
	}, nil
}

// envelope is the standard Cloudflare v4 response wrapper.
type envelope struct {
	Success    bool            `json:"success"`
	Errors     []Message       `json:"errors"`
	Messages   []Message       `json:"messages"`
	Result     json.RawMessage `json:"result"`
	ResultInfo *ResultInfo     `json:"result_info"`
}

// ResultInfo carries the pagination cursor state of a list response.
type ResultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// do performs one authenticated call. On success the envelope result is
// unmarshaled into out (when non-nil) and the pagination info, if any, is
// returned. Every failure comes back as an *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) (*ResultInfo, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Kind: KindMalformedResponse, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, &APIError{Kind: KindNetworkError, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindNetworkError, Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &APIError{
			Kind:       KindMalformedResponse,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		kind := classifyStatus(resp.StatusCode)
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			// success=false on a 2xx still means the API rejected the call
			kind = KindServerError
		}
		return nil, &APIError{Kind: kind, StatusCode: resp.StatusCode, Messages: env.Errors}
	}

	if out != nil {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return nil, &APIError{
				Kind:       KindMalformedResponse,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("decode result: %w", err),
			}
		}
	}

	return env.ResultInfo, nil
}

// pageQuery builds the query values for one page of a paginated listing.
func pageQuery(page int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return q
}
