// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package currency

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/time/rate"
)

// Configuration constants for the exchange-rate API.
const (
	// DefaultBaseURL is the free-tier CurrencyConverterAPI host.
	DefaultBaseURL = "https://free.currconv.com/"

	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 10 * time.Second

	// DefaultRequestsPerHour matches the free-tier hourly quota.
	DefaultRequestsPerHour = 100

	// MaxResponseSize is the maximum accepted response body size.
	MaxResponseSize = 1 << 20

	currenciesPath = "api/v7/currencies"
	convertPath    = "api/v7/convert"
)

// Error variables for common API failures.
var (
	// ErrMissingAPIKey indicates no API key was configured.
	ErrMissingAPIKey = errors.New("currency API key not configured")

	// ErrEmptyResponse indicates the convert endpoint returned no data.
	ErrEmptyResponse = errors.New("empty response")

	// ErrUnsupportedPair indicates the response did not contain the pair.
	ErrUnsupportedPair = errors.New("unsupported currency pair")

	// ErrMalformedResponse indicates the body was not the expected JSON.
	ErrMalformedResponse = errors.New("malformed API response")
)

// APIError is a non-2xx response from the service.
type APIError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	if body == "" {
		return fmt.Sprintf("HTTP %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("HTTP %d %s: %s", e.Status, http.StatusText(e.Status), body)
}

// Currency is one entry of the currencies endpoint.
type Currency struct {
	Code   string `json:"-"`
	ID     string `json:"id"`
	Name   string `json:"currencyName"`
	Symbol string `json:"currencySymbol"`
}

// Rate is an exchange rate as returned by the service. Value keeps the
// number exactly as the API printed it.
type Rate struct {
	From  string
	To    string
	Value json.Number
}

// Float returns the rate as a float64.
func (r Rate) Float() (float64, error) {
	f, err := strconv.ParseFloat(string(r.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: rate %q is not a number", ErrMalformedResponse, r.Value)
	}
	return f, nil
}

// Pair returns the "FROM_TO" query key.
func (r Rate) Pair() string {
	return r.From + "_" + r.To
}

// Config holds the settings a Client is built from.
type Config struct {
	BaseURL         string
	APIKey          string
	Timeout         time.Duration
	RequestsPerHour int

	// HTTPClient overrides the default client. Optional.
	HTTPClient *http.Client

	// Logger receives request logs. Optional.
	Logger logrus.FieldLogger
}

// Client talks to the CurrencyConverterAPI. It is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	log     logrus.FieldLogger
}

// NewClient creates a client from cfg, filling zero fields with defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerHour <= 0 {
		cfg.RequestsPerHour = DefaultRequestsPerHour
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
			Timeout: cfg.Timeout,
		}
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    cfg.HTTPClient,
		limiter: rate.NewLimiter(rate.Every(time.Hour/time.Duration(cfg.RequestsPerHour)), cfg.RequestsPerHour),
		log:     cfg.Logger,
	}
}

// IsConfigured reports whether an API key is set.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// NormalizeCode folds user input into a currency code: Unicode NFKC
// (fullwidth letters become ASCII), surrounding space trimmed, upper case.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(norm.NFKC.String(s)))
}

// Currencies returns every currency the service knows, sorted by code.
func (c *Client) Currencies(ctx context.Context) ([]Currency, error) {
	body, err := c.get(ctx, currenciesPath, nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Results map[string]Currency `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	out := make([]Currency, 0, len(resp.Results))
	for code, cur := range resp.Results {
		cur.Code = code
		out = append(out, cur)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// Rate fetches the rate for converting from into to. Codes are expected
// already normalized.
func (c *Client) Rate(ctx context.Context, from, to string) (Rate, error) {
	r := Rate{From: from, To: to}
	query := url.Values{}
	query.Set("q", r.Pair())
	query.Set("compact", "ultra")

	body, err := c.get(ctx, convertPath, query)
	if err != nil {
		return Rate{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var data map[string]json.Number
	if err := dec.Decode(&data); err != nil {
		return Rate{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(data) == 0 {
		return Rate{}, ErrEmptyResponse
	}

	value, ok := data[r.Pair()]
	if !ok || value == "" {
		return Rate{}, fmt.Errorf("%w: %s", ErrUnsupportedPair, r.Pair())
	}
	r.Value = value
	return r, nil
}

// Convert fetches the rate and applies it to amount.
func (c *Client) Convert(ctx context.Context, from, to string, amount float64) (float64, Rate, error) {
	r, err := c.Rate(ctx, from, to)
	if err != nil {
		return 0, Rate{}, err
	}
	f, err := r.Float()
	if err != nil {
		return 0, Rate{}, err
	}
	return f * amount, r, nil
}

// get performs one paced GET against path and returns the body of a 2xx
// response. The API key is added to the query here and never logged.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("apiKey", c.apiKey)
	requestURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	logger := c.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"endpoint":   path,
	})
	logger.Debug("currency api request")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithError(redact(err)).Warn("currency api request failed")
		return nil, fmt.Errorf("request failed: %w", redact(err))
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	logger.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("currency api response")
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// readResponse reads the body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(body) > MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// redact strips the request URL, which carries the API key, from transport
// errors.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
