// Package fmp provides a client for the Financial Modeling Prep API
package fmp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/rishabh931/balsheet/internal/common"
	"github.com/rishabh931/balsheet/internal/interfaces"
	"github.com/rishabh931/balsheet/internal/models"
)

const (
	DefaultBaseURL   = "https://financialmodelingprep.com/api/v3"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// ErrUnknownSymbol is returned when the provider has no data for a symbol.
var ErrUnknownSymbol = errors.New("unknown symbol")

// flexFloat64 handles JSON values that may be either a number or a string.
type flexFloat64 float64

func (f *flexFloat64) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = flexFloat64(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" || s == "N/A" {
			*f = 0
			return nil
		}
		num, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat64(num)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into float64", string(data))
}

// Client implements the FMPClient interface
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new FMP client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("FMP API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("url", c.baseURL+path).Msg("FMP API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// GetProfile retrieves the company profile for a symbol.
// FMP returns an empty array for unknown symbols.
func (c *Client) GetProfile(ctx context.Context, symbol string) (*models.CompanyProfile, error) {
	path := fmt.Sprintf("/profile/%s", symbol)

	var profiles []profileResponse
	if err := c.get(ctx, path, nil, &profiles); err != nil {
		return nil, err
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}

	p := profiles[0]
	return &models.CompanyProfile{
		Symbol:      p.Symbol,
		CompanyName: p.CompanyName,
		Sector:      p.Sector,
		Industry:    p.Industry,
		Exchange:    p.ExchangeShortName,
		Currency:    p.Currency,
		MarketCap:   float64(p.MktCap),
	}, nil
}

type profileResponse struct {
	Symbol            string      `json:"symbol"`
	CompanyName       string      `json:"companyName"`
	Sector            string      `json:"sector"`
	Industry          string      `json:"industry"`
	ExchangeShortName string      `json:"exchangeShortName"`
	Currency          string      `json:"currency"`
	MktCap            flexFloat64 `json:"mktCap"`
}

// GetBalanceSheet retrieves balance-sheet statements for a symbol,
// most recent first. period is "annual" or "quarter".
func (c *Client) GetBalanceSheet(ctx context.Context, symbol, period string, limit int) (*models.BalanceSheetSnapshot, error) {
	if period == "" {
		period = "annual"
	}
	if limit <= 0 {
		limit = 5
	}

	params := url.Values{}
	params.Set("period", period)
	params.Set("limit", strconv.Itoa(limit))

	path := fmt.Sprintf("/balance-sheet-statement/%s", symbol)

	var rows []balanceSheetResponse
	if err := c.get(ctx, path, params, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}

	snapshot := &models.BalanceSheetSnapshot{
		Symbol:  symbol,
		Periods: make([]models.BalanceSheetPeriod, len(rows)),
	}

	for i, row := range rows {
		date, _ := time.Parse("2006-01-02", row.Date)
		snapshot.Periods[i] = models.BalanceSheetPeriod{
			Date:                    date,
			Period:                  row.Period,
			Currency:                row.ReportedCurrency,
			CashAndCashEquivalents:  float64(row.CashAndCashEquivalents),
			NetReceivables:          float64(row.NetReceivables),
			Inventory:               float64(row.Inventory),
			TotalCurrentAssets:      float64(row.TotalCurrentAssets),
			TotalNonCurrentAssets:   float64(row.TotalNonCurrentAssets),
			TotalAssets:             float64(row.TotalAssets),
			ShortTermDebt:           float64(row.ShortTermDebt),
			TotalCurrentLiabilities: float64(row.TotalCurrentLiabilities),
			LongTermDebt:            float64(row.LongTermDebt),
			TotalLiabilities:        float64(row.TotalLiabilities),
			TotalDebt:               float64(row.TotalDebt),
			RetainedEarnings:        float64(row.RetainedEarnings),
			TotalStockholdersEquity: float64(row.TotalStockholdersEquity),
		}
	}

	return snapshot, nil
}

// balanceSheetResponse represents the API response for one statement period
type balanceSheetResponse struct {
	Date                    string      `json:"date"`
	Symbol                  string      `json:"symbol"`
	ReportedCurrency        string      `json:"reportedCurrency"`
	Period                  string      `json:"period"`
	CashAndCashEquivalents  flexFloat64 `json:"cashAndCashEquivalents"`
	NetReceivables          flexFloat64 `json:"netReceivables"`
	Inventory               flexFloat64 `json:"inventory"`
	TotalCurrentAssets      flexFloat64 `json:"totalCurrentAssets"`
	TotalNonCurrentAssets   flexFloat64 `json:"totalNonCurrentAssets"`
	TotalAssets             flexFloat64 `json:"totalAssets"`
	ShortTermDebt           flexFloat64 `json:"shortTermDebt"`
	TotalCurrentLiabilities flexFloat64 `json:"totalCurrentLiabilities"`
	LongTermDebt            flexFloat64 `json:"longTermDebt"`
	TotalLiabilities        flexFloat64 `json:"totalLiabilities"`
	TotalDebt               flexFloat64 `json:"totalDebt"`
	RetainedEarnings        flexFloat64 `json:"retainedEarnings"`
	TotalStockholdersEquity flexFloat64 `json:"totalStockholdersEquity"`
}

// Ensure Client implements FMPClient
var _ interfaces.FMPClient = (*Client)(nil)
