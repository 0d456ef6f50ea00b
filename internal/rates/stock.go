package rates

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultStockURL is the stock quote API endpoint.
const DefaultStockURL = "https://www.alphavantage.co/query"

// StockClient fetches the latest quote for a ticker.
type StockClient struct {
	http     *http.Client
	endpoint string
	apiKey   string
	log      zerolog.Logger
}

// NewStockClient creates a StockClient.
func NewStockClient(client *http.Client, endpoint, apiKey string, log zerolog.Logger) *StockClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &StockClient{http: client, endpoint: endpoint, apiKey: apiKey, log: log}
}

// Price returns the latest price for symbol, or nil when the lookup fails.
func (c *StockClient) Price(ctx context.Context, symbol string) *float64 {
	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)

	var body struct {
		Quote struct {
			Price string `json:"05. price"`
		} `json:"Global Quote"`
	}
	if err := getJSON(ctx, c.http, c.endpoint+"?"+q.Encode(), nil, &body); err != nil {
		c.log.Error().Err(err).Str("stock", symbol).Msg("stock lookup failed")
		return nil
	}
	if body.Quote.Price == "" {
		c.log.Warn().Str("stock", symbol).Msg("stock response has no price")
		return nil
	}

	price, err := decimal.NewFromString(body.Quote.Price)
	if err != nil {
		c.log.Warn().Err(err).Str("stock", symbol).Msg("stock price is not a number")
		return nil
	}
	f := price.InexactFloat64()
	return &f
}
