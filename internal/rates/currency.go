package rates

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultCurrencyURL is the exchange rates API base.
const DefaultCurrencyURL = "https://api.apilayer.com/exchangerates_data"

// CurrencyClient converts amounts through the exchange rates API.
type CurrencyClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
	base    string
	log     zerolog.Logger
}

// NewCurrencyClient creates a CurrencyClient. base is the reporting currency
// used by ConvertToBase.
func NewCurrencyClient(client *http.Client, baseURL, apiKey, base string, log zerolog.Logger) *CurrencyClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &CurrencyClient{
		http:    client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		base:    base,
		log:     log,
	}
}

// ConvertToBase returns the price of one unit of from in the reporting
// currency.
func (c *CurrencyClient) ConvertToBase(ctx context.Context, from string) *float64 {
	return c.Convert(ctx, from, 1, c.base)
}

// Convert converts amount of from into to. It returns nil when the lookup
// fails; failures are logged. Equal currencies return amount without a
// request.
func (c *CurrencyClient) Convert(ctx context.Context, from string, amount float64, to string) *float64 {
	if strings.EqualFold(from, to) {
		return &amount
	}

	q := url.Values{}
	q.Set("to", to)
	q.Set("from", from)
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	endpoint := c.baseURL + "/convert?" + q.Encode()

	var body struct {
		Result *float64 `json:"result"`
	}
	if err := getJSON(ctx, c.http, endpoint, http.Header{"apikey": {c.apiKey}}, &body); err != nil {
		c.log.Error().Err(err).Str("from", from).Str("to", to).Msg("currency lookup failed")
		return nil
	}
	if body.Result == nil {
		c.log.Warn().Str("from", from).Str("to", to).Msg("currency response has no result")
		return nil
	}
	return body.Result
}
