package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/cashview/internal/model"
	"github.com/cleared-dev/cashview/internal/settings"
	"github.com/cleared-dev/cashview/internal/stats"
)

// CurrencyQuoter prices one unit of a currency in the reporting currency.
type CurrencyQuoter interface {
	ConvertToBase(ctx context.Context, from string) *float64
}

// StockQuoter returns the latest price of a ticker.
type StockQuoter interface {
	Price(ctx context.Context, symbol string) *float64
}

// Dashboard is the payload shown on the main page.
type Dashboard struct {
	Greeting        string               `json:"greeting"`
	Cards           []model.CardStat     `json:"cards"`
	TopTransactions []model.Transaction  `json:"top_transactions"`
	CurrencyRates   []model.CurrencyRate `json:"currency_rates"`
	StocksPrices    []model.StockPrice   `json:"stocks_prices"`
}

// JSON renders the dashboard as indented JSON.
func (d Dashboard) JSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d); err != nil {
		return "", fmt.Errorf("encoding dashboard: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Composer builds dashboards from a transaction set and the user's watchlist.
type Composer struct {
	settingsPath string
	currencies   CurrencyQuoter
	stocks       StockQuoter
	log          zerolog.Logger
}

// NewComposer creates a Composer reading the watchlist from settingsPath.
func NewComposer(settingsPath string, currencies CurrencyQuoter, stocks StockQuoter, log zerolog.Logger) *Composer {
	return &Composer{settingsPath: settingsPath, currencies: currencies, stocks: stocks, log: log}
}

// Compose builds the dashboard for timestamp. Failed quotes appear with a nil
// value. The only error is a settings file that exists but cannot be read.
func (c *Composer) Compose(ctx context.Context, timestamp string, txns []model.Transaction) (Dashboard, error) {
	c.log.Info().Str("timestamp", timestamp).Msg("composing dashboard")

	userSettings, err := settings.Load(c.log, c.settingsPath)
	if err != nil {
		return Dashboard{}, fmt.Errorf("loading user settings: %w", err)
	}

	rates := make([]model.CurrencyRate, 0, len(userSettings.Currencies))
	for _, cur := range userSettings.Currencies {
		rate := c.currencies.ConvertToBase(ctx, cur)
		rates = append(rates, model.CurrencyRate{Currency: cur, Rate: rate})
		c.log.Info().Str("currency", cur).Bool("ok", rate != nil).Msg("currency rate fetched")
	}

	prices := make([]model.StockPrice, 0, len(userSettings.Stocks))
	for _, sym := range userSettings.Stocks {
		price := c.stocks.Price(ctx, sym)
		prices = append(prices, model.StockPrice{Stock: sym, Price: price})
		c.log.Info().Str("stock", sym).Bool("ok", price != nil).Msg("stock price fetched")
	}

	return Dashboard{
		Greeting:        Greeting(c.log, timestamp),
		Cards:           stats.CardStats(c.log, txns),
		TopTransactions: stats.TopTransactions(c.log, txns, stats.TopN),
		CurrencyRates:   rates,
		StocksPrices:    prices,
	}, nil
}
