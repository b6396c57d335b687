package numbeoapi

import (
	"context"
	"net/url"

	// Packages
	numbeo "github.com/DiTo97/numbeo-mcp"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CurrencyExchangeRate is the exchange rate of one currency against the
// US dollar and the euro
type CurrencyExchangeRate struct {
	Currency         string   `json:"currency,omitempty"`
	OneUsdToCurrency *float64 `json:"one_usd_to_currency,omitempty"`
	OneEurToCurrency *float64 `json:"one_eur_to_currency,omitempty"`
	Residual         Residual `json:"-"`
}

type CurrencyExchangeRatesResponse struct {
	ExchangeRates []CurrencyExchangeRate `json:"exchange_rates,omitempty"`
	Residual      Residual               `json:"-"`
}

// HistoricalCurrencyExchangeRatesRequest asks for the exchange rates of a
// past month and year
type HistoricalCurrencyExchangeRatesRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type HistoricalCurrencyExchangeRatesResponse struct {
	Month         *int                   `json:"month,omitempty"`
	Year          *int                   `json:"year,omitempty"`
	ExchangeRates []CurrencyExchangeRate `json:"exchange_rates,omitempty"`
	Residual      Residual               `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *HistoricalCurrencyExchangeRatesRequest) Values(key string) (url.Values, error) {
	if r == nil || r.Month == 0 || r.Year == 0 {
		return nil, numbeo.ErrBadParameter.With("missing month or year")
	}
	return values(r, key)
}

func (r *CurrencyExchangeRate) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CurrencyExchangeRate) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CurrencyExchangeRatesResponse) UnmarshalJSON(data []byte) error {
	return decodeObject(data, r)
}
func (r CurrencyExchangeRatesResponse) MarshalJSON() ([]byte, error) { return encodeObject(r) }

func (r *HistoricalCurrencyExchangeRatesResponse) UnmarshalJSON(data []byte) error {
	return decodeObject(data, r)
}
func (r HistoricalCurrencyExchangeRatesResponse) MarshalJSON() ([]byte, error) {
	return encodeObject(r)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CurrencyExchangeRates returns the current exchange rates
func (c *Client) CurrencyExchangeRates(ctx context.Context) (*CurrencyExchangeRatesResponse, error) {
	var response CurrencyExchangeRatesResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("currency_exchange_rates"), client.OptQuery(keyValues(c.key))); err != nil {
		return nil, err
	}
	return &response, nil
}

// HistoricalCurrencyExchangeRates returns the exchange rates for a past
// month and year
func (c *Client) HistoricalCurrencyExchangeRates(ctx context.Context, req *HistoricalCurrencyExchangeRatesRequest) (*HistoricalCurrencyExchangeRatesResponse, error) {
	var response HistoricalCurrencyExchangeRatesResponse
	if err := c.do(ctx, "historical_currency_exchange_rates", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
