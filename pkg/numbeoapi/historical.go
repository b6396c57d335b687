package numbeoapi

import (
	"context"
	"net/url"

	// Packages
	numbeo "github.com/DiTo97/numbeo-mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// HistoricalPriceEntry is one yearly price observation for an item
type HistoricalPriceEntry struct {
	ItemId   *int     `json:"item_id,omitempty"`
	Year     *int     `json:"year,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	Residual Residual `json:"-"`
}

// HistoricalMonthlyPriceEntry is one monthly price observation for an item
type HistoricalMonthlyPriceEntry struct {
	ItemId       *int     `json:"item_id,omitempty"`
	Year         *int     `json:"year,omitempty"`
	Month        *int     `json:"month,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	Contributors *int     `json:"contributors,omitempty"`
	Residual     Residual `json:"-"`
}

// HistoricalCityPricesRequest asks for archived yearly prices in a city
type HistoricalCityPricesRequest struct {
	Query          *string `json:"query,omitempty"`
	City           *string `json:"city,omitempty"`
	Country        *string `json:"country,omitempty"`
	CityId         *int    `json:"city_id,omitempty"`
	StrictMatching *bool   `json:"strict_matching,omitempty"`
	Currency       *string `json:"currency,omitempty"`
}

type HistoricalCityPricesResponse struct {
	City     string                 `json:"city,omitempty"`
	Currency string                 `json:"currency,omitempty"`
	Entry    []HistoricalPriceEntry `json:"entry,omitempty"`
	Residual Residual               `json:"-"`
}

// HistoricalCountryPricesRequest asks for archived yearly prices in a country
type HistoricalCountryPricesRequest struct {
	Country  string  `json:"country"`
	Currency *string `json:"currency,omitempty"`
}

type HistoricalCountryPricesResponse struct {
	Country  string                 `json:"country,omitempty"`
	Currency string                 `json:"currency,omitempty"`
	Entry    []HistoricalPriceEntry `json:"entry,omitempty"`
	Residual Residual               `json:"-"`
}

// HistoricalCountryPricesMonthlyRequest asks for archived monthly prices in
// a country
type HistoricalCountryPricesMonthlyRequest struct {
	Country  string  `json:"country"`
	Currency *string `json:"currency,omitempty"`
}

type HistoricalCountryPricesMonthlyResponse struct {
	Country  string                        `json:"country,omitempty"`
	Entry    []HistoricalMonthlyPriceEntry `json:"entry,omitempty"`
	Residual Residual                      `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *HistoricalCityPricesRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *HistoricalCountryPricesRequest) Values(key string) (url.Values, error) {
	if r == nil || r.Country == "" {
		return nil, numbeo.ErrBadParameter.With("missing country")
	}
	return values(r, key)
}

func (r *HistoricalCountryPricesMonthlyRequest) Values(key string) (url.Values, error) {
	if r == nil || r.Country == "" {
		return nil, numbeo.ErrBadParameter.With("missing country")
	}
	return values(r, key)
}

func (r *HistoricalPriceEntry) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r HistoricalPriceEntry) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *HistoricalMonthlyPriceEntry) UnmarshalJSON(data []byte) error {
	return decodeObject(data, r)
}
func (r HistoricalMonthlyPriceEntry) MarshalJSON() ([]byte, error) { return encodeObject(r) }

func (r *HistoricalCityPricesResponse) UnmarshalJSON(data []byte) error {
	return decodeObject(data, r)
}
func (r HistoricalCityPricesResponse) MarshalJSON() ([]byte, error) { return encodeObject(r) }

func (r *HistoricalCountryPricesResponse) UnmarshalJSON(data []byte) error {
	return decodeObject(data, r)
}
func (r HistoricalCountryPricesResponse) MarshalJSON() ([]byte, error) { return encodeObject(r) }

func (r *HistoricalCountryPricesMonthlyResponse) UnmarshalJSON(data []byte) error {
	return decodeObject(data, r)
}
func (r HistoricalCountryPricesMonthlyResponse) MarshalJSON() ([]byte, error) {
	return encodeObject(r)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// HistoricalCityPrices returns archived yearly prices for a city
func (c *Client) HistoricalCityPrices(ctx context.Context, req *HistoricalCityPricesRequest) (*HistoricalCityPricesResponse, error) {
	var response HistoricalCityPricesResponse
	if err := c.do(ctx, "historical_city_prices", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// HistoricalCountryPrices returns archived yearly prices for a country
func (c *Client) HistoricalCountryPrices(ctx context.Context, req *HistoricalCountryPricesRequest) (*HistoricalCountryPricesResponse, error) {
	var response HistoricalCountryPricesResponse
	if err := c.do(ctx, "historical_country_prices", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// HistoricalCountryPricesMonthly returns archived monthly prices for a country
func (c *Client) HistoricalCountryPricesMonthly(ctx context.Context, req *HistoricalCountryPricesMonthlyRequest) (*HistoricalCountryPricesMonthlyResponse, error) {
	var response HistoricalCountryPricesMonthlyResponse
	if err := c.do(ctx, "historical_country_prices_monthly", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
