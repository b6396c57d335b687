package numbeoapi

import (
	"context"
	"net/url"

	// Packages
	numbeo "github.com/DiTo97/numbeo-mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// PriceEntry is the price statistics of one item
type PriceEntry struct {
	ItemId       *int     `json:"item_id,omitempty"`
	ItemName     string   `json:"item_name,omitempty"`
	DataPoints   *int     `json:"data_points,omitempty"`
	LowestPrice  *float64 `json:"lowest_price,omitempty"`
	AveragePrice *float64 `json:"average_price,omitempty"`
	HighestPrice *float64 `json:"highest_price,omitempty"`
	Residual     Residual `json:"-"`
}

// CityPricesRequest asks for current prices in a city, identified by a
// free-form query, a city and country pair, or a city identifier
type CityPricesRequest struct {
	Query          *string `json:"query,omitempty"`
	City           *string `json:"city,omitempty"`
	Country        *string `json:"country,omitempty"`
	CityId         *int    `json:"city_id,omitempty"`
	StrictMatching *bool   `json:"strict_matching,omitempty"`
	Currency       *string `json:"currency,omitempty"`
	UseEstimated   *bool   `json:"use_estimated,omitempty"`
}

type CityPricesResponse struct {
	Name                 string       `json:"name,omitempty"`
	Currency             string       `json:"currency,omitempty"`
	CityId               *int         `json:"city_id,omitempty"`
	Contributors         *int         `json:"contributors,omitempty"`
	Contributors12Months *int         `json:"contributors12months,omitempty"`
	MonthLastUpdate      *int         `json:"monthLastUpdate,omitempty"`
	YearLastUpdate       *int         `json:"yearLastUpdate,omitempty"`
	Prices               []PriceEntry `json:"prices,omitempty"`
	Residual             Residual     `json:"-"`
}

// CountryPricesRequest asks for country-level aggregated prices
type CountryPricesRequest struct {
	Country  string  `json:"country"`
	Currency *string `json:"currency,omitempty"`
}

type CountryPricesResponse struct {
	Name            string       `json:"name,omitempty"`
	Currency        string       `json:"currency,omitempty"`
	Contributors    *int         `json:"contributors,omitempty"`
	MonthLastUpdate *int         `json:"monthLastUpdate,omitempty"`
	YearLastUpdate  *int         `json:"yearLastUpdate,omitempty"`
	Prices          []PriceEntry `json:"prices,omitempty"`
	Residual        Residual     `json:"-"`
}

// AdministrativeUnitPricesRequest asks for prices aggregated over an
// administrative unit. The unit is named by exactly one of the two
// alternative fields
type AdministrativeUnitPricesRequest struct {
	Country            string  `json:"country"`
	AdministrativeUnit *string `json:"administrative_unit,omitempty"`
	AdminName          *string `json:"admin_name,omitempty"`
	Currency           *string `json:"currency,omitempty"`
}

type AdministrativeUnitPricesResponse struct {
	Name            string       `json:"name,omitempty"`
	Currency        string       `json:"currency,omitempty"`
	Contributors    *int         `json:"contributors,omitempty"`
	MonthLastUpdate *int         `json:"monthLastUpdate,omitempty"`
	YearLastUpdate  *int         `json:"yearLastUpdate,omitempty"`
	Prices          []PriceEntry `json:"prices,omitempty"`
	Residual        Residual     `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *CityPricesRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CountryPricesRequest) Values(key string) (url.Values, error) {
	if r == nil || r.Country == "" {
		return nil, numbeo.ErrBadParameter.With("missing country")
	}
	return values(r, key)
}

func (r *AdministrativeUnitPricesRequest) Values(key string) (url.Values, error) {
	if r == nil || r.Country == "" {
		return nil, numbeo.ErrBadParameter.With("missing country")
	}
	if r.AdministrativeUnit == nil && r.AdminName == nil {
		return nil, numbeo.ErrMissingAlternative.With("one of administrative_unit or admin_name is required")
	}
	return values(r, key)
}

func (r *PriceEntry) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r PriceEntry) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CityPricesResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CityPricesResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CountryPricesResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CountryPricesResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *AdministrativeUnitPricesResponse) UnmarshalJSON(data []byte) error {
	return decodeObject(data, r)
}
func (r AdministrativeUnitPricesResponse) MarshalJSON() ([]byte, error) { return encodeObject(r) }

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CityPrices returns current prices for goods and services in a city
func (c *Client) CityPrices(ctx context.Context, req *CityPricesRequest) (*CityPricesResponse, error) {
	var response CityPricesResponse
	if err := c.do(ctx, "city_prices", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CountryPrices returns country-level aggregated prices
func (c *Client) CountryPrices(ctx context.Context, req *CountryPricesRequest) (*CountryPricesResponse, error) {
	var response CountryPricesResponse
	if err := c.do(ctx, "country_prices", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// AdministrativeUnitPrices returns prices aggregated over an administrative
// unit of a country
func (c *Client) AdministrativeUnitPrices(ctx context.Context, req *AdministrativeUnitPricesRequest) (*AdministrativeUnitPricesResponse, error) {
	var response AdministrativeUnitPricesResponse
	if err := c.do(ctx, "administrative_unit_prices", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
