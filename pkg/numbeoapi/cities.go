package numbeoapi

import (
	"context"
	"net/url"

	// Packages
	numbeo "github.com/DiTo97/numbeo-mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CitySummary is one city in the catalogue of cities with data
type CitySummary struct {
	Country   string   `json:"country,omitempty"`
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	CityId    *int     `json:"city_id,omitempty"`
	Residual  Residual `json:"-"`
}

// CitiesRequest filters the catalogue of cities by country
type CitiesRequest struct {
	Country *string `json:"country,omitempty"`
}

type CitiesResponse struct {
	Cities   []CitySummary `json:"cities,omitempty"`
	Residual Residual      `json:"-"`
}

// CloseCitySummary is one city close to a coordinate query
type CloseCitySummary struct {
	Country   string   `json:"country,omitempty"`
	Name      string   `json:"name,omitempty"`
	ShortName string   `json:"short_name,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	CityId    *int     `json:"city_id,omitempty"`
	Residual  Residual `json:"-"`
}

// CloseCitiesWithPricesRequest finds cities with price data close to a
// "latitude,longitude" query
type CloseCitiesWithPricesRequest struct {
	Query           *string `json:"query,omitempty"`
	MaxDistance     *int    `json:"max_distance,omitempty"`
	MinContributors *int    `json:"min_contributors,omitempty"`
}

type CloseCitiesWithPricesResponse struct {
	Cities   []CloseCitySummary `json:"cities,omitempty"`
	Residual Residual           `json:"-"`
}

// CountryAdministrativeUnitsRequest lists the administrative units of a country
type CountryAdministrativeUnitsRequest struct {
	Country string `json:"country"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *CitiesRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CloseCitiesWithPricesRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CountryAdministrativeUnitsRequest) Values(key string) (url.Values, error) {
	if r == nil || r.Country == "" {
		return nil, numbeo.ErrBadParameter.With("missing country")
	}
	return values(r, key)
}

func (r *CitySummary) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CitySummary) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CitiesResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CitiesResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CloseCitySummary) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CloseCitySummary) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CloseCitiesWithPricesResponse) UnmarshalJSON(data []byte) error {
	return decodeObject(data, r)
}
func (r CloseCitiesWithPricesResponse) MarshalJSON() ([]byte, error) { return encodeObject(r) }

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Cities returns the catalogue of cities with data, optionally filtered by
// country. The request may be nil
func (c *Client) Cities(ctx context.Context, req *CitiesRequest) (*CitiesResponse, error) {
	var response CitiesResponse
	if err := c.do(ctx, "cities", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CloseCitiesWithPrices returns cities with price data close to a coordinate
func (c *Client) CloseCitiesWithPrices(ctx context.Context, req *CloseCitiesWithPricesRequest) (*CloseCitiesWithPricesResponse, error) {
	var response CloseCitiesWithPricesResponse
	if err := c.do(ctx, "close_cities_with_prices", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CountryAdministrativeUnits returns the names of the administrative units
// of a country
func (c *Client) CountryAdministrativeUnits(ctx context.Context, req *CountryAdministrativeUnitsRequest) ([]string, error) {
	var response []string
	if err := c.do(ctx, "country_administrative_units", req, &response); err != nil {
		return nil, err
	}
	return response, nil
}
