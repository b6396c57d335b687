package numbeoapi

import (
	"context"
	"net/url"
	"strconv"

	// Packages
	numbeo "github.com/DiTo97/numbeo-mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CityRanking is one city entry in a rankings table
type CityRanking struct {
	Country                      string   `json:"country,omitempty"`
	CityName                     string   `json:"city_name,omitempty"`
	CityId                       *int     `json:"city_id,omitempty"`
	CpiIndex                     *float64 `json:"cpi_index,omitempty"`
	CpiAndRentIndex              *float64 `json:"cpi_and_rent_index,omitempty"`
	RentIndex                    *float64 `json:"rent_index,omitempty"`
	GroceriesIndex               *float64 `json:"groceries_index,omitempty"`
	RestaurantPriceIndex         *float64 `json:"restaurant_price_index,omitempty"`
	PurchasingPowerInclRentIndex *float64 `json:"purchasing_power_incl_rent_index,omitempty"`
	Residual                     Residual `json:"-"`
}

// CountryRanking is one country entry in a rankings table
type CountryRanking struct {
	Country                      string   `json:"country,omitempty"`
	CpiIndex                     *float64 `json:"cpi_index,omitempty"`
	CpiAndRentIndex              *float64 `json:"cpi_and_rent_index,omitempty"`
	RentIndex                    *float64 `json:"rent_index,omitempty"`
	GroceriesIndex               *float64 `json:"groceries_index,omitempty"`
	RestaurantPriceIndex         *float64 `json:"restaurant_price_index,omitempty"`
	PurchasingPowerInclRentIndex *float64 `json:"purchasing_power_incl_rent_index,omitempty"`
	Residual                     Residual `json:"-"`
}

// RankingsRequest selects the rankings category, which is resolved to the
// numeric code the API expects
type RankingsRequest struct {
	Section Section `json:"section"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *RankingsRequest) Values(key string) (url.Values, error) {
	if r == nil {
		return nil, numbeo.ErrBadParameter.With("missing section")
	}
	code, err := r.Section.Code()
	if err != nil {
		return nil, err
	}
	result := keyValues(key)
	result.Set("section", strconv.Itoa(code))
	return result, nil
}

func (r *CityRanking) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CityRanking) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CountryRanking) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CountryRanking) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RankingsByCityCurrent returns the current worldwide city rankings for a
// category
func (c *Client) RankingsByCityCurrent(ctx context.Context, req *RankingsRequest) ([]CityRanking, error) {
	var response []CityRanking
	if err := c.do(ctx, "rankings_by_city_current", req, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// RankingsByCityHistorical returns past city rankings for a category,
// keyed by year
func (c *Client) RankingsByCityHistorical(ctx context.Context, req *RankingsRequest) (map[string][]CityRanking, error) {
	var response map[string][]CityRanking
	if err := c.do(ctx, "rankings_by_city_historical", req, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// RankingsByCountryHistorical returns past country rankings for a category,
// keyed by year
func (c *Client) RankingsByCountryHistorical(ctx context.Context, req *RankingsRequest) (map[string][]CountryRanking, error) {
	var response map[string][]CountryRanking
	if err := c.do(ctx, "rankings_by_country_historical", req, &response); err != nil {
		return nil, err
	}
	return response, nil
}
