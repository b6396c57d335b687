package numbeoapi

import (
	"context"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// IndicesRequest asks for the composite quality of life indexes of a city
type IndicesRequest struct {
	Query          *string `json:"query,omitempty"`
	City           *string `json:"city,omitempty"`
	Country        *string `json:"country,omitempty"`
	CityId         *int    `json:"city_id,omitempty"`
	StrictMatching *bool   `json:"strict_matching,omitempty"`
}

type IndicesResponse struct {
	Name                         string   `json:"name,omitempty"`
	CityId                       *int     `json:"city_id,omitempty"`
	CpiIndex                     *float64 `json:"cpi_index,omitempty"`
	CpiAndRentIndex              *float64 `json:"cpi_and_rent_index,omitempty"`
	RentIndex                    *float64 `json:"rent_index,omitempty"`
	GroceriesIndex               *float64 `json:"groceries_index,omitempty"`
	RestaurantPriceIndex         *float64 `json:"restaurant_price_index,omitempty"`
	PurchasingPowerInclRentIndex *float64 `json:"purchasing_power_incl_rent_index,omitempty"`
	PropertyPriceToIncomeRatio   *float64 `json:"property_price_to_income_ratio,omitempty"`
	CrimeIndex                   *float64 `json:"crime_index,omitempty"`
	SafetyIndex                  *float64 `json:"safety_index,omitempty"`
	HealthCareIndex              *float64 `json:"health_care_index,omitempty"`
	PollutionIndex               *float64 `json:"pollution_index,omitempty"`
	ClimateIndex                 *float64 `json:"climate_index,omitempty"`
	QualityOfLifeIndex           *float64 `json:"quality_of_life_index,omitempty"`
	TrafficIndex                 *float64 `json:"traffic_index,omitempty"`
	TrafficTimeIndex             *float64 `json:"traffic_time_index,omitempty"`
	TrafficInefficiencyIndex     *float64 `json:"traffic_inefficiency_index,omitempty"`
	TrafficCo2Index              *float64 `json:"traffic_co2_index,omitempty"`
	ContributorsCostOfLiving     *int     `json:"contributors_cost_of_living,omitempty"`
	ContributorsCrime            *int     `json:"contributors_crime,omitempty"`
	ContributorsHealthcare       *int     `json:"contributors_healthcare,omitempty"`
	ContributorsPollution        *int     `json:"contributors_pollution,omitempty"`
	ContributorsProperty         *int     `json:"contributors_property,omitempty"`
	ContributorsTraffic          *int     `json:"contributors_traffic,omitempty"`
	Residual                     Residual `json:"-"`
}

// CountryIndicesRequest asks for the composite indexes of a country
type CountryIndicesRequest struct {
	Country *string `json:"country,omitempty"`
}

type CountryIndicesResponse struct {
	Name                         string   `json:"name,omitempty"`
	CpiIndex                     *float64 `json:"cpi_index,omitempty"`
	CpiAndRentIndex              *float64 `json:"cpi_and_rent_index,omitempty"`
	RentIndex                    *float64 `json:"rent_index,omitempty"`
	GroceriesIndex               *float64 `json:"groceries_index,omitempty"`
	RestaurantPriceIndex         *float64 `json:"restaurant_price_index,omitempty"`
	PurchasingPowerInclRentIndex *float64 `json:"purchasing_power_incl_rent_index,omitempty"`
	PropertyPriceToIncomeRatio   *float64 `json:"property_price_to_income_ratio,omitempty"`
	CrimeIndex                   *float64 `json:"crime_index,omitempty"`
	SafetyIndex                  *float64 `json:"safety_index,omitempty"`
	HealthCareIndex              *float64 `json:"health_care_index,omitempty"`
	PollutionIndex               *float64 `json:"pollution_index,omitempty"`
	QualityOfLifeIndex           *float64 `json:"quality_of_life_index,omitempty"`
	TrafficIndex                 *float64 `json:"traffic_index,omitempty"`
	TrafficTimeIndex             *float64 `json:"traffic_time_index,omitempty"`
	TrafficInefficiencyIndex     *float64 `json:"traffic_inefficiency_index,omitempty"`
	TrafficCo2Index              *float64 `json:"traffic_co2_index,omitempty"`
	Residual                     Residual `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *IndicesRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CountryIndicesRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *IndicesResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r IndicesResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CountryIndicesResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CountryIndicesResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Indices returns the composite quality of life indexes of a city
func (c *Client) Indices(ctx context.Context, req *IndicesRequest) (*IndicesResponse, error) {
	var response IndicesResponse
	if err := c.do(ctx, "indices", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CountryIndices returns the composite indexes of a country. The request
// may be nil
func (c *Client) CountryIndices(ctx context.Context, req *CountryIndicesRequest) (*CountryIndicesResponse, error) {
	var response CountryIndicesResponse
	if err := c.do(ctx, "country_indices", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
