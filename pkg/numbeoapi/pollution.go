package numbeoapi

import (
	"context"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CityPollutionRequest asks for pollution survey data for a city
type CityPollutionRequest struct {
	Query          *string `json:"query,omitempty"`
	City           *string `json:"city,omitempty"`
	Country        *string `json:"country,omitempty"`
	CityId         *int    `json:"city_id,omitempty"`
	StrictMatching *bool   `json:"strict_matching,omitempty"`
}

// CityPollutionResponse carries survey scores alongside measured
// particulate values, whose wire names are not valid identifiers
type CityPollutionResponse struct {
	Name                              string   `json:"name,omitempty"`
	CityId                            *int     `json:"city_id,omitempty"`
	IndexPollution                    *float64 `json:"index_pollution,omitempty"`
	AirQuality                        *float64 `json:"air_quality,omitempty"`
	Pm10                              *float64 `json:"pm10,omitempty"`
	Pm25                              *float64 `json:"pm2.5,omitempty"`
	DrinkingWaterQualityAccessibility *float64 `json:"drinking_water_quality_accessibility,omitempty"`
	WaterPollution                    *float64 `json:"water_pollution,omitempty"`
	GarbageDisposalSatisfaction       *float64 `json:"garbage_disposal_satisfaction,omitempty"`
	CleanAndTidy                      *float64 `json:"clean_and_tidy,omitempty"`
	NoiseAndLightPollution            *float64 `json:"noise_and_light_pollution,omitempty"`
	GreenAndParksQuality              *float64 `json:"green_and_parks_quality,omitempty"`
	ComfortableToSpendTime            *float64 `json:"comfortable_to_spend_time,omitempty"`
	Contributors                      *int     `json:"contributors,omitempty"`
	MonthLastUpdate                   *int     `json:"monthLastUpdate,omitempty"`
	YearLastUpdate                    *int     `json:"yearLastUpdate,omitempty"`
	Residual                          Residual `json:"-"`
}

// CountryPollutionRequest asks for pollution survey data for a country
type CountryPollutionRequest struct {
	Country *string `json:"country,omitempty"`
}

type CountryPollutionResponse struct {
	Name                              string   `json:"name,omitempty"`
	IndexPollution                    *float64 `json:"index_pollution,omitempty"`
	AirQuality                        *float64 `json:"air_quality,omitempty"`
	DrinkingWaterQualityAccessibility *float64 `json:"drinking_water_quality_accessibility,omitempty"`
	WaterPollution                    *float64 `json:"water_pollution,omitempty"`
	GarbageDisposalSatisfaction       *float64 `json:"garbage_disposal_satisfaction,omitempty"`
	CleanAndTidy                      *float64 `json:"clean_and_tidy,omitempty"`
	NoiseAndLightPollution            *float64 `json:"noise_and_light_pollution,omitempty"`
	GreenAndParksQuality              *float64 `json:"green_and_parks_quality,omitempty"`
	ComfortableToSpendTime            *float64 `json:"comfortable_to_spend_time,omitempty"`
	Contributors                      *int     `json:"contributors,omitempty"`
	MonthLastUpdate                   *int     `json:"monthLastUpdate,omitempty"`
	YearLastUpdate                    *int     `json:"yearLastUpdate,omitempty"`
	Residual                          Residual `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *CityPollutionRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CountryPollutionRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CityPollutionResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CityPollutionResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CountryPollutionResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CountryPollutionResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CityPollution returns pollution survey data for a city
func (c *Client) CityPollution(ctx context.Context, req *CityPollutionRequest) (*CityPollutionResponse, error) {
	var response CityPollutionResponse
	if err := c.do(ctx, "city_pollution", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CountryPollution returns pollution survey data for a country. The request
// may be nil
func (c *Client) CountryPollution(ctx context.Context, req *CountryPollutionRequest) (*CountryPollutionResponse, error) {
	var response CountryPollutionResponse
	if err := c.do(ctx, "country_pollution", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
