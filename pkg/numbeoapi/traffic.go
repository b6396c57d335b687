package numbeoapi

import (
	"context"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CommuteSummary aggregates commute times by means of transport. The wire
// names of the per-transport analyses contain spaces and mixed case
type CommuteSummary struct {
	Count         *float64 `json:"count,omitempty"`
	Distance      *float64 `json:"distance,omitempty"`
	TimeWaiting   *float64 `json:"time_waiting,omitempty"`
	TimeWalking   *float64 `json:"time_walking,omitempty"`
	TimeDriving   *float64 `json:"time_driving,omitempty"`
	TimeBike      *float64 `json:"time_bike,omitempty"`
	TimeMotorbike *float64 `json:"time_motorbike,omitempty"`
	TimeBus       *float64 `json:"time_bus,omitempty"`
	TimeTram      *float64 `json:"time_tram,omitempty"`
	TimeTrain     *float64 `json:"time_train,omitempty"`
	TimeOther     *float64 `json:"time_other,omitempty"`
	Residual      Residual `json:"-"`
}

// CityTrafficRequest asks for commute survey data for a city
type CityTrafficRequest struct {
	Query          *string `json:"query,omitempty"`
	City           *string `json:"city,omitempty"`
	Country        *string `json:"country,omitempty"`
	CityId         *int    `json:"city_id,omitempty"`
	StrictMatching *bool   `json:"strict_matching,omitempty"`
}

type CityTrafficResponse struct {
	Name                  string          `json:"name,omitempty"`
	CityId                *int            `json:"city_id,omitempty"`
	AnalyzeUsingWalking   *CommuteSummary `json:"analyze using Walking,omitempty"`
	AnalyzeUsingBike      *CommuteSummary `json:"analyze using Bike,omitempty"`
	AnalyzeUsingMotorbike *CommuteSummary `json:"analyze using Motorbike,omitempty"`
	AnalyzeUsingCar       *CommuteSummary `json:"analyze using Car,omitempty"`
	AnalyzeUsingBus       *CommuteSummary `json:"analyze using Bus,omitempty"`
	AnalyzeUsingTrain     *CommuteSummary `json:"analyze using Train,omitempty"`
	OverallAverageAnalyze *CommuteSummary `json:"overall_average_analyze,omitempty"`
	Residual              Residual        `json:"-"`
}

// CountryTrafficRequest asks for commute survey data for a country
type CountryTrafficRequest struct {
	Country *string `json:"country,omitempty"`
}

type CountryTrafficResponse struct {
	Name                      string             `json:"name,omitempty"`
	IndexTraffic              *float64           `json:"index_traffic,omitempty"`
	IndexTime                 *float64           `json:"index_time,omitempty"`
	IndexTimeExp              *float64           `json:"index_time_exp,omitempty"`
	IndexInefficiency         *float64           `json:"index_inefficiency,omitempty"`
	IndexCo2Emission          *float64           `json:"index_co2_emission,omitempty"`
	Reportees                 *int               `json:"reportees,omitempty"`
	PrimaryMeansPercentageMap map[string]float64 `json:"primary_means_percentage_map,omitempty"`
	AnalyzeUsingWalking       *CommuteSummary    `json:"analyze using Walking,omitempty"`
	AnalyzeUsingBike          *CommuteSummary    `json:"analyze using Bike,omitempty"`
	AnalyzeUsingMotorbike     *CommuteSummary    `json:"analyze using Motorbike,omitempty"`
	AnalyzeUsingCar           *CommuteSummary    `json:"analyze using Car,omitempty"`
	AnalyzeUsingBus           *CommuteSummary    `json:"analyze using Bus,omitempty"`
	AnalyzeUsingTrain         *CommuteSummary    `json:"analyze using Train,omitempty"`
	OverallAverageAnalyze     *CommuteSummary    `json:"overall_average_analyze,omitempty"`
	Residual                  Residual           `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *CityTrafficRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CountryTrafficRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CommuteSummary) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CommuteSummary) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CityTrafficResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CityTrafficResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CountryTrafficResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CountryTrafficResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CityTraffic returns commute survey data for a city
func (c *Client) CityTraffic(ctx context.Context, req *CityTrafficRequest) (*CityTrafficResponse, error) {
	var response CityTrafficResponse
	if err := c.do(ctx, "city_traffic", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CountryTraffic returns commute survey data for a country. The request
// may be nil
func (c *Client) CountryTraffic(ctx context.Context, req *CountryTrafficRequest) (*CountryTrafficResponse, error) {
	var response CountryTrafficResponse
	if err := c.do(ctx, "country_traffic", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
