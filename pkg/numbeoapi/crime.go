package numbeoapi

import (
	"context"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CityCrimeRequest asks for crime and safety survey data for a city
type CityCrimeRequest struct {
	Query          *string `json:"query,omitempty"`
	City           *string `json:"city,omitempty"`
	Country        *string `json:"country,omitempty"`
	CityId         *int    `json:"city_id,omitempty"`
	StrictMatching *bool   `json:"strict_matching,omitempty"`
}

type CityCrimeResponse struct {
	IndexCrime             *float64 `json:"index_crime,omitempty"`
	LevelOfCrime           *float64 `json:"level_of_crime,omitempty"`
	CrimeIncreasing        *float64 `json:"crime_increasing,omitempty"`
	SafeAloneNight         *float64 `json:"safe_alone_night,omitempty"`
	WorriedMuggedRobbed    *float64 `json:"worried_mugged_robbed,omitempty"`
	WorriedInsulted        *float64 `json:"worried_insulted,omitempty"`
	WorriedThingsCarStolen *float64 `json:"worried_things_car_stolen,omitempty"`
	ProblemViolentCrimes   *float64 `json:"problem_violent_crimes,omitempty"`
	Contributors           *int     `json:"contributors,omitempty"`
	MonthLastUpdate        *int     `json:"monthLastUpdate,omitempty"`
	Residual               Residual `json:"-"`
}

// CountryCrimeRequest asks for crime and safety survey data for a country
type CountryCrimeRequest struct {
	Country *string `json:"country,omitempty"`
}

type CountryCrimeResponse struct {
	Name                      string   `json:"name,omitempty"`
	IndexCrime                *float64 `json:"index_crime,omitempty"`
	IndexSafety               *float64 `json:"index_safety,omitempty"`
	LevelOfCrime              *float64 `json:"level_of_crime,omitempty"`
	CrimeIncreasing           *float64 `json:"crime_increasing,omitempty"`
	SafeAloneNight            *float64 `json:"safe_alone_night,omitempty"`
	SafeAloneDaylight         *float64 `json:"safe_alone_daylight,omitempty"`
	WorriedMuggedRobbed       *float64 `json:"worried_mugged_robbed,omitempty"`
	WorriedInsulted           *float64 `json:"worried_insulted,omitempty"`
	WorriedAttacked           *float64 `json:"worried_attacked,omitempty"`
	WorriedHomeBroken         *float64 `json:"worried_home_broken,omitempty"`
	WorriedCarStolen          *float64 `json:"worried_car_stolen,omitempty"`
	WorriedThingsCarStolen    *float64 `json:"worried_things_car_stolen,omitempty"`
	WorriedSkinEthnicReligion *float64 `json:"worried_skin_ethnic_religion,omitempty"`
	ProblemViolentCrimes      *float64 `json:"problem_violent_crimes,omitempty"`
	ProblemPropertyCrimes     *float64 `json:"problem_property_crimes,omitempty"`
	ProblemCorruptionBribery  *float64 `json:"problem_corruption_bribery,omitempty"`
	ProblemDrugs              *float64 `json:"problem_drugs,omitempty"`
	Contributors              *int     `json:"contributors,omitempty"`
	MonthLastUpdate           *int     `json:"monthLastUpdate,omitempty"`
	YearLastUpdate            *int     `json:"yearLastUpdate,omitempty"`
	Residual                  Residual `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *CityCrimeRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CountryCrimeRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CityCrimeResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CityCrimeResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CountryCrimeResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CountryCrimeResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CityCrime returns crime and safety survey data for a city
func (c *Client) CityCrime(ctx context.Context, req *CityCrimeRequest) (*CityCrimeResponse, error) {
	var response CityCrimeResponse
	if err := c.do(ctx, "city_crime", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CountryCrime returns crime and safety survey data for a country. The
// request may be nil
func (c *Client) CountryCrime(ctx context.Context, req *CountryCrimeRequest) (*CountryCrimeResponse, error) {
	var response CountryCrimeResponse
	if err := c.do(ctx, "country_crime", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
