package numbeoapi

import (
	"context"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CityHealthcareRequest asks for healthcare survey data for a city
type CityHealthcareRequest struct {
	Query          *string `json:"query,omitempty"`
	City           *string `json:"city,omitempty"`
	Country        *string `json:"country,omitempty"`
	CityId         *int    `json:"city_id,omitempty"`
	StrictMatching *bool   `json:"strict_matching,omitempty"`
}

type CityHealthcareResponse struct {
	Name                    string             `json:"name,omitempty"`
	CityId                  *int               `json:"city_id,omitempty"`
	IndexHealthcare         *float64           `json:"index_healthcare,omitempty"`
	SkillAndCompetency      *float64           `json:"skill_and_competency,omitempty"`
	Speed                   *float64           `json:"speed,omitempty"`
	ModernEquipment         *float64           `json:"modern_equipment,omitempty"`
	AccuracyAndCompleteness *float64           `json:"accuracy_and_completeness,omitempty"`
	FriendlinessAndCourtesy *float64           `json:"friendliness_and_courtesy,omitempty"`
	ResponsivenessWaitings  *float64           `json:"responsiveness_waitings,omitempty"`
	Location                *float64           `json:"location,omitempty"`
	Cost                    *float64           `json:"cost,omitempty"`
	InsuranceType           map[string]float64 `json:"insurance_type,omitempty"`
	Contributors            *int               `json:"contributors,omitempty"`
	MonthLastUpdate         *int               `json:"monthLastUpdate,omitempty"`
	YearLastUpdate          *int               `json:"yearLastUpdate,omitempty"`
	Residual                Residual           `json:"-"`
}

// CountryHealthcareRequest asks for healthcare survey data for a country
type CountryHealthcareRequest struct {
	Country *string `json:"country,omitempty"`
}

type CountryHealthcareResponse struct {
	Name                    string             `json:"name,omitempty"`
	IndexHealthcare         *float64           `json:"index_healthcare,omitempty"`
	SkillAndCompetency      *float64           `json:"skill_and_competency,omitempty"`
	Speed                   *float64           `json:"speed,omitempty"`
	ModernEquipment         *float64           `json:"modern_equipment,omitempty"`
	AccuracyAndCompleteness *float64           `json:"accuracy_and_completeness,omitempty"`
	FriendlinessAndCourtesy *float64           `json:"friendliness_and_courtesy,omitempty"`
	ResponsivenessWaitings  *float64           `json:"responsiveness_waitings,omitempty"`
	Location                *float64           `json:"location,omitempty"`
	Cost                    *float64           `json:"cost,omitempty"`
	InsuranceType           map[string]float64 `json:"insurance_type,omitempty"`
	Contributors            *int               `json:"contributors,omitempty"`
	Reportees               *int               `json:"reportees,omitempty"`
	MonthLastUpdate         *int               `json:"monthLastUpdate,omitempty"`
	YearLastUpdate          *int               `json:"yearLastUpdate,omitempty"`
	Residual                Residual           `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *CityHealthcareRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CountryHealthcareRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CityHealthcareResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CityHealthcareResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CountryHealthcareResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CountryHealthcareResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CityHealthcare returns healthcare survey data for a city
func (c *Client) CityHealthcare(ctx context.Context, req *CityHealthcareRequest) (*CityHealthcareResponse, error) {
	var response CityHealthcareResponse
	if err := c.do(ctx, "city_healthcare", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CountryHealthcare returns healthcare survey data for a country. The
// request may be nil
func (c *Client) CountryHealthcare(ctx context.Context, req *CountryHealthcareRequest) (*CountryHealthcareResponse, error) {
	var response CountryHealthcareResponse
	if err := c.do(ctx, "country_healthcare", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
