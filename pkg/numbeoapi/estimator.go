package numbeoapi

import (
	"context"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CostEstimatorBreakdown is one spending category of a household estimate
type CostEstimatorBreakdown struct {
	Category string   `json:"category,omitempty"`
	Estimate *float64 `json:"estimate,omitempty"`
	Residual Residual `json:"-"`
}

// CityCostEstimatorRequest estimates monthly spending for a household in a
// city. The wire name for household members differs from the canonical one
type CityCostEstimatorRequest struct {
	Query            *string `json:"query,omitempty"`
	City             *string `json:"city,omitempty"`
	Country          *string `json:"country,omitempty"`
	CityId           *int    `json:"city_id,omitempty"`
	StrictMatching   *bool   `json:"strict_matching,omitempty"`
	Currency         *string `json:"currency,omitempty"`
	HouseholdMembers *int    `json:"members,omitempty"`
	Children         *int    `json:"children,omitempty"`
	IncludeRent      *bool   `json:"include_rent,omitempty"`
}

type CityCostEstimatorResponse struct {
	CityName         string                   `json:"city_name,omitempty"`
	CityId           *int                     `json:"city_id,omitempty"`
	Currency         string                   `json:"currency,omitempty"`
	HouseholdMembers *int                     `json:"household_members,omitempty"`
	Children         *int                     `json:"children,omitempty"`
	OverallEstimate  *float64                 `json:"overall_estimate,omitempty"`
	Breakdown        []CostEstimatorBreakdown `json:"breakdown,omitempty"`
	Residual         Residual                 `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *CityCostEstimatorRequest) Values(key string) (url.Values, error) {
	return values(r, key)
}

func (r *CostEstimatorBreakdown) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CostEstimatorBreakdown) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *CityCostEstimatorResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r CityCostEstimatorResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CityCostEstimator estimates monthly spending for a household in a city
func (c *Client) CityCostEstimator(ctx context.Context, req *CityCostEstimatorRequest) (*CityCostEstimatorResponse, error) {
	var response CityCostEstimatorResponse
	if err := c.do(ctx, "city_cost_estimator", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
