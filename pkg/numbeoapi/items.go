package numbeoapi

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ItemSummary describes one priced good or service, with the factors used
// to compute the cost of living and rent indexes
type ItemSummary struct {
	Category   string   `json:"category,omitempty"`
	Name       string   `json:"name,omitempty"`
	ItemId     *int     `json:"item_id,omitempty"`
	CpiFactor  *float64 `json:"cpi_factor,omitempty"`
	RentFactor *float64 `json:"rent_factor,omitempty"`
	Residual   Residual `json:"-"`
}

type ItemsResponse struct {
	Items    []ItemSummary `json:"items,omitempty"`
	Residual Residual      `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *ItemSummary) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r ItemSummary) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

func (r *ItemsResponse) UnmarshalJSON(data []byte) error { return decodeObject(data, r) }
func (r ItemsResponse) MarshalJSON() ([]byte, error)     { return encodeObject(r) }

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Items returns the catalogue of priced goods and services
func (c *Client) Items(ctx context.Context) (*ItemsResponse, error) {
	var response ItemsResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("items"), client.OptQuery(keyValues(c.key))); err != nil {
		return nil, err
	}
	return &response, nil
}
