package numbeoapi

import (
	"errors"
	"net/url"
	"testing"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	"github.com/stretchr/testify/assert"

	numbeo "github.com/DiTo97/numbeo-mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS: CityPricesRequest

func Test_CityPricesRequest_Values(t *testing.T) {
	tests := []struct {
		name   string
		req    *CityPricesRequest
		apiKey string
		expect url.Values
	}{
		{
			name:   "minimal request",
			req:    &CityPricesRequest{Query: types.Ptr("London")},
			apiKey: "test-key",
			expect: url.Values{
				"api_key": []string{"test-key"},
				"query":   []string{"London"},
			},
		},
		{
			name:   "with country and currency",
			req:    &CityPricesRequest{Query: types.Ptr("London"), Country: types.Ptr("United Kingdom"), Currency: types.Ptr("GBP")},
			apiKey: "test-key-2",
			expect: url.Values{
				"api_key":  []string{"test-key-2"},
				"query":    []string{"London"},
				"country":  []string{"United Kingdom"},
				"currency": []string{"GBP"},
			},
		},
		{
			name:   "false flag is emitted when set",
			req:    &CityPricesRequest{Query: types.Ptr("Berlin"), StrictMatching: types.Ptr(false)},
			apiKey: "test-key",
			expect: url.Values{
				"api_key":         []string{"test-key"},
				"query":           []string{"Berlin"},
				"strict_matching": []string{"false"},
			},
		},
		{
			name:   "unset flags are omitted",
			req:    &CityPricesRequest{City: types.Ptr("Berlin"), Country: types.Ptr("Germany")},
			apiKey: "test-key",
			expect: url.Values{
				"api_key": []string{"test-key"},
				"city":    []string{"Berlin"},
				"country": []string{"Germany"},
			},
		},
		{
			name:   "empty string is emitted when set",
			req:    &CityPricesRequest{Query: types.Ptr("London"), Country: types.Ptr("")},
			apiKey: "test-key",
			expect: url.Values{
				"api_key": []string{"test-key"},
				"query":   []string{"London"},
				"country": []string{""},
			},
		},
		{
			name:   "city id",
			req:    &CityPricesRequest{CityId: types.Ptr(12), UseEstimated: types.Ptr(true)},
			apiKey: "test-key",
			expect: url.Values{
				"api_key":       []string{"test-key"},
				"city_id":       []string{"12"},
				"use_estimated": []string{"true"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Values(tt.apiKey)
			assert.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

///////////////////////////////////////////////////////////////////////////////
// TESTS: CityCostEstimatorRequest

func Test_CityCostEstimatorRequest_Values(t *testing.T) {
	// The canonical household members field travels under the wire name
	// "members", and zero is emitted when set
	req := &CityCostEstimatorRequest{
		Query:            types.Ptr("Reykjavik"),
		HouseholdMembers: types.Ptr(4),
		Children:         types.Ptr(0),
		IncludeRent:      types.Ptr(false),
	}
	got, err := req.Values("test-key")
	assert.NoError(t, err)
	assert.Equal(t, url.Values{
		"api_key":      []string{"test-key"},
		"query":        []string{"Reykjavik"},
		"members":      []string{"4"},
		"children":     []string{"0"},
		"include_rent": []string{"false"},
	}, got)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS: required parameters

func Test_Request_Required(t *testing.T) {
	t.Run("country prices requires a country", func(t *testing.T) {
		_, err := (&CountryPricesRequest{}).Values("test-key")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, numbeo.ErrBadParameter))
	})
	t.Run("administrative unit prices requires a unit or a name", func(t *testing.T) {
		_, err := (&AdministrativeUnitPricesRequest{Country: "Iceland"}).Values("test-key")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, numbeo.ErrMissingAlternative))
	})
	t.Run("administrative unit prices accepts admin_name", func(t *testing.T) {
		got, err := (&AdministrativeUnitPricesRequest{Country: "Iceland", AdminName: types.Ptr("Hofudborgarsvaedi")}).Values("test-key")
		assert.NoError(t, err)
		assert.Equal(t, "Iceland", got.Get("country"))
		assert.Equal(t, "Hofudborgarsvaedi", got.Get("admin_name"))
	})
	t.Run("historical exchange rates require month and year", func(t *testing.T) {
		_, err := (&HistoricalCurrencyExchangeRatesRequest{Year: 2024}).Values("test-key")
		assert.Error(t, err)

		got, err := (&HistoricalCurrencyExchangeRatesRequest{Month: 2, Year: 2024}).Values("test-key")
		assert.NoError(t, err)
		assert.Equal(t, "2", got.Get("month"))
		assert.Equal(t, "2024", got.Get("year"))
	})
}

///////////////////////////////////////////////////////////////////////////////
// TESTS: RankingsRequest

func Test_RankingsRequest_Values(t *testing.T) {
	tests := []struct {
		section Section
		code    string
	}{
		{SectionCostOfLiving, "1"},
		{SectionCrime, "2"},
		{SectionHealthCare, "3"},
		{SectionPollution, "4"},
		{SectionTraffic, "5"},
		{SectionQualityOfLife, "6"},
	}

	for _, tt := range tests {
		t.Run(string(tt.section), func(t *testing.T) {
			got, err := (&RankingsRequest{Section: tt.section}).Values("test-key")
			assert.NoError(t, err)
			assert.Equal(t, tt.code, got.Get("section"))
		})
	}

	// Unknown categories are rejected before any request is made
	_, err := (&RankingsRequest{Section: "weather"}).Values("test-key")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, numbeo.ErrUnsupportedSection))

	// A nil request is rejected rather than dereferenced
	_, err = (*RankingsRequest)(nil).Values("test-key")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, numbeo.ErrBadParameter))
}
