package numbeoapi

import (
	"bytes"
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	"github.com/mutablelogic/go-client"

	numbeo "github.com/DiTo97/numbeo-mcp"
	"github.com/DiTo97/numbeo-mcp/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// tools carries the shared credential and client options. A per-request
// credential in the context always takes precedence over the default key.
type tools struct {
	key  string
	opts []client.ClientOpt
}

// CityQuery identifies a city for statistics lookups
type CityQuery struct {
	City    string `json:"city" jsonschema:"The name of the city (e.g. London)."`
	Country string `json:"country,omitempty" jsonschema:"The name of the country, to disambiguate cities with the same name (e.g. United Kingdom)."`
}

// CityArchiveQuery identifies a city for historical price lookups
type CityArchiveQuery struct {
	City     string `json:"city" jsonschema:"The name of the city (e.g. London)."`
	Country  string `json:"country,omitempty" jsonschema:"The name of the country, to disambiguate cities with the same name (e.g. United Kingdom)."`
	Currency string `json:"currency,omitempty" jsonschema:"The ISO 4217 currency code for returned prices (e.g. GBP)."`
}

// CountryQuery identifies a country for statistics lookups
type CountryQuery struct {
	Country string `json:"country" jsonschema:"The name of the country (e.g. United Kingdom)."`
}

// RankingsQuery selects a statistics category for city rankings
type RankingsQuery struct {
	Section Section `json:"section,omitempty" jsonschema:"The statistics category to rank by (default: cost-of-living)."`
}

// CountryRankingsQuery selects a country and statistics category for
// city rankings within that country
type CountryRankingsQuery struct {
	Country string  `json:"country" jsonschema:"The name of the country (e.g. United Kingdom)."`
	Section Section `json:"section,omitempty" jsonschema:"The statistics category to rank by (default: cost-of-living)."`
}

type cityCostOfLiving struct{ *tools }
type cityCostOfLivingArchive struct{ *tools }
type cityIndices struct{ *tools }
type cityCrime struct{ *tools }
type cityHealthcare struct{ *tools }
type cityTraffic struct{ *tools }
type cityPollution struct{ *tools }
type countryPrices struct{ *tools }
type cityRankings struct{ *tools }
type countryCityRankings struct{ *tools }

var _ tool.Tool = (*cityCostOfLiving)(nil)
var _ tool.Tool = (*cityCostOfLivingArchive)(nil)
var _ tool.Tool = (*cityIndices)(nil)
var _ tool.Tool = (*cityCrime)(nil)
var _ tool.Tool = (*cityHealthcare)(nil)
var _ tool.Tool = (*cityTraffic)(nil)
var _ tool.Tool = (*cityPollution)(nil)
var _ tool.Tool = (*countryPrices)(nil)
var _ tool.Tool = (*cityRankings)(nil)
var _ tool.Tool = (*countryCityRankings)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the set of Numbeo statistics tools. The API key may be
// empty, in which case each call requires a credential in the context.
func NewTools(apikey string, opts ...client.ClientOpt) []tool.Tool {
	shared := &tools{key: apikey, opts: opts}
	return []tool.Tool{
		&cityCostOfLiving{shared},
		&cityCostOfLivingArchive{shared},
		&cityIndices{shared},
		&cityCrime{shared},
		&cityHealthcare{shared},
		&cityTraffic{shared},
		&cityPollution{shared},
		&countryPrices{shared},
		&cityRankings{shared},
		&countryCityRankings{shared},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// resolve returns a client for the request, preferring a credential from
// the context over the default key
func (t *tools) resolve(ctx context.Context) (*Client, error) {
	key := numbeo.Credential(ctx)
	if key == "" {
		key = t.key
	}
	if key == "" {
		return nil, numbeo.ErrMissingCredential.With("missing API key")
	}
	return New(key, t.opts...)
}

// optional returns a pointer for a set value, or nil when empty. Tool
// inputs cannot distinguish an absent parameter from an empty one, so
// empty means absent at this boundary
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// decodeInput unmarshals tool input, rejecting unknown parameters
func decodeInput(input json.RawMessage, v any) error {
	if len(input) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return numbeo.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
	}
	return nil
}

// sectionSchema returns the schema for a rankings query type, with the
// section property constrained to the supported categories
func sectionSchema[T any]() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, err
	}
	if sectionField, ok := schema.Properties["section"]; ok && sectionField != nil {
		sections := Sections()
		enum := make([]any, 0, len(sections))
		for _, section := range sections {
			enum = append(enum, string(section))
		}
		sectionField.Enum = enum
	}
	return schema, nil
}

///////////////////////////////////////////////////////////////////////////////
// CITY COST OF LIVING

func (*cityCostOfLiving) Name() string {
	return "get_city_cost_of_living"
}

func (*cityCostOfLiving) Description() string {
	return "Get current cost of living prices for a city, including groceries, restaurants, transportation, utilities and rent."
}

// Return the JSON schema for the tool input
func (*cityCostOfLiving) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CityQuery](nil)
}

// Run the tool with the given input
func (t *cityCostOfLiving) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var query CityQuery
	if err := decodeInput(input, &query); err != nil {
		return nil, err
	}
	if query.City == "" {
		return nil, numbeo.ErrBadParameter.With("city is required")
	}
	client, err := t.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return client.CityPrices(ctx, &CityPricesRequest{
		Query:   optional(query.City),
		Country: optional(query.Country),
	})
}

///////////////////////////////////////////////////////////////////////////////
// CITY COST OF LIVING ARCHIVE

func (*cityCostOfLivingArchive) Name() string {
	return "get_city_cost_of_living_archive"
}

func (*cityCostOfLivingArchive) Description() string {
	return "Get historical cost of living prices for a city, year by year."
}

// Return the JSON schema for the tool input
func (*cityCostOfLivingArchive) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CityArchiveQuery](nil)
}

// Run the tool with the given input
func (t *cityCostOfLivingArchive) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var query CityArchiveQuery
	if err := decodeInput(input, &query); err != nil {
		return nil, err
	}
	if query.City == "" {
		return nil, numbeo.ErrBadParameter.With("city is required")
	}
	client, err := t.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return client.HistoricalCityPrices(ctx, &HistoricalCityPricesRequest{
		Query:    optional(query.City),
		Country:  optional(query.Country),
		Currency: optional(query.Currency),
	})
}

///////////////////////////////////////////////////////////////////////////////
// CITY INDICES

func (*cityIndices) Name() string {
	return "get_city_indices"
}

func (*cityIndices) Description() string {
	return "Get quality of life indices for a city, including cost of living, rent, purchasing power, safety, health care, pollution, traffic and climate indices."
}

// Return the JSON schema for the tool input
func (*cityIndices) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CityQuery](nil)
}

// Run the tool with the given input
func (t *cityIndices) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var query CityQuery
	if err := decodeInput(input, &query); err != nil {
		return nil, err
	}
	if query.City == "" {
		return nil, numbeo.ErrBadParameter.With("city is required")
	}
	client, err := t.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return client.Indices(ctx, &IndicesRequest{
		Query:   optional(query.City),
		Country: optional(query.Country),
	})
}

///////////////////////////////////////////////////////////////////////////////
// CITY CRIME

func (*cityCrime) Name() string {
	return "get_city_crime_statistics"
}

func (*cityCrime) Description() string {
	return "Get crime statistics for a city, including perceived crime levels, safety while walking, and worries about specific crimes."
}

// Return the JSON schema for the tool input
func (*cityCrime) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CityQuery](nil)
}

// Run the tool with the given input
func (t *cityCrime) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var query CityQuery
	if err := decodeInput(input, &query); err != nil {
		return nil, err
	}
	if query.City == "" {
		return nil, numbeo.ErrBadParameter.With("city is required")
	}
	client, err := t.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return client.CityCrime(ctx, &CityCrimeRequest{
		Query:   optional(query.City),
		Country: optional(query.Country),
	})
}

///////////////////////////////////////////////////////////////////////////////
// CITY HEALTHCARE

func (*cityHealthcare) Name() string {
	return "get_city_healthcare"
}

func (*cityHealthcare) Description() string {
	return "Get health care statistics for a city, including skill of medical staff, equipment, responsiveness, accuracy and cost."
}

// Return the JSON schema for the tool input
func (*cityHealthcare) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CityQuery](nil)
}

// Run the tool with the given input
func (t *cityHealthcare) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var query CityQuery
	if err := decodeInput(input, &query); err != nil {
		return nil, err
	}
	if query.City == "" {
		return nil, numbeo.ErrBadParameter.With("city is required")
	}
	client, err := t.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return client.CityHealthcare(ctx, &CityHealthcareRequest{
		Query:   optional(query.City),
		Country: optional(query.Country),
	})
}

///////////////////////////////////////////////////////////////////////////////
// CITY TRAFFIC

func (*cityTraffic) Name() string {
	return "get_city_traffic"
}

func (*cityTraffic) Description() string {
	return "Get traffic and commute statistics for a city, including commute times by means of transport and CO2 emissions."
}

// Return the JSON schema for the tool input
func (*cityTraffic) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CityQuery](nil)
}

// Run the tool with the given input
func (t *cityTraffic) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var query CityQuery
	if err := decodeInput(input, &query); err != nil {
		return nil, err
	}
	if query.City == "" {
		return nil, numbeo.ErrBadParameter.With("city is required")
	}
	client, err := t.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return client.CityTraffic(ctx, &CityTrafficRequest{
		Query:   optional(query.City),
		Country: optional(query.Country),
	})
}

///////////////////////////////////////////////////////////////////////////////
// CITY POLLUTION

func (*cityPollution) Name() string {
	return "get_city_pollution"
}

func (*cityPollution) Description() string {
	return "Get pollution statistics for a city, including air and water quality, noise, green spaces and particulate matter measurements."
}

// Return the JSON schema for the tool input
func (*cityPollution) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CityQuery](nil)
}

// Run the tool with the given input
func (t *cityPollution) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var query CityQuery
	if err := decodeInput(input, &query); err != nil {
		return nil, err
	}
	if query.City == "" {
		return nil, numbeo.ErrBadParameter.With("city is required")
	}
	client, err := t.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return client.CityPollution(ctx, &CityPollutionRequest{
		Query:   optional(query.City),
		Country: optional(query.Country),
	})
}

///////////////////////////////////////////////////////////////////////////////
// COUNTRY PRICES

func (*countryPrices) Name() string {
	return "get_country_prices"
}

func (*countryPrices) Description() string {
	return "Get current average cost of living prices for a country."
}

// Return the JSON schema for the tool input
func (*countryPrices) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CountryQuery](nil)
}

// Run the tool with the given input
func (t *countryPrices) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var query CountryQuery
	if err := decodeInput(input, &query); err != nil {
		return nil, err
	}
	if query.Country == "" {
		return nil, numbeo.ErrBadParameter.With("country is required")
	}
	client, err := t.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return client.CountryPrices(ctx, &CountryPricesRequest{
		Country: query.Country,
	})
}

///////////////////////////////////////////////////////////////////////////////
// CITY RANKINGS

func (*cityRankings) Name() string {
	return "get_city_rankings"
}

func (*cityRankings) Description() string {
	return "Get the current worldwide city rankings for a statistics category such as cost of living, crime, health care, pollution, traffic or quality of life."
}

// Return the JSON schema for the tool input
func (*cityRankings) Schema() (*jsonschema.Schema, error) {
	return sectionSchema[RankingsQuery]()
}

// Run the tool with the given input
func (t *cityRankings) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var query RankingsQuery
	if err := decodeInput(input, &query); err != nil {
		return nil, err
	}
	if query.Section == "" {
		query.Section = SectionCostOfLiving
	}
	client, err := t.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return client.RankingsByCityCurrent(ctx, &RankingsRequest{
		Section: query.Section,
	})
}

///////////////////////////////////////////////////////////////////////////////
// COUNTRY CITY RANKINGS

func (*countryCityRankings) Name() string {
	return "get_country_city_rankings"
}

func (*countryCityRankings) Description() string {
	return "Get the current city rankings for a statistics category, restricted to cities within a single country."
}

// Return the JSON schema for the tool input
func (*countryCityRankings) Schema() (*jsonschema.Schema, error) {
	return sectionSchema[CountryRankingsQuery]()
}

// Run the tool with the given input
func (t *countryCityRankings) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var query CountryRankingsQuery
	if err := decodeInput(input, &query); err != nil {
		return nil, err
	}
	if query.Country == "" {
		return nil, numbeo.ErrBadParameter.With("country is required")
	}
	if query.Section == "" {
		query.Section = SectionCostOfLiving
	}
	client, err := t.resolve(ctx)
	if err != nil {
		return nil, err
	}
	rankings, err := client.RankingsByCityCurrent(ctx, &RankingsRequest{
		Section: query.Section,
	})
	if err != nil {
		return nil, err
	}

	// Keep only cities in the requested country
	filtered := make([]CityRanking, 0, len(rankings))
	for _, ranking := range rankings {
		if ranking.Country == query.Country {
			filtered = append(filtered, ranking)
		}
	}
	return filtered, nil
}
