package numbeoapi_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	opts "github.com/mutablelogic/go-client"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"

	numbeo "github.com/DiTo97/numbeo-mcp"
	numbeoapi "github.com/DiTo97/numbeo-mcp/pkg/numbeoapi"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	assert := assert.New(t)

	// An empty API key is a configuration error
	_, err := numbeoapi.New("")
	assert.Error(err)
	assert.True(errors.Is(err, numbeo.ErrMissingCredential))

	client, err := numbeoapi.New("test-key")
	assert.NoError(err)
	assert.NotNil(client)
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)

	// The request carries exactly the query and the credential
	var gotPath string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "London, United Kingdom", "currency": "GBP", "prices": [{"item_id": 1}, {"item_id": 2}, {"item_id": 3}]}`))
	}))
	defer server.Close()

	client, err := numbeoapi.New("test-key", opts.OptEndpoint(server.URL))
	assert.NoError(err)

	response, err := client.CityPrices(t.Context(), &numbeoapi.CityPricesRequest{Query: types.Ptr("London")})
	assert.NoError(err)
	assert.Equal("/city_prices", gotPath)
	assert.Equal(map[string][]string{
		"api_key": {"test-key"},
		"query":   {"London"},
	}, gotQuery)
	assert.Equal("London, United Kingdom", response.Name)
	assert.Equal("GBP", response.Currency)
	assert.Len(response.Prices, 3)
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)

	// A server error surfaces as an error, and the request is not retried
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := numbeoapi.New("test-key", opts.OptEndpoint(server.URL))
	assert.NoError(err)

	_, err = client.CityPrices(t.Context(), &numbeoapi.CityPricesRequest{Query: types.Ptr("London")})
	assert.Error(err)
	assert.Equal(1, requests)
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)

	// Request validation failures surface before any network call
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client, err := numbeoapi.New("test-key", opts.OptEndpoint(server.URL))
	assert.NoError(err)

	_, err = client.CountryPrices(t.Context(), &numbeoapi.CountryPricesRequest{})
	assert.Error(err)
	assert.True(errors.Is(err, numbeo.ErrBadParameter))

	_, err = client.RankingsByCityCurrent(t.Context(), &numbeoapi.RankingsRequest{Section: "weather"})
	assert.Error(err)
	assert.True(errors.Is(err, numbeo.ErrUnsupportedSection))

	assert.Equal(0, requests)
}

func Test_client_005(t *testing.T) {
	assert := assert.New(t)

	// Rankings endpoints decode into their own topologies
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/rankings_by_city_current":
			w.Write([]byte(`[{"city_name": "Zurich", "country": "Switzerland", "cpi_index": 120.4}]`))
		case "/rankings_by_city_historical":
			w.Write([]byte(`{"2024": [{"city_name": "Zurich", "country": "Switzerland"}]}`))
		case "/country_administrative_units":
			w.Write([]byte(`["Canton of Zurich", "Canton of Geneva"]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := numbeoapi.New("test-key", opts.OptEndpoint(server.URL))
	assert.NoError(err)

	current, err := client.RankingsByCityCurrent(t.Context(), &numbeoapi.RankingsRequest{Section: numbeoapi.SectionCostOfLiving})
	assert.NoError(err)
	if assert.Len(current, 1) {
		assert.Equal("Zurich", current[0].CityName)
	}

	historical, err := client.RankingsByCityHistorical(t.Context(), &numbeoapi.RankingsRequest{Section: numbeoapi.SectionCostOfLiving})
	assert.NoError(err)
	assert.Contains(historical, "2024")

	units, err := client.CountryAdministrativeUnits(t.Context(), &numbeoapi.CountryAdministrativeUnitsRequest{Country: "Switzerland"})
	assert.NoError(err)
	assert.Equal([]string{"Canton of Zurich", "Canton of Geneva"}, units)
}
