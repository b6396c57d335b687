package numbeoapi

import (
	"encoding/json"
	"testing"

	// Packages
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS: decoding

func Test_CityPricesResponse_Decode(t *testing.T) {
	assert := assert.New(t)

	payload := `{
		"name": "London, United Kingdom",
		"currency": "GBP",
		"city_id": 12,
		"contributors12months": 1500,
		"monthLastUpdate": 7,
		"yearLastUpdate": 2026,
		"prices": [
			{"item_id": 1, "item_name": "Meal, Inexpensive Restaurant", "average_price": 18.0, "data_points": 320},
			{"item_id": 2, "item_name": "Meal for 2 People, Mid-range Restaurant", "average_price": 75.0},
			{"item_id": 26, "item_name": "Apartment (1 bedroom) in City Centre", "average_price": 2100.5}
		]
	}`

	var response CityPricesResponse
	assert.NoError(json.Unmarshal([]byte(payload), &response))
	assert.Equal("London, United Kingdom", response.Name)
	assert.Equal("GBP", response.Currency)
	assert.Len(response.Prices, 3)

	// Aliased fields are matched by their wire names
	if assert.NotNil(response.Contributors12Months) {
		assert.Equal(1500, *response.Contributors12Months)
	}
	if assert.NotNil(response.MonthLastUpdate) {
		assert.Equal(7, *response.MonthLastUpdate)
	}
	if assert.NotNil(response.YearLastUpdate) {
		assert.Equal(2026, *response.YearLastUpdate)
	}

	// Nested entries decode the same way
	if assert.NotNil(response.Prices[0].AveragePrice) {
		assert.Equal(18.0, *response.Prices[0].AveragePrice)
	}
	assert.Nil(response.Prices[1].DataPoints)
}

func Test_Residual_Preserved(t *testing.T) {
	assert := assert.New(t)

	// Unknown payload fields are retained, not dropped
	payload := `{"name": "Reykjavik", "currency": "ISK", "brand_new_field": {"nested": true}}`

	var response CityPricesResponse
	assert.NoError(json.Unmarshal([]byte(payload), &response))
	assert.Equal("Reykjavik", response.Name)
	assert.Contains(response.Residual, "brand_new_field")

	// And re-emitted on encode
	data, err := json.Marshal(response)
	assert.NoError(err)

	var raw map[string]json.RawMessage
	assert.NoError(json.Unmarshal(data, &raw))
	assert.Contains(raw, "brand_new_field")
	assert.JSONEq(`{"nested": true}`, string(raw["brand_new_field"]))
}

func Test_Decode_NullLeavesFieldUnset(t *testing.T) {
	assert := assert.New(t)

	var response CityPricesResponse
	assert.NoError(json.Unmarshal([]byte(`{"name": "Oslo", "city_id": null}`), &response))
	assert.Equal("Oslo", response.Name)
	assert.Nil(response.CityId)
}

func Test_CityPollutionResponse_Decode(t *testing.T) {
	assert := assert.New(t)

	// Wire names are not always identifiers
	payload := `{"name": "Delhi, India", "pm2.5": 110.5, "pm10": 220.1, "index_pollution": 88.9}`

	var response CityPollutionResponse
	assert.NoError(json.Unmarshal([]byte(payload), &response))
	if assert.NotNil(response.Pm25) {
		assert.Equal(110.5, *response.Pm25)
	}
	if assert.NotNil(response.Pm10) {
		assert.Equal(220.1, *response.Pm10)
	}
	assert.Empty(response.Residual)
}

func Test_CityTrafficResponse_Decode(t *testing.T) {
	assert := assert.New(t)

	payload := `{
		"name": "Lagos, Nigeria",
		"analyze using Motorbike": {"count": 42, "distance": 12.1, "time_motorbike": 45.2},
		"analyze using Car": {"count": 120, "time_driving": 82.0},
		"overall_average_analyze": {"distance": 14.8}
	}`

	var response CityTrafficResponse
	assert.NoError(json.Unmarshal([]byte(payload), &response))
	if assert.NotNil(response.AnalyzeUsingMotorbike) {
		assert.Equal(45.2, *response.AnalyzeUsingMotorbike.TimeMotorbike)
		assert.Equal(12.1, *response.AnalyzeUsingMotorbike.Distance)
	}
	assert.NotNil(response.AnalyzeUsingCar)
	assert.NotNil(response.OverallAverageAnalyze)
	assert.Nil(response.AnalyzeUsingBus)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS: encoding

func Test_Encode_DeclaredFieldWins(t *testing.T) {
	assert := assert.New(t)

	// A residual key colliding with a declared field never overrides it
	response := CityPricesResponse{
		Name:     "Tokyo, Japan",
		Residual: Residual{"name": json.RawMessage(`"stale"`)},
	}
	data, err := json.Marshal(response)
	assert.NoError(err)

	var raw map[string]any
	assert.NoError(json.Unmarshal(data, &raw))
	assert.Equal("Tokyo, Japan", raw["name"])
}

func Test_Encode_OmitsEmpty(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(CityPricesResponse{Name: "Lima, Peru"})
	assert.NoError(err)

	var raw map[string]any
	assert.NoError(json.Unmarshal(data, &raw))
	assert.Equal(map[string]any{"name": "Lima, Peru"}, raw)
}
