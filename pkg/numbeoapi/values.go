package numbeoapi

import (
	"net/url"
	"reflect"
	"strconv"

	// Packages
	numbeo "github.com/DiTo97/numbeo-mcp"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The query parameter carrying the credential on every request
	paramAPIKey = "api_key"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// keyValues returns the query parameters for a parameterless request
func keyValues(key string) url.Values {
	result := url.Values{}
	if key != "" {
		result.Set(paramAPIKey, key)
	}
	return result
}

// values converts a request into query parameters, driven by the json tags
// declared on the request type. Omission is driven by presence, not
// truthiness: a nil pointer field is omitted entirely, whilst a set pointer
// is emitted even when false, zero or empty. Non-pointer fields are
// required parameters, validated by the request before this is called.
func values(req any, key string) (url.Values, error) {
	result := keyValues(key)
	if req == nil {
		return result, nil
	}

	rv := reflect.ValueOf(req)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return result, nil
		}
		rv = rv.Elem()
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitempty, ok := wireName(field)
		if !ok {
			continue
		}
		value := rv.Field(i)
		if value.Kind() == reflect.Pointer {
			if value.IsNil() {
				continue
			}
			value = value.Elem()
		} else if omitempty && value.IsZero() {
			continue
		}
		switch value.Kind() {
		case reflect.String:
			result.Set(name, value.String())
		case reflect.Bool:
			result.Set(name, strconv.FormatBool(value.Bool()))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			result.Set(name, strconv.FormatInt(value.Int(), 10))
		case reflect.Float32, reflect.Float64:
			result.Set(name, strconv.FormatFloat(value.Float(), 'f', -1, 64))
		default:
			return nil, numbeo.ErrBadParameter.Withf("unsupported parameter type for %q", name)
		}
	}

	// Return the query parameters
	return result, nil
}
