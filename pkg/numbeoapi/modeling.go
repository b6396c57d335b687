package numbeoapi

import (
	"encoding/json"
	"reflect"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Residual holds response fields present in a payload but not declared in
// the response shape. They are preserved on decode and re-emitted on encode,
// so forward-compatible fields are never silently dropped.
type Residual map[string]json.RawMessage

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var residualType = reflect.TypeOf(Residual(nil))

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// wireName returns the wire-level key for a struct field from its json tag,
// with the omitempty flag. The second return is false when the field is
// excluded from the wire representation.
func wireName(field reflect.StructField) (string, bool, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, strings.Contains(opts, "omitempty"), true
}

// decodeObject unmarshals a JSON object into v (a pointer to a response
// struct), matching keys against the declared wire names and collecting any
// undeclared keys into the struct's Residual field. A null payload value
// leaves the declared field unset.
func decodeObject(data []byte, v any) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rv := reflect.ValueOf(v).Elem()
	rt := rv.Type()
	var residual reflect.Value
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Type == residualType {
			residual = rv.Field(i)
			continue
		}
		name, _, ok := wireName(field)
		if !ok {
			continue
		}
		value, exists := raw[name]
		if !exists {
			continue
		}
		delete(raw, name)
		if string(value) == "null" {
			continue
		}
		if err := json.Unmarshal(value, rv.Field(i).Addr().Interface()); err != nil {
			return err
		}
	}

	// Retain undeclared fields
	if residual.IsValid() && len(raw) > 0 {
		residual.Set(reflect.ValueOf(Residual(raw)))
	}

	// Return success
	return nil
}

// encodeObject marshals a response struct to a JSON object, emitting declared
// fields under their wire names followed by any residual fields. A declared
// field always wins over a residual field with the same key.
func encodeObject(v any) ([]byte, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	rt := rv.Type()
	result := make(map[string]json.RawMessage, rt.NumField())
	var residual Residual
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Type == residualType {
			residual, _ = rv.Field(i).Interface().(Residual)
			continue
		}
		name, omitempty, ok := wireName(field)
		if !ok {
			continue
		}
		value := rv.Field(i)
		if omitempty && isEmptyValue(value) {
			continue
		}
		data, err := json.Marshal(value.Interface())
		if err != nil {
			return nil, err
		}
		result[name] = data
	}

	// Append residual fields
	for name, value := range residual {
		if _, exists := result[name]; !exists {
			result[name] = value
		}
	}

	// Return the encoded object
	return json.Marshal(result)
}

// isEmptyValue reports whether a value is omitted under omitempty semantics.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
