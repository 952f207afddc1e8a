// materializer.go
// ---------------
// The response materializer: one mechanism, two output modes.
//
// Model mode decodes the body into a typed record, rejecting unknown fields
// and enforcing the schema registry's required fields through the validator.
// Raw mode returns the parsed JSON document unchanged apart from checking
// the shape's required top-level keys. Either way, a mismatch between body
// and declared shape is a SchemaError, never a best-effort conversion.
package zenhubbridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// materializeModel decodes data into out and validates it against the
// declared shape. out must be a pointer to a registry struct or a slice of
// registry structs.
func materializeModel(data []byte, sh shape, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return &SchemaError{Shape: sh.name, Err: err}
	}
	if err := validateRecord(out); err != nil {
		return &SchemaError{Shape: sh.name, Err: err}
	}
	return nil
}

// validateRecord runs the validator over a struct or over every element of
// a slice of structs.
func validateRecord(out any) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		return validate.Struct(v.Interface())
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if err := validate.Struct(v.Index(i).Interface()); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	}
	return nil
}

// materializeRaw parses data into a plain document (map or slice) and checks
// the shape's required keys. An empty body materializes as an empty object,
// which is what the service sends for acknowledge-only operations.
func materializeRaw(data []byte, sh shape) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		if sh.isArray {
			return []any{}, nil
		}
		return map[string]any{}, nil
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{Shape: sh.name, Err: err}
	}
	if err := checkRequiredKeys(sh, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func checkRequiredKeys(sh shape, doc any) error {
	if sh.isArray {
		items, ok := doc.([]any)
		if !ok {
			return &SchemaError{Shape: sh.name, Err: fmt.Errorf("expected a JSON array")}
		}
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return &SchemaError{Shape: sh.name, Err: fmt.Errorf("element %d is not an object", i)}
			}
			if err := requireKeys(sh.name, sh.itemRequired, obj); err != nil {
				return err
			}
		}
		return nil
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return &SchemaError{Shape: sh.name, Err: fmt.Errorf("expected a JSON object")}
	}
	return requireKeys(sh.name, sh.required, obj)
}

func requireKeys(shapeName string, keys []string, obj map[string]any) error {
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			return &SchemaError{Shape: shapeName, Err: fmt.Errorf("missing required field %q", k)}
		}
	}
	return nil
}
