package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/labstack/echo/v4"

	"github.com/cofd-tools/character-api/internal/core/domain"
)

// decodeBody reads a JSON object from the request body into v. An empty body
// leaves v untouched. Type mismatches name the offending field.
func decodeBody(c echo.Context, v any) error {
	err := json.NewDecoder(c.Request().Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			return domain.NewValidationError("body", "Request body must be a JSON object")
		}
		return domain.NewValidationError(field, fmt.Sprintf("Field: '%s' must be type %s", field, jsonType(typeErr.Type)))
	}
	return domain.NewValidationError("body", "Request body must be valid JSON")
}

// jsonType names the JSON type a Go type decodes from.
func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "String"
	case reflect.Bool:
		return "Boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "Number"
	case reflect.Slice, reflect.Array:
		return "Array"
	default:
		return "Object"
	}
}
