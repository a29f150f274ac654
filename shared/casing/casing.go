// Package casing normalises payload keys at the HTTP boundary. Clients send a mix of
// camelCase and snake_case keys for the same fields; everything behind the handlers only
// ever sees snake_case.
package casing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// ToSnake converts a camelCase or PascalCase identifier to snake_case. Identifiers that are
// already snake_case are returned unchanged.
func ToSnake(key string) string {
	runes := []rune(key)

	var builder strings.Builder

	builder.Grow(len(key) + 4) //nolint:mnd

	for idx, current := range runes {
		if !unicode.IsUpper(current) {
			builder.WriteRune(current)

			continue
		}

		if idx > 0 && runes[idx-1] != '_' {
			prev := runes[idx-1]
			nextIsLower := idx+1 < len(runes) && unicode.IsLower(runes[idx+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				builder.WriteRune('_')
			}
		}

		builder.WriteRune(unicode.ToLower(current))
	}

	return builder.String()
}

// NormalizeKeys rewrites the object keys of decoded JSON to snake_case, guided by the Go type
// the document will be decoded into. Only objects that land on a struct are rewritten; maps,
// interfaces and unknown fields keep their keys verbatim, so free-form objects such as
// amenities reach the handler as the client spelled them. When both spellings of a struct
// field are present the snake_case one wins.
func NormalizeKeys(value any, typ reflect.Type) any {
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if typ == nil {
		return value
	}

	switch typed := value.(type) {
	case map[string]any:
		if typ.Kind() != reflect.Struct {
			return value
		}

		fields := jsonFields(typ)
		normalized := make(map[string]any, len(typed))

		for key, val := range typed {
			snake := ToSnake(key)

			fieldType, known := fields[snake]
			if !known {
				normalized[key] = val

				continue
			}

			if _, exists := normalized[snake]; exists && snake != key {
				continue
			}

			normalized[snake] = NormalizeKeys(val, fieldType)
		}

		return normalized
	case []any:
		if typ.Kind() != reflect.Slice && typ.Kind() != reflect.Array {
			return value
		}

		for idx := range typed {
			typed[idx] = NormalizeKeys(typed[idx], typ.Elem())
		}

		return typed
	default:
		return value
	}
}

// jsonFields maps the json names of a struct, including promoted fields of embedded
// structs, to their types.
func jsonFields(typ reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, typ.NumField())

	for idx := range typ.NumField() {
		field := typ.Field(idx)

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}

		embedded := field.Type
		if embedded.Kind() == reflect.Pointer {
			embedded = embedded.Elem()
		}

		if field.Anonymous && name == "" && embedded.Kind() == reflect.Struct {
			for promoted, promotedType := range jsonFields(embedded) {
				if _, shadowed := fields[promoted]; !shadowed {
					fields[promoted] = promotedType
				}
			}

			continue
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = ToSnake(field.Name)
		}

		fields[name] = field.Type
	}

	return fields
}

// NormalizeJSON rewrites the keys of a JSON document to snake_case for decoding into target,
// which is usually a pointer to the request struct. Numbers are preserved verbatim so integer
// fields survive the round trip.
func NormalizeJSON(data []byte, target any) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return data, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	normalized, err := json.Marshal(NormalizeKeys(payload, reflect.TypeOf(target)))
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	return normalized, nil
}

// FormValue looks a form field up by its snake_case name and falls back to the camelCase
// spelling the browser may have used.
func FormValue(values map[string][]string, key string) string {
	if vals, ok := values[key]; ok && len(vals) > 0 {
		return vals[0]
	}

	if vals, ok := values[ToCamel(key)]; ok && len(vals) > 0 {
		return vals[0]
	}

	return ""
}

// ToCamel converts a snake_case identifier to lower camelCase.
func ToCamel(key string) string {
	parts := strings.Split(key, "_")

	for idx := 1; idx < len(parts); idx++ {
		if parts[idx] == "" {
			continue
		}

		runes := []rune(parts[idx])
		runes[0] = unicode.ToUpper(runes[0])
		parts[idx] = string(runes)
	}

	return strings.Join(parts, "")
}
