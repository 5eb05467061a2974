package node

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/tidwall/gjson"
)

// ParsePayload turns a raw parameter value into a JSON value.
// Strings are parsed as JSON; anything else, including nil, is returned unchanged
// so hosts that pre-parse JSON parameters work too.
func ParsePayload(raw any, label string) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return raw, nil
	}
	if !gjson.Valid(s) {
		return nil, invalidJSON(label)
	}
	v, err := decodeJSON(s)
	if err != nil {
		return nil, invalidJSON(label)
	}
	return v, nil
}

// decodeJSON decodes a single JSON value keeping numbers as json.Number,
// so integers beyond float64 precision survive the round trip.
func decodeJSON(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// RequireObject fails with InvalidPayloadShape unless v is a JSON object.
func RequireObject(v any) (map[string]any, error) {
	switch t := v.(type) {
	case nil:
		return nil, invalidPayloadShape("payload must be a JSON object, got null")
	case map[string]any:
		return t, nil
	case []any:
		return nil, invalidPayloadShape("payload must be a JSON object, got an array")
	default:
		return nil, invalidPayloadShape(fmt.Sprintf("payload must be a JSON object, got %T", v))
	}
}

// payloadLabel derives the display label for a payload parameter,
// e.g. "batchData" becomes "Batch Data".
func payloadLabel(name string) string {
	words := strings.Fields(strcase.ToDelimited(name, ' '))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
