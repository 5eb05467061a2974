package node

import (
	"github.com/tidwall/gjson"
)

// Normalize converts a raw JSON response into one output object per logical item.
//
//	nil, empty or null -> [{"success": true}]
//	array              -> one object per element, in order
//	object             -> [object]
//	scalar             -> [{"value": scalar}]
//
// Array elements are normalised one level deep; a nested array becomes {"value": [...]}.
// Numbers are kept as json.Number.
func Normalize(raw []byte) []map[string]any {
	res := gjson.ParseBytes(raw)
	if !res.Exists() || res.Type == gjson.Null {
		return []map[string]any{successPayload()}
	}
	if res.IsArray() {
		result := make([]map[string]any, 0, len(res.Array()))
		res.ForEach(func(_, element gjson.Result) bool {
			result = append(result, normalizeElement(element))
			return true
		})
		return result
	}
	return []map[string]any{normalizeElement(res)}
}

func normalizeElement(res gjson.Result) map[string]any {
	if res.Type == gjson.Null {
		return successPayload()
	}
	v, err := decodeJSON(res.Raw)
	if err != nil {
		// not valid JSON; gjson still yields its best reading of the value
		v = res.Value()
	}
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{"value": v}
}

func successPayload() map[string]any {
	return map[string]any{"success": true}
}
