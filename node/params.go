package node

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ParameterAccessor reads declared node parameters for one item.
type ParameterAccessor struct {
	Host      Host
	ItemIndex int
}

// RequireString returns the named parameter, failing with MissingParameter
// when it is absent or empty.
func (p ParameterAccessor) RequireString(name string) (string, error) {
	s, ok := p.stringValue(name)
	if !ok || s == "" {
		return "", missingParameter(name)
	}
	return s, nil
}

// OptionalString returns the named parameter, or "" when it is absent or empty.
// An empty string is treated the same as not provided.
func (p ParameterAccessor) OptionalString(name string) string {
	s, _ := p.stringValue(name)
	return s
}

// NumberWithDefault returns the named parameter when it holds a number,
// otherwise def. A wrong type falls back silently.
func (p ParameterAccessor) NumberWithDefault(name string, def float64) float64 {
	v, ok := p.Host.NodeParameter(name, p.ItemIndex)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return def
}

// Raw returns the parameter value untouched, nil when absent.
func (p ParameterAccessor) Raw(name string) any {
	v, ok := p.Host.NodeParameter(name, p.ItemIndex)
	if !ok {
		return nil
	}
	return v
}

func (p ParameterAccessor) stringValue(name string) (string, bool) {
	v, ok := p.Host.NodeParameter(name, p.ItemIndex)
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	case float64:
		// identifiers typed as numbers in the host UI
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	}
	return "", false
}
