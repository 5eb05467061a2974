package node

// QueryParameters maps an OData parameter name to its value.
// Absent or default-valued parameters are omitted, never sent as zero or empty.
type QueryParameters map[string]any

const (
	defaultTop  = 100
	defaultSkip = 0
)

// BuildQuery assembles top, skip, select, filter and expand from the item's
// parameters. Entries in overrides replace derived ones on key collision.
func BuildQuery(p ParameterAccessor, overrides QueryParameters) QueryParameters {
	result := QueryParameters{}

	if top := int(p.NumberWithDefault("top", defaultTop)); top > 0 {
		result["top"] = top
	}
	if skip := int(p.NumberWithDefault("skip", defaultSkip)); skip > 0 {
		result["skip"] = skip
	}
	if s := p.OptionalString("select"); s != "" {
		result["select"] = s
	}
	if s := p.OptionalString("filter"); s != "" {
		result["filter"] = s
	}
	if s := p.OptionalString("expand"); s != "" {
		if s == "all" {
			s = "*"
		}
		result["expand"] = s
	}

	for k, v := range overrides {
		result[k] = v
	}
	return result
}
