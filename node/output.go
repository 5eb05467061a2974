package node

import (
	"github.com/tidwall/sjson"
)

// OutputRecord is one item in an execution result. It is never mutated after creation.
type OutputRecord struct {
	Payload         map[string]any
	SourceItemIndex int
}

// MarshalJSON encodes the record in the host's item shape:
// {"json": <payload>, "pairedItem": {"item": <index>}}.
func (r OutputRecord) MarshalJSON() ([]byte, error) {
	payload := r.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	out, err := sjson.SetBytes([]byte(`{}`), "json", payload)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(out, "pairedItem.item", r.SourceItemIndex)
}

// emit tags every payload with itemIndex and appends them to out in order.
func emit(payloads []map[string]any, itemIndex int, out *[]OutputRecord) {
	for _, p := range payloads {
		*out = append(*out, OutputRecord{Payload: p, SourceItemIndex: itemIndex})
	}
}
